package commands

import (
	"github.com/leapstack-labs/goexamples/internal/selector"
	"github.com/spf13/cobra"
)

// RunSelector runs the demonstration selector for cmd. A configured group
// bypasses the interactive source.
func RunSelector(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	var source selector.Source
	if ref := cmdCtx.Cfg.Group; ref != "" {
		idx, err := cmdCtx.Table.Index(ref)
		if err != nil {
			return err
		}
		cmdCtx.Logger.Debug("using configured group", "group", ref, "index", idx)
		source = selector.FixedSource{Index: idx}
	} else {
		source = cmdCtx.interactiveSource(cmd)
	}

	sel, err := cmdCtx.NewSelector(source)
	if err != nil {
		return err
	}
	return sel.Run(cmd.Context())
}
