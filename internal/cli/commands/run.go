package commands

import (
	"github.com/leapstack-labs/goexamples/internal/selector"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <group>",
		Short: "Run one example group without the menu",
		Long: `Run every example of one group, chosen by name or by its 1-based number
as shown by "goexamples list".

The progress indicator still runs first unless --no-progress is given.`,
		Example: `  # Run the basics group
  goexamples run basics

  # Run the second group, skipping the progress indicator
  goexamples run 2 --no-progress`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return groupNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroup(cmd, args[0])
		},
	}

	return cmd
}

func runGroup(cmd *cobra.Command, ref string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	idx, err := cmdCtx.Table.Index(ref)
	if err != nil {
		return err
	}

	sel, err := cmdCtx.NewSelector(selector.FixedSource{Index: idx})
	if err != nil {
		return err
	}
	return sel.Run(cmd.Context())
}
