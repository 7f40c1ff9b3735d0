package commands

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/goexamples/internal/cli/output"
	"github.com/leapstack-labs/goexamples/internal/examples"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the example groups",
		Long: `List every example group in menu order with its number, description
and how many sections it runs.

Output adapts to environment:
  - Terminal: box-drawn table
  - Piped/Scripted: plain ASCII table`,
		Example: `  # List groups
  goexamples list

  # Force ASCII output
  goexamples list --output plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	if r.EffectiveMode() == output.ModePlain {
		t.SetStyle(table.StyleDefault)
	} else {
		t.SetStyle(table.StyleLight)
	}

	t.AppendHeader(table.Row{"#", "Group", "Description", "Sections"})
	for i, g := range cmdCtx.Table.Groups() {
		t.AppendRow(table.Row{strconv.Itoa(i + 1), g.Name, g.Description, len(examples.Sections(g.Name))})
	}
	t.Render()

	return nil
}

// groupNames lists the group names for shell completion.
func groupNames() []string {
	names := make([]string, 0)
	for _, g := range examples.Groups(nil) {
		names = append(names, g.Name)
	}
	return names
}
