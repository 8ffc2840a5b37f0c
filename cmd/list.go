package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/hierwrap/internal/domain"
)

const listLongDescription = `List the modules and hierarchical paths of the given designs.

Modules are shown with their visibility, port list, and instances; paths with
their symbol and locator sequence. Nothing is modified.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [designs...]",
		Short: "List modules and hierarchical paths",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(domain.ListArgs{Paths: parsePaths(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
