package cmd

import (
	"github.com/mouse-blink/hierwrap/internal/domain"
	m "github.com/mouse-blink/hierwrap/internal/model"
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view DESIGN",
		Short: "View the instance hierarchy of a design",
		Long:  "View the instance hierarchy of a design, interactively when run in a terminal.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.View(domain.ViewArgs{Design: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
