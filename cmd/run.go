package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/hierwrap/internal/domain"
	m "github.com/mouse-blink/hierwrap/internal/model"
)

var runParallelFlag int
var runOutDirFlag string

const runLongDescription = `Apply the inject-DUT-hierarchy transform to the given designs.

Each argument is a design file, a directory containing *.fir.json files, or a
Go-style recursive pattern (dir/...). Designs are processed independently; a
failed design does not stop the batch, but makes the command exit non-zero.`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [designs...]",
		Short: "Apply the transform to designs",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(domain.TransformArgs{
				Paths:   parsePaths(args),
				OutDir:  m.Path(runOutDirFlag),
				Threads: runParallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of parallel workers for batch transforms")
	cmd.Flags().StringVarP(&runOutDirFlag, "out", "o", "", "write transformed designs to this directory instead of in place")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
