// Package cmd provides the root command and CLI setup for hierwrap.
package cmd

import (
	"os"

	"github.com/mouse-blink/hierwrap/internal/adapter"
	"github.com/mouse-blink/hierwrap/internal/controller"
	"github.com/mouse-blink/hierwrap/internal/domain"
	m "github.com/mouse-blink/hierwrap/internal/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var store adapter.DesignStore
var fsAdapter adapter.DesignFSAdapter
var ui controller.UI
var logger *zap.Logger
var workflow domain.Workflow

var debugFlag bool
var parallelFlag int
var outDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hierwrap [designs...]",
		Short: "Inject a hierarchy level above the DUT of a circuit design",
		Long: `Hierwrap rewrites circuit designs that carry an inject-hierarchy directive:
the design-under-test (DUT) is split into a new shell module holding its
external interface and a wrapper module holding its original body, with the
shell instantiating the wrapper pass-through. Hierarchical paths and scoped
metadata touching the DUT are retargeted so they stay valid one level deeper.

Designs are JSON files (*.fir.json). A design without a directive is left
unchanged.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(domain.TransformArgs{
				Paths:   parsePaths(args),
				OutDir:  m.Path(outDirFlag),
				Threads: parallelFlag,
			})
		},
	}
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers for batch transforms")
	cmd.Flags().StringVarP(&outDirFlag, "out", "o", "", "write transformed designs to this directory instead of in place")

	return cmd
}

// setup wires the adapters, UI, logger, and workflow. Tests may pre-populate
// the workflow global to inject their own.
func setup(cmd *cobra.Command) error {
	if workflow != nil {
		return nil
	}

	var err error

	store, err = adapter.NewDesignStore()
	if err != nil {
		return err
	}

	fsAdapter = adapter.NewDesignFSAdapter()
	ui = controller.NewUI(cmd.Root(), controller.IsTTY(os.Stdout))
	logger = newLogger(debugFlag)
	workflow = domain.NewWorkflow(store, fsAdapter, ui, logger)

	return nil
}

func newLogger(debug bool) *zap.Logger {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	log, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}

	return log
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
