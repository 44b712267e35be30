package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/poolkit/pool"
	"github.com/joshuapare/poolkit/pool/printer"
	"github.com/joshuapare/poolkit/pool/trace"
	"github.com/joshuapare/poolkit/workload"
)

var (
	runCapacity int
	runWidth    int
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().IntVar(&runCapacity, "capacity", 0, "Pool capacity in bytes (overrides script)")
	cmd.Flags().IntVar(&runWidth, "width", printer.DefaultWidth, "Map characters per line")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Apply an allocation workload to a fresh pool",
		Long: `The run command creates a pool, applies the scripted alloc/free/resize
steps in order, and renders the resulting allocation map.

Example:
  poolctl run workload.yaml
  poolctl run workload.yaml --capacity 256 --verbose
  poolctl run workload.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
}

func runRun(args []string) error {
	script, err := workload.Load(args[0])
	if err != nil {
		return err
	}

	rec := trace.NewRecorder()
	p := newPool(script, runCapacity, pool.WithTracer(rec))
	defer p.Close()

	results, err := applyScript(p, script)
	if err != nil {
		return err
	}

	if !jsonOut {
		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
			}
		}
		printInfo("applied %d steps (%d failed)\n", len(results), failed)
		traceSummary(rec)
	}

	opts := printer.DefaultOptions()
	opts.Width = runWidth
	opts.ShowExtents = verbose
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.Print(os.Stdout, p, opts)
}
