package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/poolkit/pool/printer"
	"github.com/joshuapare/poolkit/workload"
)

var (
	mapCapacity int
	mapWidth    int
)

func init() {
	cmd := newMapCmd()
	cmd.Flags().IntVar(&mapCapacity, "capacity", 0, "Pool capacity in bytes (overrides script)")
	cmd.Flags().IntVar(&mapWidth, "width", printer.DefaultWidth, "Map characters per line")
	rootCmd.AddCommand(cmd)
}

func newMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map <script.yaml>",
		Short: "Print the allocation map after a workload",
		Long: `The map command applies a workload and prints only the byte-by-byte
occupancy rendering: '1' for allocated bytes, '0' for free bytes.

Example:
  poolctl map workload.yaml
  poolctl map workload.yaml --width 32`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(args)
		},
	}
}

func runMap(args []string) error {
	script, err := workload.Load(args[0])
	if err != nil {
		return err
	}

	p := newPool(script, mapCapacity)
	defer p.Close()

	if _, err := applyScript(p, script); err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.Width = mapWidth
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.Print(os.Stdout, p, opts)
}
