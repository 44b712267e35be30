package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/poolkit/workload"
)

var statsCapacity int

func init() {
	cmd := newStatsCmd()
	cmd.Flags().IntVar(&statsCapacity, "capacity", 0, "Pool capacity in bytes (overrides script)")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <script.yaml>",
		Short: "Show allocator statistics for a workload",
		Long: `The stats command applies a workload and reports the allocator's
counters: call totals, bytes moved, failure breakdown and resize paths.

Example:
  poolctl stats workload.yaml
  poolctl stats workload.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
}

func runStats(args []string) error {
	script, err := workload.Load(args[0])
	if err != nil {
		return err
	}

	p := newPool(script, statsCapacity)
	defer p.Close()

	if _, err := applyScript(p, script); err != nil {
		return err
	}

	s := p.Stats()
	if jsonOut {
		return printJSON(struct {
			Capacity       int   `json:"capacity"`
			Used           int   `json:"used"`
			AllocCalls     int   `json:"alloc_calls"`
			FreeCalls      int   `json:"free_calls"`
			ResizeCalls    int   `json:"resize_calls"`
			BytesAllocated int64 `json:"bytes_allocated"`
			BytesFreed     int64 `json:"bytes_freed"`
			ZeroAllocs     int   `json:"zero_allocs"`
			BudgetRejects  int   `json:"budget_rejects"`
			ScanFailures   int   `json:"scan_failures"`
			InPlaceGrows   int   `json:"in_place_grows"`
			InPlaceShrinks int   `json:"in_place_shrinks"`
			Relocations    int   `json:"relocations"`
		}{
			Capacity:       p.Capacity(),
			Used:           p.Used(),
			AllocCalls:     s.AllocCalls,
			FreeCalls:      s.FreeCalls,
			ResizeCalls:    s.ResizeCalls,
			BytesAllocated: s.BytesAllocated,
			BytesFreed:     s.BytesFreed,
			ZeroAllocs:     s.ZeroAllocs,
			BudgetRejects:  s.BudgetRejects,
			ScanFailures:   s.ScanFailures,
			InPlaceGrows:   s.InPlaceGrows,
			InPlaceShrinks: s.InPlaceShrinks,
			Relocations:    s.Relocations,
		})
	}

	printInfo("Pool: %d/%d bytes used\n\n", p.Used(), p.Capacity())
	printInfo("Calls:\n")
	printInfo("  Alloc:  %d\n", s.AllocCalls)
	printInfo("  Free:   %d\n", s.FreeCalls)
	printInfo("  Resize: %d\n\n", s.ResizeCalls)
	printInfo("Bytes:\n")
	printInfo("  Allocated: %d\n", s.BytesAllocated)
	printInfo("  Freed:     %d\n\n", s.BytesFreed)
	printInfo("Failures:\n")
	printInfo("  Budget rejects: %d\n", s.BudgetRejects)
	printInfo("  Scan failures:  %d\n\n", s.ScanFailures)
	printInfo("Resize paths:\n")
	printInfo("  In-place grows:   %d\n", s.InPlaceGrows)
	printInfo("  In-place shrinks: %d\n", s.InPlaceShrinks)
	printInfo("  Relocations:      %d\n", s.Relocations)
	return nil
}
