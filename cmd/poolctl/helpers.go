package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/poolkit/pool"
	"github.com/joshuapare/poolkit/pool/trace"
	"github.com/joshuapare/poolkit/workload"
)

// newPool creates the pool for a workload run. The script may carry its own
// capacity; an explicit --capacity flag wins. Pool creation failure has no
// degraded mode, so it terminates the process.
func newPool(script *workload.Script, capacityFlag int, opts ...pool.Option) *pool.Pool {
	capacity := script.Capacity
	if capacityFlag > 0 {
		capacity = capacityFlag
	}
	p, err := pool.New(capacity, opts...)
	if err != nil {
		printError("cannot create pool: %v\n", err)
		os.Exit(1)
	}
	return p
}

// applyScript runs the workload and reports per-step outcomes in verbose mode.
func applyScript(p *pool.Pool, script *workload.Script) ([]workload.Result, error) {
	results, err := script.Apply(p)
	for _, res := range results {
		if res.Err != nil {
			printVerbose("step %d: %s failed: %v\n", res.Step, res.Op, res.Err)
		} else {
			printVerbose("step %d: %s -> ref %d\n", res.Step, res.Op, res.Ref)
		}
	}
	if err != nil {
		return results, fmt.Errorf("apply workload: %w", err)
	}
	return results, nil
}

// traceSummary renders a recorded operation journal.
func traceSummary(rec *trace.Recorder) {
	printVerbose("trace: %d events (alloc=%d free=%d grow=%d shrink=%d move=%d)\n",
		rec.Len(),
		rec.Count(trace.OpAlloc), rec.Count(trace.OpFree),
		rec.Count(trace.OpGrow), rec.Count(trace.OpShrink), rec.Count(trace.OpMove))
	if verbose && !quiet {
		for _, e := range rec.Entries() {
			printInfo("  %-6s off=%d size=%d\n", e.Op, e.Off, e.Size)
		}
	}
}
