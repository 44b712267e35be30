// Package printer renders pool state for humans and tools.
package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/joshuapare/poolkit/pool"
)

const (
	DefaultWidth = 64
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the 0/1 occupancy map with offset gutters.
	FormatText Format = "text"

	// FormatJSON outputs capacity, usage and live extents as JSON.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// Width is the number of map characters per line (text format only).
	// Default: 64
	Width int

	// ShowExtents lists every live allocation after the map.
	// Default: false
	ShowExtents bool

	// ShowStats appends the allocator counters.
	// Default: false
	ShowStats bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format: FormatText,
		Width:  DefaultWidth,
	}
}

// snapshot is the JSON shape of a pool's observable state.
type snapshot struct {
	Capacity int           `json:"capacity"`
	Used     int           `json:"used"`
	Map      string        `json:"map"`
	Extents  []pool.Extent `json:"extents,omitempty"`
	Stats    *pool.Stats   `json:"stats,omitempty"`
}

// Print writes a rendering of the pool's occupancy to w.
func Print(w io.Writer, p *pool.Pool, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return printJSON(w, p, opts)
	case FormatText, "":
		return printText(w, p, opts)
	default:
		return fmt.Errorf("printer: unknown format %q", opts.Format)
	}
}

func printJSON(w io.Writer, p *pool.Pool, opts Options) error {
	snap := snapshot{
		Capacity: p.Capacity(),
		Used:     p.Used(),
		Map:      p.AllocationMap(),
	}
	if opts.ShowExtents {
		snap.Extents = p.Extents()
	}
	if opts.ShowStats {
		stats := p.Stats()
		snap.Stats = &stats
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func printText(w io.Writer, p *pool.Pool, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	m := p.AllocationMap()
	if _, err := fmt.Fprintf(w, "pool: %d/%d bytes used\n", p.Used(), p.Capacity()); err != nil {
		return err
	}
	for off := 0; off < len(m); off += width {
		end := min(off+width, len(m))
		if _, err := fmt.Fprintf(w, "%6d  %s\n", off, m[off:end]); err != nil {
			return err
		}
	}

	if opts.ShowExtents {
		for _, e := range p.Extents() {
			if _, err := fmt.Fprintf(w, "  [%d, %d) %d bytes\n", e.Off, e.Off+e.Len, e.Len); err != nil {
				return err
			}
		}
	}
	if opts.ShowStats {
		s := p.Stats()
		_, err := fmt.Fprintf(w,
			"  allocs=%d frees=%d resizes=%d allocated=%d freed=%d budget_rejects=%d scan_failures=%d\n",
			s.AllocCalls, s.FreeCalls, s.ResizeCalls,
			s.BytesAllocated, s.BytesFreed, s.BudgetRejects, s.ScanFailures)
		if err != nil {
			return err
		}
	}
	return nil
}
