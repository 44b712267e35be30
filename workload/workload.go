// Package workload runs declarative alloc/free/resize scripts against a pool.
//
// Scripts are YAML documents:
//
//	capacity: 64
//	steps:
//	  - {op: alloc, size: 16, ref: a}
//	  - {op: alloc, size: 16, ref: b, want: 16}
//	  - {op: free, ref: a}
//	  - {op: resize, ref: b, size: 32}
//
// Alloc steps bind the resulting handle to a name; later free and resize
// steps target that name. An optional want field asserts the exact offset an
// alloc or resize must return, which makes scripts usable as determinism
// fixtures.
package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/poolkit/pool"
)

// Step is one scripted allocator operation.
type Step struct {
	Op   string `yaml:"op"`             // alloc, free or resize
	Size int    `yaml:"size,omitempty"` // byte count for alloc/resize
	Ref  string `yaml:"ref,omitempty"`  // name bound by alloc, targeted by free/resize
	Want *int   `yaml:"want,omitempty"` // expected offset for alloc/resize
}

// Script is a parsed workload.
type Script struct {
	Capacity int    `yaml:"capacity"`
	Steps    []Step `yaml:"steps"`
}

// Result reports the outcome of one applied step.
type Result struct {
	Step int      // Index into Script.Steps
	Op   string   // Operation applied
	Ref  pool.Ref // Handle produced (alloc/resize) or released (free)
	Err  error    // Recoverable failure, nil on success
}

// Parse decodes a YAML workload.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("workload: parse script: %w", err)
	}
	return &s, nil
}

// Load reads and parses a workload file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("workload: read script: %w", err)
	}
	return Parse(data)
}

// Apply runs every step against p in order. Recoverable allocator failures
// (budget, fragmentation, bad handles) are recorded per step; the returned
// error is reserved for malformed scripts (unknown op, unbound ref name,
// missed want offset).
func (s *Script) Apply(p *pool.Pool) ([]Result, error) {
	refs := make(map[string]pool.Ref, len(s.Steps))
	results := make([]Result, 0, len(s.Steps))

	for i, step := range s.Steps {
		res := Result{Step: i, Op: step.Op}

		switch step.Op {
		case "alloc":
			ref, _, err := p.Alloc(step.Size)
			res.Ref, res.Err = ref, err
			if err == nil && step.Ref != "" {
				refs[step.Ref] = ref
			}

		case "free":
			ref, ok := refs[step.Ref]
			if !ok {
				return results, fmt.Errorf("workload: step %d frees unbound ref %q", i, step.Ref)
			}
			res.Ref = ref
			res.Err = p.Free(ref)
			if res.Err == nil {
				delete(refs, step.Ref)
			}

		case "resize":
			ref, ok := refs[step.Ref]
			if !ok {
				return results, fmt.Errorf("workload: step %d resizes unbound ref %q", i, step.Ref)
			}
			newRef, _, err := p.Resize(ref, step.Size)
			res.Ref, res.Err = newRef, err
			if err == nil {
				if step.Size == 0 {
					delete(refs, step.Ref)
				} else {
					refs[step.Ref] = newRef
				}
			}

		default:
			return results, fmt.Errorf("workload: step %d has unknown op %q", i, step.Op)
		}

		if step.Want != nil {
			if res.Err != nil {
				return results, fmt.Errorf("workload: step %d wanted offset %d but failed: %w",
					i, *step.Want, res.Err)
			}
			if int(res.Ref) != *step.Want {
				return results, fmt.Errorf("workload: step %d returned offset %d, want %d",
					i, res.Ref, *step.Want)
			}
		}
		results = append(results, res)
	}
	return results, nil
}
