package main

import (
	"testing"
)

func TestRunCommand(t *testing.T) {
	script := `
capacity: 16
steps:
  - {op: alloc, size: 4, ref: a}
  - {op: alloc, size: 4, ref: b}
  - {op: free, ref: a}
`

	tests := []struct {
		name           string
		capacity       int
		verbose        bool
		wantJSON       bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "capacity from script",
			wantContain: []string{"pool: 4/16 bytes used", "0000111100000000", "applied 3 steps (0 failed)"},
		},
		{
			name:           "capacity flag overrides script",
			capacity:       8,
			wantContain:    []string{"pool: 4/8 bytes used", "00001111"},
			wantNotContain: []string{"4/16"},
		},
		{
			name:     "json output",
			wantJSON: true,
			wantContain: []string{
				`"capacity": 16`,
				`"used": 4`,
				`"map": "0000111100000000"`,
			},
			wantNotContain: []string{"applied"},
		},
		{
			name:    "verbose reports each step",
			verbose: true,
			wantContain: []string{
				"step 0: alloc -> ref 0",
				"step 1: alloc -> ref 4",
				"step 2: free -> ref 0",
				"trace: 3 events (alloc=2 free=1 grow=0 shrink=0 move=0)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			runCapacity = tt.capacity
			verbose = tt.verbose
			jsonOut = tt.wantJSON

			path := writeWorkload(t, script)
			output, err := captureOutput(t, func() error {
				return runRun([]string{path})
			})
			if err != nil {
				t.Fatalf("runRun() error = %v", err)
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestRunCommandMissingScript(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runRun([]string{"no-such-workload.yaml"})
	})
	if err == nil {
		t.Fatal("runRun() expected error for missing script")
	}
}
