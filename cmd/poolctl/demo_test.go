package main

import (
	"testing"
)

func TestDemoCommand(t *testing.T) {
	resetFlags()

	output, err := captureOutput(t, runDemo)
	if err != nil {
		t.Fatalf("runDemo() error = %v", err)
	}

	// Push 10..40, splice 15 and 25 around 20, drop 40.
	assertContains(t, output, []string{
		"list (5 nodes): 10 -> 15 -> 20 -> 25 -> 30",
		"pool map:",
		"pool: 30/256 bytes used",
	})
}

func TestDemoCommandQuiet(t *testing.T) {
	resetFlags()
	quiet = true

	output, err := captureOutput(t, runDemo)
	if err != nil {
		t.Fatalf("runDemo() error = %v", err)
	}
	assertNotContains(t, output, []string{"list (", "nodes"})
}
