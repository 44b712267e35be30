package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags shared by every subcommand.
var (
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "poolctl",
	Short: "Run and inspect fixed-capacity memory pool workloads",
	Long: `poolctl drives a fixed-capacity pool allocator from the command line.
It runs declarative allocation workloads, renders byte-level occupancy maps,
and reports allocator statistics, making allocation behavior easy to audit.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo writes to stdout unless --quiet is set.
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Printf(format, args...)
	}
}

// printError writes to stderr; --quiet does not silence it.
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose writes to stdout only under --verbose.
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Printf(format, args...)
	}
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
