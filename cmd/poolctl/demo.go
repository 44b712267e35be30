package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/poolkit/list"
	"github.com/joshuapare/poolkit/pool"
	"github.com/joshuapare/poolkit/pool/printer"
)

var demoCapacity int

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVar(&demoCapacity, "capacity", 256, "Pool capacity in bytes")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the linked-list demo on a small pool",
		Long: `The demo command builds a singly linked list whose nodes live inside
a pool arena, exercises insert/search/remove, and prints the list alongside
the pool's allocation map.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	p, err := pool.New(demoCapacity)
	if err != nil {
		printError("cannot create pool: %v\n", err)
		os.Exit(1)
	}
	defer p.Close()

	l := list.New(p)
	for _, v := range []uint16{10, 20, 30, 40} {
		if err := l.Push(v); err != nil {
			return err
		}
	}

	if ref, ok := l.Find(20); ok {
		if err := l.InsertAfter(ref, 25); err != nil {
			return err
		}
		if err := l.InsertBefore(ref, 15); err != nil {
			return err
		}
	}
	if err := l.Remove(40); err != nil {
		return err
	}

	printInfo("list (%d nodes): %s\n", l.Len(), l.String())
	printInfo("pool map:\n")

	opts := printer.DefaultOptions()
	opts.ShowExtents = verbose
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	if err := printer.Print(os.Stdout, p, opts); err != nil {
		return err
	}

	return l.Cleanup()
}
