package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cheranb/heapkit/heap/alloc"
	"github.com/cheranb/heapkit/heap/printer"
)

var demoRegions bool

func init() {
	cmd := newDemoCmd()
	cmd.Flags().BoolVar(&demoRegions, "regions", false, "Include the per-region table in each report")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay a fixed allocate/resize/release session",
		Long: `The demo command replays a small scripted allocator session and prints
heap statistics after each step: an initial allocation holding a text payload,
a zeroed table allocation, an in-place grow of the first region, and finally
the release of everything back into a single free span.

Example:
  heapctl demo
  heapctl demo --regions
  heapctl demo --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

func runDemo() error {
	h, err := alloc.New(nil)
	if err != nil {
		return fmt.Errorf("failed to create heap: %w", err)
	}
	defer h.Close()

	opts := printer.Options{Format: printer.FormatText, ShowRegions: demoRegions}
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	report := func(step string) error {
		printInfo("--- %s ---\n", step)
		return printer.Print(os.Stdout, h, opts)
	}

	first, buf, err := h.Alloc(32)
	if err != nil {
		return err
	}
	copy(buf, "dynamic memory management")
	printVerbose("allocated 32 bytes at ref 0x%X\n", first)
	if err := report("after Alloc(32)"); err != nil {
		return err
	}

	table, _, err := h.AllocZeroed(4, 4)
	if err != nil {
		return err
	}
	printVerbose("allocated zeroed 4x4 table at ref 0x%X\n", table)
	if err := report("after AllocZeroed(4, 4)"); err != nil {
		return err
	}

	first, buf, err = h.Resize(first, 64)
	if err != nil {
		return err
	}
	printVerbose("resized first region to 64 bytes, ref 0x%X, payload %q\n", first, buf[:25])
	if err := report("after Resize(first, 64)"); err != nil {
		return err
	}

	if err := h.Free(table); err != nil {
		return err
	}
	if err := h.Free(first); err != nil {
		return err
	}
	return report("after Free of both regions")
}
