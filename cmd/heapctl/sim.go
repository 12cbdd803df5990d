package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/cheranb/heapkit/heap/alloc"
	"github.com/cheranb/heapkit/heap/printer"
	"github.com/cheranb/heapkit/heap/verify"
)

var (
	simOps        int
	simSeed       int64
	simMaxSize    int
	simArenaLimit int64
	simRegions    bool
)

func init() {
	cmd := newSimCmd()
	cmd.Flags().IntVar(&simOps, "ops", 10000, "Number of allocator operations to run")
	cmd.Flags().Int64Var(&simSeed, "seed", 1, "Random seed for the workload")
	cmd.Flags().IntVar(&simMaxSize, "max-size", 4096, "Maximum allocation size in bytes")
	cmd.Flags().Int64Var(&simArenaLimit, "arena-limit", 0, "Arena reservation limit in bytes (0 for default)")
	cmd.Flags().BoolVar(&simRegions, "regions", false, "Include the per-region table in the report")
	rootCmd.AddCommand(cmd)
}

func newSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run a randomized allocator workload",
		Long: `The sim command drives the allocator with a seeded random mix of
allocate, resize, and release operations, validates the region sequence
afterwards, and prints the resulting statistics.

Example:
  heapctl sim
  heapctl sim --ops 100000 --seed 7 --max-size 512
  heapctl sim --json --regions`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim()
		},
	}
	return cmd
}

func runSim() error {
	if simOps <= 0 {
		return fmt.Errorf("invalid op count %d", simOps)
	}
	if simMaxSize <= 0 {
		return fmt.Errorf("invalid max size %d", simMaxSize)
	}

	h, err := alloc.New(&alloc.Config{ArenaLimit: simArenaLimit})
	if err != nil {
		return fmt.Errorf("failed to create heap: %w", err)
	}
	defer h.Close()

	printVerbose("running %d ops, seed %d, max size %d\n", simOps, simSeed, simMaxSize)

	rng := rand.New(rand.NewSource(simSeed))
	var live []alloc.Ref
	for op := 0; op < simOps; op++ {
		switch r := rng.Intn(10); {
		case r < 5 || len(live) == 0:
			ref, _, err := h.Alloc(rng.Intn(simMaxSize + 1))
			if err != nil {
				return fmt.Errorf("op %d: alloc: %w", op, err)
			}
			live = append(live, ref)
		case r < 8:
			i := rng.Intn(len(live))
			if err := h.Free(live[i]); err != nil {
				return fmt.Errorf("op %d: free: %w", op, err)
			}
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
		default:
			i := rng.Intn(len(live))
			ref, _, err := h.Resize(live[i], 1+rng.Intn(simMaxSize))
			if err != nil {
				return fmt.Errorf("op %d: resize: %w", op, err)
			}
			live[i] = ref
		}
	}

	if err := verify.Heap(h); err != nil {
		return fmt.Errorf("region sequence failed validation: %w", err)
	}
	printVerbose("region sequence validated, %d live regions\n", len(live))

	if verbose {
		m := h.Metrics()
		printInfo("grow calls: %d (%d bytes), splits: %d, coalesces: %d forward / %d backward\n",
			m.GrowCalls, m.GrowBytes, m.SplitCount, m.CoalesceForward, m.CoalesceBackward)
	}

	opts := printer.Options{Format: printer.FormatText, ShowRegions: simRegions}
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.Print(os.Stdout, h, opts)
}
