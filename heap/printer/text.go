package printer

import (
	"fmt"
	"io"
)

// writeText prints the classic malloc-stats block, followed by the region
// table when requested.
func writeText(w io.Writer, rep Report, opts Options) error {
	s := rep.Stats

	fmt.Fprintf(w, "\n============ Heap Stats =============\n")
	fmt.Fprintf(w, "Total Blocks:               %d\n", s.TotalRegions)
	fmt.Fprintf(w, "Used Blocks:                %d\n", s.UsedRegions)
	fmt.Fprintf(w, "Free Blocks:                %d\n", s.FreeRegions)
	fmt.Fprintf(w, "Used Memory (B):            %d\n", s.UsedBytes)
	fmt.Fprintf(w, "Free Memory (B):            %d\n", s.FreeBytes)
	fmt.Fprintf(w, "Total Memory (B):           %d\n", s.TotalBytes())
	if pct, ok := s.Fragmentation(); ok {
		fmt.Fprintf(w, "Fragmentation:              %.2f%%\n", pct)
	} else {
		fmt.Fprintf(w, "Fragmentation:              N/A\n")
	}
	fmt.Fprintf(w, "=====================================\n\n")

	if !opts.ShowRegions {
		return nil
	}

	fmt.Fprintf(w, "Regions:\n")
	fmt.Fprintf(w, "  %-4s %-10s %-10s %s\n", "#", "offset", "size", "state")
	for i, r := range rep.Regions {
		state := "used"
		if r.Free {
			state = "free"
		}
		fmt.Fprintf(w, "  %-4d 0x%-8X %-10d %s\n", i, r.Offset, r.Size, state)
	}
	fmt.Fprintf(w, "\n")
	return nil
}
