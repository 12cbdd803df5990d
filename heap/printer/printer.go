// Package printer renders heap statistics and region dumps in
// human-readable text or JSON.
package printer

import (
	"fmt"
	"io"

	"github.com/cheranb/heapkit/heap/alloc"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the human-readable stats block.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// ShowRegions includes the per-region table in the output.
	// Default: false
	ShowRegions bool
}

// Report is the printable view of a heap: the stats snapshot plus,
// optionally, the region sequence.
type Report struct {
	Stats   alloc.Stats
	Regions []alloc.RegionInfo
}

// Collect builds a Report from a heap.
func Collect(h *alloc.Heap, opts Options) Report {
	rep := Report{Stats: h.Stats()}
	if opts.ShowRegions {
		rep.Regions = h.Snapshot()
	}
	return rep
}

// Print writes a heap report to w in the requested format.
func Print(w io.Writer, h *alloc.Heap, opts Options) error {
	rep := Collect(h, opts)
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, rep)
	case FormatText, "":
		return writeText(w, rep, opts)
	default:
		return fmt.Errorf("printer: unknown format %q", opts.Format)
	}
}
