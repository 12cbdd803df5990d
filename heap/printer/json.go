package printer

import (
	"encoding/json"
	"io"
)

// jsonReport is the JSON shape of a Report. Fragmentation is null when not
// applicable (no tracked bytes).
type jsonReport struct {
	TotalBlocks   int          `json:"total_blocks"`
	UsedBlocks    int          `json:"used_blocks"`
	FreeBlocks    int          `json:"free_blocks"`
	UsedBytes     int64        `json:"used_bytes"`
	FreeBytes     int64        `json:"free_bytes"`
	TotalBytes    int64        `json:"total_bytes"`
	Fragmentation *float64     `json:"fragmentation_pct"`
	Regions       []jsonRegion `json:"regions,omitempty"`
}

type jsonRegion struct {
	Ref    uint32 `json:"ref"`
	Offset int64  `json:"offset"`
	Size   int    `json:"size"`
	State  string `json:"state"`
}

// writeJSON prints the report as indented JSON.
func writeJSON(w io.Writer, rep Report) error {
	s := rep.Stats
	out := jsonReport{
		TotalBlocks: s.TotalRegions,
		UsedBlocks:  s.UsedRegions,
		FreeBlocks:  s.FreeRegions,
		UsedBytes:   s.UsedBytes,
		FreeBytes:   s.FreeBytes,
		TotalBytes:  s.TotalBytes(),
	}
	if pct, ok := s.Fragmentation(); ok {
		out.Fragmentation = &pct
	}
	for _, r := range rep.Regions {
		state := "used"
		if r.Free {
			state = "free"
		}
		out.Regions = append(out.Regions, jsonRegion{
			Ref:    uint32(r.Ref),
			Offset: r.Offset,
			Size:   r.Size,
			State:  state,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
