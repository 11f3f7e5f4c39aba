package quakerisk

import (
	"sort"
	"time"
)

// RiskTally maps region IDs to the number of events tagged with them.
// A tally is built fresh by every aggregation and never updated in place.
// Regions with no events are absent.
type RiskTally struct {
	Counts      map[string]int
	Total       int
	GeneratedAt time.Time
}

// RegionCount is one tally entry.
type RegionCount struct {
	Region string
	Count  int
}

// Aggregate counts events per region tag. Only IDs present in regions are
// counted, so a tag from a different region set does not leak into the tally.
// It is a read-only reduction and must run after classification.
func Aggregate(events []*Event, regions []*Region) RiskTally {
	known := make(map[string]bool, len(regions))
	for _, r := range regions {
		known[r.ID] = true
	}

	t := RiskTally{Counts: make(map[string]int), Total: len(events)}
	for _, e := range events {
		if id, ok := e.Region(); ok && known[id] {
			t.Counts[id]++
		}
	}
	return t
}

// Landed returns the number of events attributed to some region.
func (t RiskTally) Landed() int {
	n := 0
	for _, c := range t.Counts {
		n += c
	}
	return n
}

// Oceanic returns the number of events that matched no region.
func (t RiskTally) Oceanic() int {
	return t.Total - t.Landed()
}

// Count returns the tally for a region, zero when absent.
func (t RiskTally) Count(id string) int {
	return t.Counts[id]
}

// Sorted returns the entries by count descending, then region ID.
func (t RiskTally) Sorted() []RegionCount {
	out := make([]RegionCount, 0, len(t.Counts))
	for id, c := range t.Counts {
		out = append(out, RegionCount{Region: id, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Region < out[j].Region
	})
	return out
}

// Shade range for choropleth colouring: one event maps to shadeMin and
// shadeSaturation events map to shadeMax. Counts past saturation keep
// growing linearly; renderers clamp.
const (
	shadeMin        = 10.0
	shadeMax        = 255.0
	shadeSaturation = 20.0
)

// ShadeLevel maps an event count onto the choropleth intensity scale.
func ShadeLevel(count int) int {
	return int(shadeMin + (float64(count)-1)*(shadeMax-shadeMin)/(shadeSaturation-1))
}

// Shade returns the intensity for a region. ok is false for regions without
// events, which renderers paint in a neutral colour.
func (t RiskTally) Shade(id string) (level int, ok bool) {
	c, ok := t.Counts[id]
	if !ok {
		return 0, false
	}
	return ShadeLevel(c), true
}
