package quakerisk

import (
	"sort"

	"github.com/golang/geo/s2"
)

// SelectionState is the state of the selection protocol.
type SelectionState int

const (
	Idle SelectionState = iota
	Focused
)

func (s SelectionState) String() string {
	if s == Focused {
		return "focused"
	}
	return "idle"
}

// Selection is the focus held between selection actions. The host owns it
// and passes it into every OnSelect/OnDeselect call; the zero value is Idle.
type Selection struct {
	Event *Event
	City  *City
}

// State returns Idle or Focused.
func (s Selection) State() SelectionState {
	if s.Event != nil || s.City != nil {
		return Focused
	}
	return Idle
}

// Target is what a selection action landed on. Both fields may be set when
// markers overlap; the event wins.
type Target struct {
	Event *Event
	City  *City
}

// Hit reports whether the action landed on anything.
func (t Target) Hit() bool {
	return t.Event != nil || t.City != nil
}

// OnSelect applies one selection action and returns the new selection.
//
// While focused, any action clears the focus and unhides everything. While
// idle, an event hit shows that event alone plus the cities inside its threat
// circle; a city hit shows that city alone plus the events whose own threat
// circle reaches it. An idle action that hits nothing changes nothing.
//
// OnSelect is not safe for concurrent use; callers serialise actions.
func OnSelect(sel Selection, target Target, events []*Event, cities []*City) Selection {
	return onSelect(sel, target, events, cities, nil)
}

func onSelect(sel Selection, target Target, events []*Event, cities []*City, idx *CityIndex) Selection {
	if sel.State() == Focused {
		return OnDeselect(events, cities)
	}
	switch {
	case target.Event != nil:
		return focusEvent(target.Event, events, cities, idx)
	case target.City != nil:
		return focusCity(target.City, events, cities)
	default:
		return sel
	}
}

// OnDeselect clears every hidden flag and returns an idle selection.
func OnDeselect(events []*Event, cities []*City) Selection {
	for _, e := range events {
		e.Hidden = false
	}
	for _, c := range cities {
		c.Hidden = false
	}
	return Selection{}
}

// focusEvent hides all events but focus and shows exactly the cities within
// focus's threat circle. When idx is non-nil it narrows the distance checks.
func focusEvent(focus *Event, events []*Event, cities []*City, idx *CityIndex) Selection {
	for _, e := range events {
		e.Hidden = true
	}
	focus.Hidden = false

	threat := focus.ThreatCircleKm()
	if idx != nil {
		for _, c := range cities {
			c.Hidden = true
		}
		for _, c := range idx.Within(focus.Location, threat) {
			c.Hidden = false
		}
	} else {
		for _, c := range cities {
			c.Hidden = DistanceKm(focus.Location, c.Location) > threat
		}
	}
	return Selection{Event: focus}
}

// focusCity shows the events whose threat circle reaches focus and hides
// every other city.
func focusCity(focus *City, events []*Event, cities []*City) Selection {
	for _, e := range events {
		e.Hidden = DistanceKm(focus.Location, e.Location) > e.ThreatCircleKm()
	}
	for _, c := range cities {
		c.Hidden = true
	}
	focus.Hidden = false
	return Selection{City: focus}
}

// cityCoverLevel caps the cell level used when covering a threat circle.
// Level 6 cells are roughly 150 km across, coarse enough that a covering
// stays small for continent-sized circles.
const (
	cityCoverLevel    = 6
	cityCoverMaxCells = 16
)

type indexedCity struct {
	cell s2.CellID
	city *City
}

// CityIndex is a sorted S2 leaf-cell index over a fixed city set. It finds
// the cities inside a circle without measuring the distance to every city.
type CityIndex struct {
	entries []indexedCity
}

// NewCityIndex indexes cities by the leaf cell of their location.
func NewCityIndex(cities []*City) *CityIndex {
	idx := &CityIndex{entries: make([]indexedCity, 0, len(cities))}
	for _, c := range cities {
		idx.entries = append(idx.entries, indexedCity{
			cell: s2.CellIDFromLatLng(c.Location.latLng()),
			city: c,
		})
	}
	sort.SliceStable(idx.entries, func(i, j int) bool {
		return idx.entries[i].cell < idx.entries[j].cell
	})
	return idx
}

// Len returns the number of indexed cities.
func (idx *CityIndex) Len() int {
	return len(idx.entries)
}

// Within returns the indexed cities whose distance to center is <= km,
// in index order. The candidate set comes from a covering of the circle;
// membership is decided by DistanceKm so results match a full scan.
func (idx *CityIndex) Within(center Point, km float64) []*City {
	if km < 0 || len(idx.entries) == 0 {
		return nil
	}

	cp := s2.CapFromCenterAngle(s2.PointFromLatLng(center.latLng()), kmToAngle(km))
	coverer := &s2.RegionCoverer{MaxLevel: cityCoverLevel, MaxCells: cityCoverMaxCells}
	covering := coverer.Covering(cp)

	var out []*City
	seen := make(map[*City]bool)
	for _, cell := range covering {
		lo, hi := cell.RangeMin(), cell.RangeMax()
		start := sort.Search(len(idx.entries), func(i int) bool {
			return idx.entries[i].cell >= lo
		})
		for i := start; i < len(idx.entries) && idx.entries[i].cell <= hi; i++ {
			c := idx.entries[i].city
			if seen[c] {
				continue
			}
			seen[c] = true
			if DistanceKm(center, c.Location) <= km {
				out = append(out, c)
			}
		}
	}
	return out
}
