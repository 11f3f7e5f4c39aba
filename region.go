package quakerisk

import (
	"github.com/golang/geo/s2"
)

// Region is a named area made of one or more polygons. Composite regions
// (archipelagos, exclaves) contain a point when any member polygon does.
type Region struct {
	ID       string
	Polygons []Polygon
	bound    s2.Rect
}

// NewRegion validates the rings and builds an immutable region. Regions are
// the only place polygons enter the package, so validation happens here and
// nowhere else.
func NewRegion(id string, rings ...Ring) (*Region, error) {
	return newRegion(-1, id, rings)
}

func newRegion(index int, id string, rings []Ring) (*Region, error) {
	if id == "" {
		return nil, malformed("region", index, "id", "empty region id")
	}
	if len(rings) == 0 {
		return nil, malformed("region", index, "polygons", "region %q has no polygons", id)
	}

	r := &Region{ID: id, Polygons: make([]Polygon, 0, len(rings)), bound: s2.EmptyRect()}
	for i, ring := range rings {
		ring = closeRing(ring)
		if len(ring) < 3 {
			return nil, malformed("region", index, "polygons", "region %q polygon %d has %d vertices, want >= 3", id, i, len(ring))
		}
		for _, p := range ring {
			if !p.valid() {
				return nil, malformed("region", index, "polygons", "region %q polygon %d has invalid coordinate (%v, %v)", id, i, p.Lat, p.Lon)
			}
		}
		pg := newPolygon(ring)
		r.Polygons = append(r.Polygons, pg)
		r.bound = r.bound.Union(pg.Bound())
	}
	return r, nil
}

// Composite reports whether the region is made of more than one polygon.
func (r *Region) Composite() bool {
	return len(r.Polygons) > 1
}

// Bound returns the union of the member polygon bounds.
func (r *Region) Bound() s2.Rect {
	return r.bound
}

// Contains reports whether any member polygon contains p. Members are tested
// in order and the first match wins.
func (r *Region) Contains(p Point) bool {
	for _, pg := range r.Polygons {
		if pg.Contains(p) {
			return true
		}
	}
	return false
}

// Rings returns copies of the member rings, e.g. for caching.
func (r *Region) Rings() []Ring {
	rings := make([]Ring, len(r.Polygons))
	for i, pg := range r.Polygons {
		rings[i] = append(Ring(nil), pg.Ring...)
	}
	return rings
}
