package quakerisk

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// earthRadiusKm is the mean Earth radius used to turn S2 angles into
// kilometres. The threat circle was calibrated against a 6371 km haversine,
// which the S2 great-circle angle reproduces.
const earthRadiusKm = 6371.0

// Point is a WGS-84 coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// latLng converts the point to an S2 coordinate.
func (p Point) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lon)
}

func (p Point) valid() bool {
	return !math.IsNaN(p.Lat) && !math.IsNaN(p.Lon) &&
		!math.IsInf(p.Lat, 0) && !math.IsInf(p.Lon, 0) &&
		p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// DistanceKm returns the great-circle distance between two points.
// Every distance comparison in the package goes through this function.
func DistanceKm(a, b Point) float64 {
	return float64(a.latLng().Distance(b.latLng())) * earthRadiusKm
}

// kmToAngle converts a surface distance to an angle on the unit sphere.
func kmToAngle(km float64) s1.Angle {
	return s1.Angle(km / earthRadiusKm)
}

// Ring is a closed sequence of vertices. The closing edge from the last
// vertex back to the first is implied.
type Ring []Point

// closeRing drops a duplicated closing vertex so every ring is stored in
// the same form regardless of how the source encoded it.
func closeRing(r Ring) Ring {
	if len(r) > 1 && r[0] == r[len(r)-1] {
		return r[:len(r)-1]
	}
	return r
}

// PointInRing reports whether p lies inside ring using even-odd ray casting.
//
// The ray runs from p toward increasing latitude along p's meridian. An edge
// counts as a crossing when exactly one of its endpoints has Lon > p.Lon, so
// a vertex shared by two edges is counted once. Points on an edge therefore
// resolve deterministically: on the low-longitude/low-latitude sides they are
// inside, on the opposite sides outside. Rings with fewer than three vertices
// contain nothing.
func PointInRing(p Point, ring Ring) bool {
	ring = closeRing(ring)
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		a, b := ring[i], ring[j]
		if (a.Lon > p.Lon) != (b.Lon > p.Lon) {
			crossLat := (b.Lat-a.Lat)*(p.Lon-a.Lon)/(b.Lon-a.Lon) + a.Lat
			if p.Lat < crossLat {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Polygon is a single closed ring with a precomputed bounding box.
type Polygon struct {
	Ring Ring
	lat  r1.Interval // degrees
	lon  r1.Interval // degrees, planar: never wraps at the antimeridian
}

// newPolygon stores the ring in closed form and computes its bounding box.
func newPolygon(r Ring) Polygon {
	r = closeRing(r)
	pg := Polygon{Ring: r, lat: r1.EmptyInterval(), lon: r1.EmptyInterval()}
	for _, p := range r {
		pg.lat = pg.lat.AddPoint(p.Lat)
		pg.lon = pg.lon.AddPoint(p.Lon)
	}
	return pg
}

// Bound returns the polygon's latitude/longitude bounding rectangle.
func (pg Polygon) Bound() s2.Rect {
	if pg.lat.IsEmpty() || pg.lon.IsEmpty() {
		return s2.EmptyRect()
	}
	lo := s2.LatLngFromDegrees(pg.lat.Lo, pg.lon.Lo)
	hi := s2.LatLngFromDegrees(pg.lat.Hi, pg.lon.Hi)
	return s2.Rect{
		Lat: r1.Interval{Lo: lo.Lat.Radians(), Hi: hi.Lat.Radians()},
		Lng: s1.IntervalFromEndpoints(lo.Lng.Radians(), hi.Lng.Radians()),
	}
}

// Contains reports whether p is inside the polygon. The box is compared in
// plain degrees, the same plane ray casting works in, so it only rejects
// points that PointInRing would also reject.
func (pg Polygon) Contains(p Point) bool {
	if !pg.lat.Contains(p.Lat) || !pg.lon.Contains(p.Lon) {
		return false
	}
	return PointInRing(p, pg.Ring)
}
