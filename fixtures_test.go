package quakerisk

import "testing"

// square returns an axis-aligned ring from (lat0, lon0) to (lat1, lon1).
func square(lat0, lon0, lat1, lon1 float64) Ring {
	return Ring{
		{Lat: lat0, Lon: lon0},
		{Lat: lat0, Lon: lon1},
		{Lat: lat1, Lon: lon1},
		{Lat: lat1, Lon: lon0},
	}
}

// lShape covers lat 0..10 x lon 0..5 plus lat 0..5 x lon 5..10.
func lShape() Ring {
	return Ring{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 10},
		{Lat: 5, Lon: 10},
		{Lat: 5, Lon: 5},
		{Lat: 10, Lon: 5},
		{Lat: 10, Lon: 0},
	}
}

// testRegions builds the shared fixture: a simple square, a two-island
// composite and a concave region, in that order.
func testRegions(t testing.TB) []*Region {
	t.Helper()

	squareland, err := NewRegion("Squareland", square(0, 0, 10, 10))
	if err != nil {
		t.Fatalf("NewRegion(Squareland) error: %v", err)
	}
	archipelago, err := NewRegion("Archipelago", square(20, 20, 22, 22), square(30, 30, 32, 32))
	if err != nil {
		t.Fatalf("NewRegion(Archipelago) error: %v", err)
	}
	concavia, err := NewRegion("Concavia", translate(lShape(), -40, -40))
	if err != nil {
		t.Fatalf("NewRegion(Concavia) error: %v", err)
	}
	return []*Region{squareland, archipelago, concavia}
}

func translate(r Ring, dLat, dLon float64) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = Point{Lat: p.Lat + dLat, Lon: p.Lon + dLon}
	}
	return out
}

func newEvent(lat, lon, mag, depth float64, title string) *Event {
	return &Event{Location: Point{Lat: lat, Lon: lon}, Magnitude: mag, Depth: depth, Title: title}
}

func newCity(lat, lon float64, name string) *City {
	return &City{Location: Point{Lat: lat, Lon: lon}, Name: name}
}

func mustRegion(t testing.TB, id string, rings ...Ring) *Region {
	t.Helper()
	r, err := NewRegion(id, rings...)
	if err != nil {
		t.Fatalf("NewRegion(%s) error: %v", id, err)
	}
	return r
}
