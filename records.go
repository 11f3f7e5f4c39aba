package quakerisk

import (
	"math"
	"strconv"
	"strings"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"go.uber.org/zap"
)

// LatLon is a raw coordinate pair as it appears in region sources.
type LatLon [2]float64

// RegionRecord is a region as supplied by an external loader.
type RegionRecord struct {
	ID       string
	Polygons [][]LatLon
}

// EventRecord is an event as supplied by a feed parser. Numeric fields are
// kept as text so that non-numeric values can be rejected here rather than
// silently becoming zero.
type EventRecord struct {
	Lat       string
	Lon       string
	Magnitude string
	Depth     string
	Title     string
}

// CityRecord is a city as supplied by an external loader. An empty
// Population means the source has no figure.
type CityRecord struct {
	Lat        string
	Lon        string
	Name       string
	Population string
}

// eventKeyPrecision is the geohash length used for event identity.
// Nine characters resolve to a few metres.
const eventKeyPrecision = 9

// BuildRegions validates region records and converts them to regions in the
// same order. Region IDs must be unique.
func BuildRegions(records []RegionRecord) ([]*Region, error) {
	regions := make([]*Region, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		if seen[rec.ID] {
			return nil, malformed("region", i, "id", "duplicate region id %q", rec.ID)
		}
		seen[rec.ID] = true

		rings := make([]Ring, len(rec.Polygons))
		for j, poly := range rec.Polygons {
			ring := make(Ring, len(poly))
			for k, ll := range poly {
				ring[k] = Point{Lat: ll[0], Lon: ll[1]}
			}
			rings[j] = ring
		}
		r, err := newRegion(i, rec.ID, rings)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// BuildEvents validates event records and converts them to events in the
// same order. Every valid record becomes an event; see DropDuplicateEvents
// for feeds that re-emit entries.
func BuildEvents(records []EventRecord) ([]*Event, error) {
	events := make([]*Event, 0, len(records))
	for i, rec := range records {
		loc, err := parseLocation("event", i, rec.Lat, rec.Lon)
		if err != nil {
			return nil, err
		}
		mag, err := parseNumber("event", i, "magnitude", rec.Magnitude)
		if err != nil {
			return nil, err
		}
		if mag < 0 {
			return nil, malformed("event", i, "magnitude", "negative magnitude %v", mag)
		}
		depth, err := parseNumber("event", i, "depth", rec.Depth)
		if err != nil {
			return nil, err
		}

		events = append(events, &Event{
			Location:  loc,
			Magnitude: mag,
			Depth:     depth,
			Title:     rec.Title,
			Key:       eventKey(loc, mag),
		})
	}
	return events, nil
}

// DropDuplicateEvents returns events without the entries that repeat an
// earlier event's key and title. Feeds re-emit entries when they are updated
// upstream; hosts that want one event per quake call this before
// classification. The input slice is not modified.
func DropDuplicateEvents(events []*Event, logger *zap.Logger) []*Event {
	if logger == nil {
		logger = zap.NewNop()
	}

	out := make([]*Event, 0, len(events))
	seen := make(map[string]bool, len(events))
	for _, e := range events {
		k := e.Key + "\x00" + e.Title
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, e)
	}
	if dropped := len(events) - len(out); dropped > 0 {
		logger.Info("dropped duplicate events", zap.Int("dropped", dropped), zap.Int("kept", len(out)))
	}
	return out
}

// BuildCities validates city records and converts them to cities.
func BuildCities(records []CityRecord) ([]*City, error) {
	cities := make([]*City, 0, len(records))
	for i, rec := range records {
		loc, err := parseLocation("city", i, rec.Lat, rec.Lon)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			return nil, malformed("city", i, "name", "empty city name")
		}
		c := &City{Location: loc, Name: name}
		if p := strings.TrimSpace(rec.Population); p != "" {
			pop, err := strconv.ParseInt(p, 10, 64)
			if err != nil || pop < 0 {
				return nil, malformed("city", i, "population", "invalid population %q", rec.Population)
			}
			c.Population = &pop
		}
		cities = append(cities, c)
	}
	return cities, nil
}

// eventKey identifies an event by where it happened and how strong it was.
// The magnitude is written in full so distinct readings never share a key.
func eventKey(loc Point, mag float64) string {
	return geohash.EncodeWithPrecision(loc.Lat, loc.Lon, eventKeyPrecision) + "/" + strconv.FormatFloat(mag, 'g', -1, 64)
}

func parseNumber(kind string, index int, field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, malformed(kind, index, field, "non-numeric %s %q", field, raw)
	}
	return v, nil
}

func parseLocation(kind string, index int, lat, lon string) (Point, error) {
	la, err := parseNumber(kind, index, "lat", lat)
	if err != nil {
		return Point{}, err
	}
	lo, err := parseNumber(kind, index, "lon", lon)
	if err != nil {
		return Point{}, err
	}
	p := Point{Lat: la, Lon: lo}
	if !p.valid() {
		return Point{}, malformed(kind, index, "location", "coordinate (%v, %v) out of range", la, lo)
	}
	return p, nil
}
