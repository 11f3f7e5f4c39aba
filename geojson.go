package quakerisk

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// regionNameProperty is the feature property that names a country in the
// usual countries.geo.json layout. Features without it fall back to their id.
const regionNameProperty = "name"

// DecodeRegions reads a GeoJSON FeatureCollection of Polygon and
// MultiPolygon features into region records, one per feature, in document
// order. Only exterior rings are kept; holes do not affect classification.
func DecodeRegions(r io.Reader) ([]RegionRecord, error) {
	var fc geojson.FeatureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decoding feature collection: %w", err)
	}

	records := make([]RegionRecord, 0, len(fc.Features))
	for i, f := range fc.Features {
		id := f.ID
		if name, ok := f.Properties[regionNameProperty].(string); ok && name != "" {
			id = name
		}

		var polys [][]LatLon
		switch g := f.Geometry.(type) {
		case *geom.Polygon:
			polys = append(polys, exteriorRing(g))
		case *geom.MultiPolygon:
			for j := 0; j < g.NumPolygons(); j++ {
				polys = append(polys, exteriorRing(g.Polygon(j)))
			}
		case nil:
			return nil, malformed("region", i, "geometry", "feature %q has no geometry", id)
		default:
			return nil, malformed("region", i, "geometry", "feature %q has unsupported geometry %T", id, g)
		}
		records = append(records, RegionRecord{ID: id, Polygons: polys})
	}
	return records, nil
}

// exteriorRing converts a polygon's shell from GeoJSON (lon, lat) order.
func exteriorRing(p *geom.Polygon) []LatLon {
	if p.NumLinearRings() == 0 {
		return nil
	}
	coords := p.LinearRing(0).Coords()
	out := make([]LatLon, len(coords))
	for i, c := range coords {
		out[i] = LatLon{c.Y(), c.X()}
	}
	return out
}
