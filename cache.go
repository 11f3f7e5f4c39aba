package quakerisk

import (
	"bytes"
	"compress/bzip2"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// regionCacheFile is the gob dump of validated region records. A bzip2
// compressed copy (regionCacheFile + ".bz2") takes precedence when present.
const regionCacheFile = "regions.dmp"

// storeRegions writes the regions to the cache directory.
func storeRegions(dir string, regions []*Region) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	records := make([]RegionRecord, len(regions))
	for i, r := range regions {
		rec := RegionRecord{ID: r.ID, Polygons: make([][]LatLon, len(r.Polygons))}
		for j, pg := range r.Polygons {
			ring := make([]LatLon, len(pg.Ring))
			for k, p := range pg.Ring {
				ring[k] = LatLon{p.Lat, p.Lon}
			}
			rec.Polygons[j] = ring
		}
		records[i] = rec
	}

	b := new(bytes.Buffer)
	if err := gob.NewEncoder(b).Encode(records); err != nil {
		return fmt.Errorf("encoding regions: %w", err)
	}
	path := filepath.Join(dir, regionCacheFile)
	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing region cache: %w", err)
	}
	// A compressed copy is read first, so an old one would shadow this write.
	if err := os.Remove(path + ".bz2"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing stale compressed cache: %w", err)
	}
	return nil
}

// loadRegions reads and revalidates the cached regions.
func loadRegions(dir string) ([]*Region, error) {
	r, cleanup, err := openOptionallyBzippedFile(filepath.Join(dir, regionCacheFile))
	if err != nil {
		return nil, err
	}
	defer cleanup()

	var records []RegionRecord
	if err := gob.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding region cache: %w", err)
	}
	return BuildRegions(records)
}

func openOptionallyBzippedFile(file string) (io.Reader, func() error, error) {
	fh, err := os.Open(file + ".bz2")
	if err != nil {
		fh, err = os.Open(file)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", file, err)
		}
		return fh, fh.Close, nil
	}
	return bzip2.NewReader(fh), fh.Close, nil
}
