package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andreiashu/quakerisk"
)

var updateCacheCmd = &cobra.Command{
	Use:   "update-cache",
	Short: "Regenerate the region cache from a GeoJSON country file",
	Long: `Decodes a GeoJSON FeatureCollection of country polygons, validates every
region and writes regions.dmp to the cache directory, removing any older
regions.dmp.bz2. Compress it afterwards with:

	bzip2 -f quakerisk-cache/regions.dmp`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("geojson")
		if path == "" {
			path = cfg.GeoJSON
		}

		regions, err := quakerisk.RegenerateCache(path,
			quakerisk.WithCacheDir(cfg.CacheDir),
			quakerisk.WithLogger(zap.L()))
		if err != nil {
			return err
		}

		composite := 0
		for _, r := range regions {
			if r.Composite() {
				composite++
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cached %d regions (%d composite) in %s\n", len(regions), composite, cfg.CacheDir)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the region cache and check its integrity",
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := quakerisk.NewEngineFromCache(
			quakerisk.WithCacheDir(cfg.CacheDir),
			quakerisk.WithLogger(zap.L()))
		if err != nil {
			return err
		}

		polygons := 0
		for _, r := range eng.Regions() {
			polygons += len(r.Polygons)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Region count: %d (OK)\n", len(eng.Regions()))
		fmt.Fprintf(cmd.OutOrStdout(), "Polygon count: %d (OK)\n", polygons)
		return nil
	},
}

func init() {
	updateCacheCmd.Flags().String("geojson", "", "GeoJSON country file (default from config)")
}
