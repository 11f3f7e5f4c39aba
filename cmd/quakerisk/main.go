// Command quakerisk maintains the region cache used by the quakerisk engine
// and prints severity figures for a magnitude.
//
// Usage:
//
//	quakerisk update-cache --geojson countries.geo.json
//	quakerisk validate
//	quakerisk severity 6.5 --depth 33 --format yaml
//
// Settings come from ./quakerisk.yaml and QUAKERISK_* environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfg *config

var rootCmd = &cobra.Command{
	Use:   "quakerisk",
	Short: "Earthquake region classification tooling",
	Long:  "Builds and checks the country region cache and reports magnitude-derived threat figures.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := initLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(updateCacheCmd, validateCmd, severityCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
