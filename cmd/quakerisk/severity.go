package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/andreiashu/quakerisk"
)

type severityReport struct {
	Magnitude      float64 `yaml:"magnitude"`
	Depth          float64 `yaml:"depth"`
	Radius         float64 `yaml:"radius"`
	ThreatCircleKm float64 `yaml:"threat_circle_km"`
	DepthClass     string  `yaml:"depth_class"`
	MagnitudeClass string  `yaml:"magnitude_class"`
}

var severityCmd = &cobra.Command{
	Use:   "severity <magnitude>",
	Short: "Print radius, threat circle and buckets for a magnitude",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := strconv.ParseFloat(args[0], 64)
		if err != nil || math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
			return eris.Errorf("severity: invalid magnitude %q", args[0])
		}
		depth, _ := cmd.Flags().GetFloat64("depth")
		if math.IsNaN(depth) || math.IsInf(depth, 0) {
			return eris.Errorf("severity: invalid depth %v", depth)
		}
		format, _ := cmd.Flags().GetString("format")

		s := quakerisk.SeverityOf(&quakerisk.Event{Magnitude: m, Depth: depth})
		report := severityReport{
			Magnitude:      m,
			Depth:          depth,
			Radius:         s.Radius,
			ThreatCircleKm: s.ThreatCircleKm,
			DepthClass:     s.Depth.String(),
			MagnitudeClass: s.Magnitude.String(),
		}

		out := cmd.OutOrStdout()
		switch format {
		case "yaml":
			enc := yaml.NewEncoder(out)
			defer enc.Close()
			return enc.Encode(report)
		case "text":
			fmt.Fprintf(out, "magnitude %.1f (%s), depth %.1f km (%s)\n", m, report.MagnitudeClass, depth, report.DepthClass)
			fmt.Fprintf(out, "radius %.2f, threat circle %.1f km\n", report.Radius, report.ThreatCircleKm)
			return nil
		default:
			return eris.Errorf("severity: unknown format %q", format)
		}
	},
}

func init() {
	severityCmd.Flags().Float64("depth", 10, "hypocentre depth in km")
	severityCmd.Flags().String("format", "text", "output format: text or yaml")
}
