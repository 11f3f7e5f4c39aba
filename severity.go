package quakerisk

import "math"

// Thresholds carried over from the earthquake map this engine was built for.
const (
	// ThresholdModerate is the magnitude at or above which a quake is moderate.
	ThresholdModerate = 5.0
	// ThresholdLight is the magnitude at or above which a quake is light.
	ThresholdLight = 4.0

	// ThresholdIntermediate is the upper bound (km, inclusive) of shallow depth.
	ThresholdIntermediate = 70.0
	// ThresholdDeep is the upper bound (km, inclusive) of intermediate depth.
	ThresholdDeep = 300.0
)

// Threat circle constants: magnitude 5 anchors a 20 mile radius, each whole
// magnitude multiplies it by 1.8², and 1.6 converts miles to kilometres.
const (
	threatBaseMiles   = 20.0
	threatGrowth      = 1.8
	threatAnchorShift = 5.0
	milesToKm         = 1.6
)

// Radius returns the display radius for a magnitude. It is used for marker
// sizing only, never for containment.
func Radius(m float64) float64 {
	return 1.75 * (2 * m)
}

// ThreatCircleKm returns the distance within which an event of magnitude m
// is considered a threat to a city.
func ThreatCircleKm(m float64) float64 {
	return threatBaseMiles * math.Pow(threatGrowth, 2*m-threatAnchorShift) * milesToKm
}

// DepthClass buckets hypocentre depth for renderers.
type DepthClass int

const (
	Shallow DepthClass = iota
	Intermediate
	Deep
)

func (d DepthClass) String() string {
	switch d {
	case Shallow:
		return "shallow"
	case Intermediate:
		return "intermediate"
	default:
		return "deep"
	}
}

// DepthBucket classifies a depth in km. Depths at or above the surface
// (d <= 0) have no bucket of their own and land in Deep, matching the colour
// scheme the buckets were taken from.
func DepthBucket(d float64) DepthClass {
	switch {
	case d > 0 && d <= ThresholdIntermediate:
		return Shallow
	case d > ThresholdIntermediate && d <= ThresholdDeep:
		return Intermediate
	default:
		return Deep
	}
}

// MagnitudeClass buckets magnitude by the light/moderate thresholds.
type MagnitudeClass int

const (
	Minor MagnitudeClass = iota
	Light
	Moderate
)

func (c MagnitudeClass) String() string {
	switch c {
	case Light:
		return "light"
	case Moderate:
		return "moderate"
	default:
		return "minor"
	}
}

// ClassifyMagnitude returns the magnitude class for m.
func ClassifyMagnitude(m float64) MagnitudeClass {
	switch {
	case m >= ThresholdModerate:
		return Moderate
	case m >= ThresholdLight:
		return Light
	default:
		return Minor
	}
}

// Severity bundles every magnitude/depth derived figure for one event.
type Severity struct {
	Radius         float64
	ThreatCircleKm float64
	Depth          DepthClass
	Magnitude      MagnitudeClass
}

// SeverityOf computes the severity figures for an event.
func SeverityOf(e *Event) Severity {
	return Severity{
		Radius:         Radius(e.Magnitude),
		ThreatCircleKm: ThreatCircleKm(e.Magnitude),
		Depth:          DepthBucket(e.Depth),
		Magnitude:      ClassifyMagnitude(e.Magnitude),
	}
}
