package quakerisk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadius(t *testing.T) {
	assert.Equal(t, 0.0, Radius(0))
	assert.InDelta(t, 17.5, Radius(5), 1e-12)
	assert.InDelta(t, 22.75, Radius(6.5), 1e-12)
}

func TestThreatCircleKm(t *testing.T) {
	t.Run("magnitude 5 anchors 20 miles", func(t *testing.T) {
		assert.InDelta(t, 32.0, ThreatCircleKm(5), 1e-9)
	})

	t.Run("magnitude 6.5 matches the closed form", func(t *testing.T) {
		want := 20.0 * math.Pow(1.8, 8) * 1.6
		assert.InDelta(t, want, ThreatCircleKm(6.5), 1e-9)
		assert.InDelta(t, 3526.387, ThreatCircleKm(6.5), 0.001)
	})

	t.Run("each whole magnitude multiplies by 3.24", func(t *testing.T) {
		for m := 0.0; m <= 9.5; m += 0.5 {
			ratio := ThreatCircleKm(m+1) / ThreatCircleKm(m)
			assert.InDelta(t, 3.24, ratio, 1e-9, "magnitude %v", m)
		}
	})

	t.Run("strictly increasing and non-negative", func(t *testing.T) {
		prev := ThreatCircleKm(0)
		assert.Greater(t, prev, 0.0)
		for m := 0.1; m <= 10; m += 0.1 {
			cur := ThreatCircleKm(m)
			assert.Greater(t, cur, prev, "magnitude %v", m)
			prev = cur
		}
	})
}

func TestDepthBucket(t *testing.T) {
	tests := []struct {
		depth float64
		want  DepthClass
	}{
		{0.1, Shallow},
		{10, Shallow},
		{70, Shallow},
		{70.01, Intermediate},
		{300, Intermediate},
		{300.5, Deep},
		{650, Deep},
		// At or above the surface there is no shallow bucket.
		{0, Deep},
		{-1.2, Deep},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DepthBucket(tt.depth), "depth %v", tt.depth)
	}
}

func TestClassifyMagnitude(t *testing.T) {
	assert.Equal(t, Minor, ClassifyMagnitude(2.5))
	assert.Equal(t, Minor, ClassifyMagnitude(3.99))
	assert.Equal(t, Light, ClassifyMagnitude(4))
	assert.Equal(t, Light, ClassifyMagnitude(4.9))
	assert.Equal(t, Moderate, ClassifyMagnitude(5))
	assert.Equal(t, Moderate, ClassifyMagnitude(8.1))
}

func TestSeverityOf(t *testing.T) {
	e := newEvent(0, 0, 6.5, 120, "M 6.5 - test")
	s := SeverityOf(e)

	assert.Equal(t, Radius(6.5), s.Radius)
	assert.Equal(t, ThreatCircleKm(6.5), s.ThreatCircleKm)
	assert.Equal(t, Intermediate, s.Depth)
	assert.Equal(t, Moderate, s.Magnitude)
	assert.Equal(t, e.ThreatCircleKm(), s.ThreatCircleKm)
	assert.Equal(t, e.Radius(), s.Radius)
}

func TestSeverityStrings(t *testing.T) {
	assert.Equal(t, "shallow", Shallow.String())
	assert.Equal(t, "intermediate", Intermediate.String())
	assert.Equal(t, "deep", Deep.String())
	assert.Equal(t, "minor", Minor.String())
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "moderate", Moderate.String())
}
