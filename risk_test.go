package quakerisk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	regions := testRegions(t)
	events := []*Event{
		newEvent(1, 1, 5, 10, "a"),
		newEvent(2, 2, 5, 10, "b"),
		newEvent(3, 3, 5, 10, "c"),
		newEvent(21, 21, 5, 10, "d"),
		newEvent(31, 31, 5, 10, "e"),
		newEvent(60, 60, 5, 10, "f"),
		newEvent(-60, -60, 5, 10, "g"),
	}

	tally := ClassifyAll(events, regions)

	assert.Equal(t, 7, tally.Total)
	assert.Equal(t, map[string]int{"Squareland": 3, "Archipelago": 2}, tally.Counts)
	assert.Equal(t, 5, tally.Landed())
	assert.Equal(t, 2, tally.Oceanic())
	assert.Equal(t, 0, tally.Count("Concavia"))
	_, present := tally.Counts["Concavia"]
	assert.False(t, present, "zero-count regions must be omitted")

	assert.Equal(t, []RegionCount{
		{Region: "Squareland", Count: 3},
		{Region: "Archipelago", Count: 2},
	}, tally.Sorted())
}

func TestAggregate_SumPlusOceanicIsTotal(t *testing.T) {
	regions := testRegions(t)
	var events []*Event
	for lat := -50.0; lat <= 40; lat += 2.5 {
		for lon := -50.0; lon <= 40; lon += 2.5 {
			events = append(events, newEvent(lat, lon, 4.5, 10, ""))
		}
	}

	tally := ClassifyAll(events, regions)
	sum := 0
	for _, c := range tally.Counts {
		require.Greater(t, c, 0)
		sum += c
	}
	oceanic := 0
	for _, e := range events {
		if e.Kind() == Ocean {
			oceanic++
		}
	}
	assert.Equal(t, len(events), sum+oceanic)
	assert.Equal(t, oceanic, tally.Oceanic())
}

func TestAggregate_IgnoresUnknownTags(t *testing.T) {
	regions := testRegions(t)
	e := newEvent(50, 50, 5, 10, "foreign")
	e.SetRegion("Atlantis")

	tally := Aggregate([]*Event{e}, regions)
	assert.Empty(t, tally.Counts)
	assert.Equal(t, 1, tally.Oceanic())
}

func TestAggregate_IsFresh(t *testing.T) {
	regions := testRegions(t)
	events := []*Event{newEvent(5, 5, 5, 10, "a")}

	first := ClassifyAll(events, regions)
	first.Counts["Squareland"] = 99

	second := Aggregate(events, regions)
	assert.Equal(t, 1, second.Count("Squareland"))
}

func TestShadeLevel(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{1, 10},
		{2, 22},
		{10, 126},
		{20, 255},
		{39, 500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShadeLevel(tt.count), "count %d", tt.count)
	}

	tally := RiskTally{Counts: map[string]int{"Squareland": 20}, Total: 25}
	level, ok := tally.Shade("Squareland")
	assert.True(t, ok)
	assert.Equal(t, 255, level)

	_, ok = tally.Shade("Concavia")
	assert.False(t, ok)
}
