package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeverityCommand(t *testing.T) {
	out, err := execute(t, "severity", "6.5", "--depth", "33", "--format", "yaml")
	require.NoError(t, err)

	var report severityReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, 6.5, report.Magnitude)
	assert.Equal(t, 22.75, report.Radius)
	assert.InDelta(t, 3526.387, report.ThreatCircleKm, 0.001)
	assert.Equal(t, "shallow", report.DepthClass)
	assert.Equal(t, "moderate", report.MagnitudeClass)

	out, err = execute(t, "severity", "3.2", "--depth", "400", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "(minor)")
	assert.Contains(t, out, "(deep)")

	_, err = execute(t, "severity", "strong")
	assert.Error(t, err)

	_, err = execute(t, "severity", "5", "--format", "xml")
	assert.Error(t, err)
}

func TestSeverityCommand_RejectsNonFinite(t *testing.T) {
	for _, arg := range []string{"NaN", "Inf", "-Inf", "-1"} {
		t.Run(arg, func(t *testing.T) {
			_, err := execute(t, "severity", "--format", "text", "--depth", "10", "--", arg)
			assert.Error(t, err)
		})
	}

	_, err := execute(t, "severity", "5", "--format", "text", "--depth", "NaN")
	assert.Error(t, err)
	_, err = execute(t, "severity", "5", "--depth", "10")
	assert.NoError(t, err)
}

func TestCacheCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUAKERISK_CACHE_DIR", dir)

	_, err := execute(t, "validate")
	assert.Error(t, err, "validate without a cache")

	src := filepath.Join("..", "..", "testdata", "countries.geo.json")
	out, err := execute(t, "update-cache", "--geojson", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Cached 3 regions (1 composite)")

	out, err = execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Region count: 3 (OK)")
	assert.Contains(t, out, "Polygon count: 4 (OK)")
}
