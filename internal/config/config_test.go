package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-gaps/dsp/gapgen"
	"github.com/cwbudde/algo-gaps/dsp/window"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gapgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	g, err := c.Gapgen()
	require.NoError(t, err)
	assert.Equal(t, gapgen.DemoLength, g.Length)
	assert.Equal(t, window.TypeRectangular, g.Window)
	assert.Equal(t, 160, g.DecayLength)
}

func TestLoadFromYAML(t *testing.T) {
	path := writeConfig(t, `
seed: 42
series:
  length: 10000
  sample_rate: 1
gaps:
  type: random_poisson
  count: 5
  duration: 100
  duration_jitter: 2
window:
  type: hann
output:
  path: out.json
log:
  level: debug
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, 10000, c.Series.Length)
	assert.Equal(t, "out.json", c.Output.Path)
	assert.Equal(t, "debug", c.Log.Level)

	g, err := c.Gapgen()
	require.NoError(t, err)
	assert.Equal(t, gapgen.PlacementRandomPoisson, g.Placement)
	assert.Equal(t, window.TypeHann, g.Window)
	assert.Equal(t, 5, g.GapCount)
	assert.InDelta(t, 2.0, g.DurationJitter, 0)
	// untouched fields keep their defaults
	assert.Equal(t, 160, g.DecayLength)
}

func TestLoadPresetWithFileOverride(t *testing.T) {
	path := writeConfig(t, `
preset: antenna
window:
  decay_length: 260
`)

	c, err := Load(path)
	require.NoError(t, err)

	want, err := gapgen.Preset("antenna")
	require.NoError(t, err)

	g, err := c.Gapgen()
	require.NoError(t, err)

	assert.Equal(t, want.Placement, g.Placement)
	assert.InDelta(t, want.GapFrequency, g.GapFrequency, 0)
	assert.Equal(t, window.TypeModifiedHann, g.Window)
	assert.Equal(t, 260, g.DecayLength)
	assert.Equal(t, "antenna", c.Preset)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
series:
  length: 5000
gaps:
  count: 3
  duration: 10
`)

	t.Setenv("GAPGEN_LENGTH", "8000")
	t.Setenv("GAPGEN_WINDOW", "blackman")
	t.Setenv("GAPGEN_SEED", "7")
	t.Setenv("GAPGEN_DEBUG", "true")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8000, c.Series.Length)
	assert.Equal(t, 3, c.Gaps.Count)
	assert.Equal(t, "blackman", c.Window.Type)
	assert.Equal(t, uint64(7), c.Seed)
	assert.True(t, c.Log.Debug)
}

func TestLoadEnvPreset(t *testing.T) {
	t.Setenv("GAPGEN_PRESET", "periodic")

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "periodic", c.Gaps.Type)
	assert.Equal(t, "periodic", c.Preset)
}

func TestLoadMalformedEnv(t *testing.T) {
	t.Setenv("GAPGEN_GAP_COUNT", "many")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GAPGEN_GAP_COUNT")
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":     "series: [",
		"gap type":     "gaps:\n  type: burst\n",
		"window":       "window:\n  type: kaiser\n",
		"length":       "series:\n  length: 0\n",
		"log level":    "log:\n  level: loud\n",
		"output":       "output:\n  path: mask.hdf5\n",
		"preset":       "preset: solar\n",
		"periodic gap": "gaps:\n  type: periodic\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			require.Error(t, err)
		})
	}
}

func TestLoadPresetArgumentWins(t *testing.T) {
	t.Setenv("GAPGEN_PRESET", "periodic")
	path := writeConfig(t, "preset: antenna\n")

	c, err := LoadPreset(path, "micrometeorites")
	require.NoError(t, err)

	assert.Equal(t, "micrometeorites", c.Preset)
	assert.Equal(t, "random_poisson", c.Gaps.Type)
}
