package gapgen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cwbudde/algo-gaps/dsp/mask"
	"github.com/cwbudde/algo-gaps/dsp/window"
)

// Demo series: 2^22 samples at 0.1 Hz, about 485 days.
const (
	DemoLength     = 1 << 22
	DemoSampleRate = 0.1
)

const day = 86400.0

var presets = map[string]func() Config{
	// Antenna repointing: two gaps every ten days with a day of location
	// jitter, one hour long give or take ten minutes.
	"antenna": func() Config {
		return Config{
			Placement:      PlacementPeriodic,
			GapFrequency:   2 / (10 * day),
			GapDuration:    3600,
			LocationJitter: day,
			DurationJitter: 600,
		}
	},
	// Micrometeorite hits: ten minute gaps, one per day on average.
	"micrometeorites": func() Config {
		return Config{
			Placement:      PlacementRandomPoisson,
			GapCount:       dailyGapCount(),
			GapDuration:    600,
			DurationJitter: 60,
		}
	},
	"random": func() Config {
		return Config{
			Placement:      PlacementRandom,
			GapCount:       dailyGapCount(),
			GapDuration:    600,
			DurationJitter: 60,
		}
	},
	// Seven hour gaps every two weeks.
	"periodic": func() Config {
		return Config{
			Placement:    PlacementPeriodic,
			GapFrequency: 1 / (14 * day),
			GapDuration:  7 * 3600,
		}
	},
}

func dailyGapCount() int {
	seconds := float64(DemoLength) / DemoSampleRate
	return int(seconds / day)
}

// Presets returns the names of the built-in configurations, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Preset returns the named configuration on the demo series with a modified
// Hann taper.
func Preset(name string) (Config, error) {
	build, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Config{}, fmt.Errorf("%w: no preset %q (have %s)",
			ErrInvalidConfig, name, strings.Join(Presets(), ", "))
	}

	cfg := build()
	cfg.Length = DemoLength
	cfg.SampleRate = DemoSampleRate
	cfg.Window = window.TypeModifiedHann
	cfg.DecayLength = mask.DefaultDecayLength

	return cfg, nil
}
