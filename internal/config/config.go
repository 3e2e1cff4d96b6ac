// Package config loads the gapgen command configuration.
//
// Values are resolved in the order defaults, preset, YAML file, environment:
// a later source overrides an earlier one field by field. A preset named in
// the file or in GAPGEN_PRESET replaces the defaults before the file is
// applied, so a file can start from a preset and change single fields.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-gaps/dsp/gapgen"
	"github.com/cwbudde/algo-gaps/dsp/mask"
	"github.com/cwbudde/algo-gaps/dsp/window"
	"github.com/cwbudde/algo-gaps/logging"
	"github.com/cwbudde/algo-gaps/maskfile"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GAPGEN_"

// Config is the full command configuration.
type Config struct {
	Preset string `yaml:"preset"`
	// Seed of the random source. 0 picks a random seed.
	Seed   uint64       `yaml:"seed"`
	Series SeriesConfig `yaml:"series"`
	Gaps   GapsConfig   `yaml:"gaps"`
	Window WindowConfig `yaml:"window"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// SeriesConfig describes the sampled series.
type SeriesConfig struct {
	Length     int     `yaml:"length"`
	SampleRate float64 `yaml:"sample_rate"`
}

// GapsConfig describes gap placement. Times are in seconds.
type GapsConfig struct {
	Type           string    `yaml:"type"`
	Count          int       `yaml:"count"`
	Duration       float64   `yaml:"duration"`
	Durations      []float64 `yaml:"durations"`
	Frequency      float64   `yaml:"frequency"`
	LocationJitter float64   `yaml:"location_jitter"`
	DurationJitter float64   `yaml:"duration_jitter"`
}

// WindowConfig selects the taper at gap edges.
type WindowConfig struct {
	Type        string `yaml:"type"`
	DecayLength int    `yaml:"decay_length"`
}

// OutputConfig selects where masks are written.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	Debug bool   `yaml:"debug"`
}

// Default returns a gapless rectangular configuration on the demo series.
func Default() Config {
	return Config{
		Series: SeriesConfig{
			Length:     gapgen.DemoLength,
			SampleRate: gapgen.DemoSampleRate,
		},
		Gaps: GapsConfig{
			Type: gapgen.PlacementRandom.String(),
		},
		Window: WindowConfig{
			Type:        window.TypeRectangular.String(),
			DecayLength: mask.DefaultDecayLength,
		},
		Output: OutputConfig{Path: "mask.msgpack"},
		Log:    LogConfig{Level: "warn"},
	}
}

// FromPreset returns Default with the gap, series and window settings of the
// named gapgen preset.
func FromPreset(name string) (Config, error) {
	p, err := gapgen.Preset(name)
	if err != nil {
		return Config{}, err
	}

	c := Default()
	c.Preset = name
	c.Series = SeriesConfig{Length: p.Length, SampleRate: p.SampleRate}
	c.Gaps = GapsConfig{
		Type:           p.Placement.String(),
		Count:          p.GapCount,
		Duration:       p.GapDuration,
		Durations:      p.GapDurations,
		Frequency:      p.GapFrequency,
		LocationJitter: p.LocationJitter,
		DurationJitter: p.DurationJitter,
	}
	c.Window = WindowConfig{Type: p.Window.String(), DecayLength: p.DecayLength}

	return c, nil
}

// Load resolves the configuration from path (optional) and the environment.
// A missing file is not an error.
func Load(path string) (Config, error) {
	return LoadPreset(path, "")
}

// LoadPreset is Load with a preset that takes precedence over the one named
// in the file or the environment. An empty preset defers to them.
func LoadPreset(path, preset string) (Config, error) {
	data, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if preset == "" {
		preset = cfg.Preset
		if v, ok := lookup("PRESET"); ok {
			preset = v
		}
	}

	if preset != "" {
		cfg, err = FromPreset(preset)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}

		cfg.Preset = preset
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logging.Debug("config file not found, using defaults", logging.Fields{"path": path})
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return data, nil
}

// applyEnv overrides fields from GAPGEN_* variables. Malformed numbers are
// reported rather than ignored.
func applyEnv(c *Config) error {
	str := map[string]*string{
		"GAP_TYPE":  &c.Gaps.Type,
		"WINDOW":    &c.Window.Type,
		"OUTPUT":    &c.Output.Path,
		"LOG_LEVEL": &c.Log.Level,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"LENGTH":       &c.Series.Length,
		"GAP_COUNT":    &c.Gaps.Count,
		"DECAY_LENGTH": &c.Window.DecayLength,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}
			*dst = i
		}
	}

	floats := map[string]*float64{
		"SAMPLE_RATE":     &c.Series.SampleRate,
		"GAP_DURATION":    &c.Gaps.Duration,
		"GAP_FREQUENCY":   &c.Gaps.Frequency,
		"LOCATION_JITTER": &c.Gaps.LocationJitter,
		"DURATION_JITTER": &c.Gaps.DurationJitter,
	}
	for key, dst := range floats {
		if v, ok := lookup(key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}
			*dst = f
		}
	}

	if v, ok := lookup("SEED"); ok {
		s, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = s
	}

	if v, ok := lookup("DEBUG"); ok {
		c.Log.Debug = v == "true" || v == "1"
	}

	return nil
}

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(EnvPrefix + key))
	return v, v != ""
}

// Validate checks that the configuration can drive a generation run.
func (c Config) Validate() error {
	g, err := c.Gapgen()
	if err != nil {
		return err
	}

	if err := g.Validate(); err != nil {
		return err
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	if c.Output.Path != "" {
		if _, err := maskfile.FormatFromPath(c.Output.Path); err != nil {
			return err
		}
	}

	return nil
}

// Gapgen converts c to a generator configuration.
func (c Config) Gapgen() (gapgen.Config, error) {
	placement, err := gapgen.ParsePlacement(c.Gaps.Type)
	if err != nil {
		return gapgen.Config{}, err
	}

	kind, err := window.ParseType(c.Window.Type)
	if err != nil {
		return gapgen.Config{}, err
	}

	return gapgen.Config{
		Length:         c.Series.Length,
		SampleRate:     c.Series.SampleRate,
		GapCount:       c.Gaps.Count,
		GapDuration:    c.Gaps.Duration,
		GapDurations:   c.Gaps.Durations,
		Placement:      placement,
		GapFrequency:   c.Gaps.Frequency,
		Window:         kind,
		DecayLength:    c.Window.DecayLength,
		LocationJitter: c.Gaps.LocationJitter,
		DurationJitter: c.Gaps.DurationJitter,
	}, nil
}
