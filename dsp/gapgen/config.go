package gapgen

import (
	"fmt"

	"github.com/cwbudde/algo-gaps/dsp/mask"
	"github.com/cwbudde/algo-gaps/dsp/window"
)

// Config describes a gap pattern. Durations and jitters are in seconds.
type Config struct {
	// Length is the number of samples in the series.
	Length int
	// SampleRate is the sampling frequency in Hz.
	SampleRate float64

	// GapCount is the number of gaps for the random placements. Periodic
	// placement derives the count from GapFrequency instead.
	GapCount int
	// GapDuration is the nominal gap duration.
	GapDuration float64
	// GapDurations sets one duration per gap for the random placements. When
	// non-empty it replaces GapDuration and GapCount.
	GapDurations []float64

	Placement Placement
	// GapFrequency is the gap repetition rate in Hz (periodic only).
	GapFrequency float64

	// Window is the taper applied at gap edges.
	Window window.Type
	// DecayLength is the modified Hann decay in samples.
	DecayLength int

	// LocationJitter is the standard deviation of gap start times (periodic
	// only).
	LocationJitter float64
	// DurationJitter is the standard deviation of gap durations.
	DurationJitter float64
}

// DefaultConfig returns a rectangular random configuration for a series of n
// samples at sampleRate Hz without any gap.
func DefaultConfig(n int, sampleRate float64) Config {
	return Config{
		Length:      n,
		SampleRate:  sampleRate,
		Placement:   PlacementRandom,
		Window:      window.TypeRectangular,
		DecayLength: mask.DefaultDecayLength,
	}
}

// Validate checks that c can produce a mask.
func (c Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%w: length must be > 0: %d", ErrInvalidConfig, c.Length)
	}

	if err := validatePositive("sample rate", c.SampleRate); err != nil {
		return err
	}

	if !c.Placement.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownGapType, c.Placement)
	}

	if !c.Window.Valid() {
		return fmt.Errorf("%w: %w: %v", ErrInvalidConfig, window.ErrUnknownWindow, c.Window)
	}

	if c.GapCount < 0 {
		return fmt.Errorf("%w: gap count must be >= 0: %d", ErrInvalidConfig, c.GapCount)
	}

	if c.DecayLength < 0 {
		return fmt.Errorf("%w: decay length must be >= 0: %d", ErrInvalidConfig, c.DecayLength)
	}

	checks := []struct {
		name string
		v    float64
	}{
		{"gap duration", c.GapDuration},
		{"location jitter", c.LocationJitter},
		{"duration jitter", c.DurationJitter},
	}
	for _, chk := range checks {
		if err := validateNonNegative(chk.name, chk.v); err != nil {
			return err
		}
	}

	for i, d := range c.GapDurations {
		if err := validateNonNegative(fmt.Sprintf("gap duration %d", i), d); err != nil {
			return err
		}
	}

	if c.Placement == PlacementPeriodic {
		if err := validatePositive("gap frequency", c.GapFrequency); err != nil {
			return err
		}
	}

	return nil
}

// Duration returns the length of the series in seconds.
func (c Config) Duration() float64 {
	return float64(c.Length) / c.SampleRate
}
