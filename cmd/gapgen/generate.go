package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-gaps/dsp/gapgen"
	"github.com/cwbudde/algo-gaps/internal/config"
	"github.com/cwbudde/algo-gaps/logging"
	"github.com/cwbudde/algo-gaps/maskfile"
	gapstats "github.com/cwbudde/algo-gaps/stats/gaps"
)

// GenerateCmd synthesizes a mask from a preset or configuration file.
type GenerateCmd struct {
	Preset string `short:"p" help:"Built-in configuration (antenna, micrometeorites, random, periodic)."`
	Seed   uint64 `help:"Random seed; 0 uses the configured seed or a random one."`
	Output string `short:"o" help:"Output file (.msgpack, .mpk or .json)."`
	Window string `help:"Taper at gap edges (rect, hann, blackman, modified_hann)."`
	Decay  int    `default:"-1" help:"Modified Hann decay in samples; -1 keeps the configured value."`
}

func (c *GenerateCmd) Run(g *Globals) error {
	cfg, err := config.LoadPreset(g.Config, c.Preset)
	if err != nil {
		return err
	}

	if err := setupLogging(g.Debug || cfg.Log.Debug, cfg.Log.Level); err != nil {
		return err
	}

	c.override(&cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	gc, err := cfg.Gapgen()
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	logging.Info("generating mask", logging.Fields{
		"preset":    cfg.Preset,
		"placement": gc.Placement.String(),
		"samples":   gc.Length,
		"seed":      seed,
	})

	res, err := gapgen.Generate(gc, newSource(seed))
	if err != nil {
		return err
	}

	if res.Warning != nil {
		logging.Warn("mask generated with warning", logging.Fields{"warning": res.Warning.Error()})
	}

	f, err := maskfile.New(res.Mask, gc.SampleRate, gc.Window, gc.DecayLength)
	if err != nil {
		return err
	}

	f.Source = describeSource(cfg.Preset, seed)

	if err := maskfile.Save(cfg.Output.Path, f); err != nil {
		return err
	}

	s, err := gapstats.Calculate(res.Mask, gc.SampleRate)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "%s: %d gaps (%d dropped, %d merged), duty cycle %.4f, seed %d\n",
		cfg.Output.Path, s.GapCount, res.Dropped, res.Merged, s.DutyCycle, seed)

	return err
}

func (c *GenerateCmd) override(cfg *config.Config) {
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}

	if c.Output != "" {
		cfg.Output.Path = c.Output
	}

	if c.Window != "" {
		cfg.Window.Type = c.Window
	}

	if c.Decay >= 0 {
		cfg.Window.DecayLength = c.Decay
	}
}

func newSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

func describeSource(preset string, seed uint64) string {
	if preset == "" {
		return fmt.Sprintf("gapgen seed=%d", seed)
	}

	return fmt.Sprintf("gapgen preset=%s seed=%d", preset, seed)
}
