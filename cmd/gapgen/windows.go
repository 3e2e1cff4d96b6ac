package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-gaps/dsp/window"
	gapstats "github.com/cwbudde/algo-gaps/stats/gaps"
)

// WindowsCmd prints spectral properties of the taper windows.
type WindowsCmd struct {
	Size     int      `default:"1024" help:"Window length in samples."`
	Decay    int      `default:"60" help:"Modified Hann decay in samples."`
	MainLobe int      `default:"4" help:"Bins counted as main lobe for the leakage figure."`
	Names    []string `arg:"" optional:"" help:"Windows to show; all when omitted."`
}

func (c *WindowsCmd) Run(_ *Globals) error {
	types := window.Types()
	if len(c.Names) > 0 {
		types = nil
		for _, name := range c.Names {
			t, err := window.ParseType(name)
			if err != nil {
				return err
			}
			types = append(types, t)
		}
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tLeakage\tNote\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t-------\t----\n")

	for _, t := range types {
		coeffs, err := window.Taper(t, c.Size, window.WithDecayLength(c.Decay))

		note := ""
		switch {
		case errors.Is(err, window.ErrDecayWindowTooLarge):
			note = "decay clamped"
		case err != nil:
			return err
		}

		gain, err := window.CoherentGain(coeffs)
		if err != nil {
			return err
		}

		enbw, err := window.EquivalentNoiseBandwidth(coeffs)
		if err != nil {
			return err
		}

		w, err := gapstats.SpectralWindow(coeffs)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.3e\t%s\n",
			t, c.Size, gain, enbw, gapstats.Leakage(w, c.MainLobe), note)
	}

	return tw.Flush()
}
