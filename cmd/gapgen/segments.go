package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-gaps/dsp/segment"
	"github.com/cwbudde/algo-gaps/maskfile"
)

// SegmentsCmd prints the valid segments of a mask with their time spans.
type SegmentsCmd struct {
	Input string `arg:"" type:"existingfile" help:"Mask file to read."`
	Band  string `help:"Only list segments with DFT bins in LOW:HIGH (Hz), and count them."`
}

func (c *SegmentsCmd) Run(_ *Globals) error {
	f, err := maskfile.Load(c.Input)
	if err != nil {
		return err
	}

	axes, err := segment.FrequencyAxes(f.Mask, 1/f.SampleRate)
	if err != nil {
		return err
	}

	rows := make([]int, len(axes))
	bins := make([]int, len(axes))
	for k, a := range axes {
		rows[k] = k
		bins[k] = len(a.Freqs)
	}

	if c.Band != "" {
		lo, hi, err := parseBand(c.Band)
		if err != nil {
			return err
		}

		band, err := segment.SelectAxes(axes, lo, hi)
		if err != nil {
			return err
		}

		rows = band.Segments
		bins = make([]int, band.Len())
		for k, idx := range band.Indices {
			bins[k] = len(idx)
		}
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Segment\tStart\tEnd\tLength\tStart [s]\tEnd [s]\tBins\n")
	fmt.Fprintf(tw, "-------\t-----\t---\t------\t---------\t-------\t----\n")

	for i, k := range rows {
		a := axes[k]
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.1f\t%.1f\t%d\n",
			k, a.Interval.Start, a.Interval.End, a.Interval.Len(), a.Start, a.End, bins[i])
	}

	return tw.Flush()
}

func parseBand(s string) (float64, float64, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("band %q: want LOW:HIGH", s)
	}

	fLow, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("band low: %w", err)
	}

	fHigh := math.Inf(1)
	if hi = strings.TrimSpace(hi); hi != "" {
		fHigh, err = strconv.ParseFloat(hi, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("band high: %w", err)
		}
	}

	return fLow, fHigh, nil
}
