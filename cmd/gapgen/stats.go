package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-gaps/maskfile"
	gapstats "github.com/cwbudde/algo-gaps/stats/gaps"
)

// StatsCmd prints mask statistics.
type StatsCmd struct {
	Input    string `arg:"" type:"existingfile" help:"Mask file to read."`
	MainLobe int    `default:"8" help:"Bins around DC counted as main lobe for the leakage figure."`
}

func (c *StatsCmd) Run(_ *Globals) error {
	f, err := maskfile.Load(c.Input)
	if err != nil {
		return err
	}

	s, err := gapstats.Calculate(f.Mask, f.SampleRate)
	if err != nil {
		return err
	}

	w, err := gapstats.SpectralWindow(f.Mask)
	if err != nil {
		return err
	}

	dt := 1 / f.SampleRate

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Samples\t%d\n", s.Length)
	fmt.Fprintf(tw, "Duration [s]\t%.1f\n", s.Duration)
	fmt.Fprintf(tw, "Window\t%s\n", f.Window)
	fmt.Fprintf(tw, "Gaps\t%d\n", s.GapCount)
	fmt.Fprintf(tw, "Segments\t%d\n", s.SegmentCount)
	fmt.Fprintf(tw, "Missing\t%d\n", s.Missing)
	fmt.Fprintf(tw, "Tapered\t%d\n", s.Tapered)
	fmt.Fprintf(tw, "Duty cycle\t%.6f\n", s.DutyCycle)
	fmt.Fprintf(tw, "Mean weight\t%.6f\n", s.MeanWeight)
	fmt.Fprintf(tw, "Power weight\t%.6f\n", s.PowerWeight)
	fmt.Fprintf(tw, "Gap length [s]\tmin %.1f  max %.1f  mean %.1f  std %.1f\n",
		float64(s.Gap.Min)*dt, float64(s.Gap.Max)*dt, s.Gap.Mean*dt, s.Gap.StdDev*dt)
	fmt.Fprintf(tw, "Segment length [s]\tmin %.1f  max %.1f  mean %.1f  std %.1f\n",
		float64(s.Segment.Min)*dt, float64(s.Segment.Max)*dt, s.Segment.Mean*dt, s.Segment.StdDev*dt)
	fmt.Fprintf(tw, "Leakage beyond %d bins\t%.3e\n", c.MainLobe, gapstats.Leakage(w, c.MainLobe))

	return tw.Flush()
}
