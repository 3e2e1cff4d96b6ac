// Package gaps summarizes gap masks: how much data survives, how the gaps and
// segments are distributed, and how the mask spreads power across frequency.
package gaps

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-gaps/dsp/mask"
	"github.com/cwbudde/algo-gaps/dsp/segment"
)

// Stats holds mask statistics. Lengths are in samples unless noted.
type Stats struct {
	Length   int
	Duration float64 // seconds

	GapCount     int
	SegmentCount int

	Missing  int // samples with weight 0
	Tapered  int // samples with 0 < weight < 1
	Observed int // samples with weight 1

	// DutyCycle is (Length - Missing) / Length.
	DutyCycle float64
	// MeanWeight is mean(m).
	MeanWeight float64
	// PowerWeight is mean(m^2), the factor by which a masked periodogram
	// underestimates white noise power.
	PowerWeight float64

	Gap     Lengths
	Segment Lengths
}

// Lengths summarizes a set of interval lengths.
type Lengths struct {
	Min    int
	Max    int
	Mean   float64
	StdDev float64
	Total  int
}

// Calculate computes statistics of m, sampled at sampleRate Hz.
func Calculate(m []float64, sampleRate float64) (Stats, error) {
	if err := mask.Validate(m); err != nil {
		return Stats{}, err
	}

	if sampleRate <= 0 {
		return Stats{}, fmt.Errorf("%w: sample rate %v", segment.ErrInvalidSamplingInterval, sampleRate)
	}

	n := len(m)
	s := Stats{
		Length:   n,
		Duration: float64(n) / sampleRate,
	}

	for _, v := range m {
		switch {
		case v == 0:
			s.Missing++
		case v == 1:
			s.Observed++
		default:
			s.Tapered++
		}
	}

	s.DutyCycle = float64(n-s.Missing) / float64(n)
	s.MeanWeight = vecmath.Sum(m) / float64(n)
	s.PowerWeight = vecmath.DotProduct(m, m) / float64(n)

	gapStarts, gapEnds, err := mask.FindGaps(m)
	if err != nil && !errors.Is(err, mask.ErrNoGapsFound) {
		return Stats{}, err
	}

	segStarts, segEnds, err := segment.Bounds(m)
	if err != nil {
		return Stats{}, err
	}

	s.GapCount = len(gapStarts)
	s.SegmentCount = len(segStarts)
	s.Gap = summarize(gapStarts, gapEnds)
	s.Segment = summarize(segStarts, segEnds)

	return s, nil
}

func summarize(starts, ends []int) Lengths {
	if len(starts) == 0 {
		return Lengths{}
	}

	l := make([]float64, len(starts))
	for k := range starts {
		l[k] = float64(ends[k] - starts[k])
	}

	var out Lengths
	out.Min = int(floats.Min(l))
	out.Max = int(floats.Max(l))
	out.Total = int(floats.Sum(l))

	if len(l) == 1 {
		out.Mean = l[0]
		return out
	}

	out.Mean, out.StdDev = stat.MeanStdDev(l, nil)

	return out
}
