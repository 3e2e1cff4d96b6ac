package segment

import (
	"errors"
	"fmt"
	"iter"

	"github.com/cwbudde/algo-gaps/dsp/mask"
)

// Bounds returns the start and end index of every valid segment of m.
// starts[0] is 0 and ends[len-1] is len(m). A mask without zeros is a single
// segment.
func Bounds(m []float64) (starts, ends []int, err error) {
	if len(m) == 0 {
		return nil, nil, fmt.Errorf("%w: empty mask", mask.ErrInvalidMask)
	}

	gapStarts, gapEnds, err := mask.FindGaps(m)
	if err != nil && !errors.Is(err, mask.ErrNoGapsFound) {
		return nil, nil, err
	}

	h := len(gapStarts)
	starts = make([]int, h+1)
	ends = make([]int, h+1)

	copy(starts[1:], gapEnds)
	copy(ends, gapStarts)
	ends[h] = len(m)

	return starts, ends, nil
}

// Intervals is Bounds returning intervals.
func Intervals(m []float64) ([]mask.Interval, error) {
	starts, ends, err := Bounds(m)
	if err != nil {
		return nil, err
	}

	return mask.Join(starts, ends)
}

// Lengths returns the number of samples in each segment. Entries may be 0.
func Lengths(m []float64) ([]int, error) {
	starts, ends, err := Bounds(m)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(starts))
	for k := range starts {
		out[k] = ends[k] - starts[k]
	}

	return out, nil
}

// Split returns a sequence of (segment index, samples) pairs. The samples
// alias series and are capped so appending to them never overwrites the
// following gap. The sequence can be ranged over any number of times.
func Split(series, m []float64) (iter.Seq2[int, []float64], error) {
	if len(series) != len(m) {
		return nil, fmt.Errorf("%w: series %d, mask %d", ErrLengthMismatch, len(series), len(m))
	}

	starts, ends, err := Bounds(m)
	if err != nil {
		return nil, err
	}

	return func(yield func(int, []float64) bool) {
		for k := range starts {
			if !yield(k, series[starts[k]:ends[k]:ends[k]]) {
				return
			}
		}
	}, nil
}

// SplitSlices collects Split into a slice.
func SplitSlices(series, m []float64) ([][]float64, error) {
	seq, err := Split(series, m)
	if err != nil {
		return nil, err
	}

	var out [][]float64
	for _, s := range seq {
		out = append(out, s)
	}

	return out, nil
}
