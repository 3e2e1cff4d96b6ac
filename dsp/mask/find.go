package mask

import "fmt"

// FindGaps locates the maximal runs of exact zeros in m and returns their
// half-open bounds: starts[k] is the first zero of run k and ends[k] is one
// past its last zero. Tapered samples (0 < m[i] < 1) count as valid data.
//
// A mask without zeros yields empty, non-nil slices and an error wrapping
// ErrNoGapsFound. Callers that treat a gapless series as a single segment
// check for it with errors.Is.
func FindGaps(m []float64) (starts, ends []int, err error) {
	runs := 0
	prevZero := false

	for _, v := range m {
		zero := v == 0
		if zero && !prevZero {
			runs++
		}
		prevZero = zero
	}

	starts = make([]int, 0, runs)
	ends = make([]int, 0, runs)

	if runs == 0 {
		return starts, ends, fmt.Errorf("%w: %d samples", ErrNoGapsFound, len(m))
	}

	prevZero = false
	for i, v := range m {
		zero := v == 0
		switch {
		case zero && !prevZero:
			starts = append(starts, i)
		case !zero && prevZero:
			ends = append(ends, i)
		}
		prevZero = zero
	}

	if prevZero {
		ends = append(ends, len(m))
	}

	return starts, ends, nil
}

// Gaps is FindGaps returning intervals.
func Gaps(m []float64) ([]Interval, error) {
	starts, ends, err := FindGaps(m)
	if err != nil {
		return []Interval{}, err
	}

	return Join(starts, ends)
}
