package mask

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Validate checks that every mask value is finite and within [0, 1].
func Validate(m []float64) error {
	if len(m) == 0 {
		return fmt.Errorf("%w: empty mask", ErrInvalidMask)
	}

	for i, v := range m {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: value %v at index %d", ErrInvalidMask, v, i)
		}
	}

	return nil
}

// Ones returns a gapless mask of length n.
func Ones(n int) []float64 {
	m := make([]float64, n)
	fill(m, 1)

	return m
}

// Apply returns series weighted by the mask. Inputs are not modified.
func Apply(series, m []float64) ([]float64, error) {
	if len(series) != len(m) {
		return nil, fmt.Errorf("%w: series %d, mask %d", ErrLengthMismatch, len(series), len(m))
	}

	out := make([]float64, len(series))
	vecmath.MulBlock(out, series, m)

	return out, nil
}

// Combine returns the elementwise product of two masks: a sample is missing
// if it is missing in either input, and taper weights multiply.
func Combine(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	out := make([]float64, len(a))
	vecmath.MulBlock(out, a, b)

	return out, nil
}
