package mask

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-gaps/dsp/window"
)

var (
	// ErrInvalidGapSpec reports malformed, unsorted or overlapping gap bounds.
	ErrInvalidGapSpec = errors.New("invalid gap specification")

	// ErrNoGapsFound reports a mask without any zero sample.
	ErrNoGapsFound = errors.New("mask contains no gaps")

	// ErrInvalidMask reports mask values outside [0, 1] or non-finite.
	ErrInvalidMask = errors.New("invalid mask")

	// ErrLengthMismatch reports a series and mask of different lengths.
	ErrLengthMismatch = errors.New("series and mask must have same length")
)

// IsWarning reports whether err only signals a non-fatal condition, in which
// case the result returned with it is valid.
func IsWarning(err error) bool {
	return err != nil && errors.Is(err, window.ErrDecayWindowTooLarge)
}

func validateGaps(starts, ends []int, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: series length must be > 0: %d", ErrInvalidGapSpec, n)
	}

	if len(starts) != len(ends) {
		return fmt.Errorf("%w: %d gap starts but %d gap ends", ErrInvalidGapSpec, len(starts), len(ends))
	}

	for k := range starts {
		if starts[k] < 0 || ends[k] > n {
			return fmt.Errorf("%w: gap %d [%d,%d) outside [0,%d)", ErrInvalidGapSpec, k, starts[k], ends[k], n)
		}

		if ends[k] < starts[k] {
			return fmt.Errorf("%w: gap %d ends before it starts: [%d,%d)", ErrInvalidGapSpec, k, starts[k], ends[k])
		}

		if k > 0 && starts[k] < ends[k-1] {
			return fmt.Errorf("%w: gap %d starts at %d before gap %d ends at %d",
				ErrInvalidGapSpec, k, starts[k], k-1, ends[k-1])
		}
	}

	return nil
}
