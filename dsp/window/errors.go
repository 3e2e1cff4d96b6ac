package window

import (
	"errors"
	"fmt"
)

var (
	// ErrDecayWindowTooLarge reports a modified Hann decay longer than half
	// the window. It is non-fatal: the decay is clamped and the coefficients
	// are returned alongside the error.
	ErrDecayWindowTooLarge = errors.New("window decay is larger than half the window size")

	// ErrUnknownWindow reports an unsupported window name or Type.
	ErrUnknownWindow = errors.New("unknown window type")
)

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}
