package segment

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSamplingInterval reports a sampling interval that is not a
	// positive finite number.
	ErrInvalidSamplingInterval = errors.New("sampling interval must be positive and finite")

	// ErrLengthMismatch reports inputs that must be parallel but are not.
	ErrLengthMismatch = errors.New("input lengths do not match")

	// ErrInvalidBand reports a frequency band with fLow > fHigh or NaN bounds.
	ErrInvalidBand = errors.New("invalid frequency band")
)

func validateInterval(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSamplingInterval, dt)
	}
	return nil
}

func validateBand(fLow, fHigh float64) error {
	if math.IsNaN(fLow) || math.IsNaN(fHigh) || fLow > fHigh {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidBand, fLow, fHigh)
	}
	return nil
}
