package gapgen

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownGapType reports an unsupported gap placement.
	ErrUnknownGapType = errors.New("unknown gap type")

	// ErrInvalidConfig reports a configuration that cannot produce a mask.
	ErrInvalidConfig = errors.New("invalid gap configuration")
)

func validatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be a positive finite number: %v", ErrInvalidConfig, name, v)
	}
	return nil
}

func validateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be >= 0: %v", ErrInvalidConfig, name, v)
	}
	return nil
}
