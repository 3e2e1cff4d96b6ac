package gaps

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-gaps/dsp/mask"
)

// SpectralWindow returns the one-sided power response of the mask,
// normalized to 1 at DC. The mask is zero-padded to the next power of two at
// least twice its length, so the result has that size/2+1 bins.
func SpectralWindow(m []float64) ([]float64, error) {
	if err := mask.Validate(m); err != nil {
		return nil, err
	}

	size := nextPowerOf2(2 * len(m))

	in := make([]complex128, size)
	for i, v := range m {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("fft plan of size %d: %w", size, err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("fft of size %d: %w", size, err)
	}

	power := make([]float64, size/2+1)
	for i := range power {
		a := cmplx.Abs(out[i])
		power[i] = a * a
	}

	if dc := power[0]; dc > 0 {
		vecmath.ScaleBlockInPlace(power, 1/dc)
	}

	return power, nil
}

// Leakage returns the fraction of the one-sided power in w that lies beyond
// bin mainLobe. w is typically the output of SpectralWindow.
func Leakage(w []float64, mainLobe int) float64 {
	if len(w) == 0 || mainLobe < 0 {
		return 0
	}

	total := vecmath.Sum(w)
	if total == 0 {
		return 0
	}

	if mainLobe >= len(w)-1 {
		return 0
	}

	return vecmath.Sum(w[mainLobe+1:]) / total
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
