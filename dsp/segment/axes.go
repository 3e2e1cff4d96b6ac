package segment

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-gaps/dsp/mask"
)

// Axis is the frequency grid of one segment together with its time span.
type Axis struct {
	// Freqs holds the DFT bin frequencies in Hz in FFT order: 0, positive
	// frequencies, then negative frequencies.
	Freqs []float64
	// Start and End are the segment bounds in seconds.
	Start float64
	End   float64
	// Interval is the segment in samples.
	Interval mask.Interval
}

// FrequencyAxes returns one Axis per segment of m, sampled every dt seconds.
// Zero-length segments get an empty, non-nil frequency slice.
func FrequencyAxes(m []float64, dt float64) ([]Axis, error) {
	if err := validateInterval(dt); err != nil {
		return nil, err
	}

	segs, err := Intervals(m)
	if err != nil {
		return nil, err
	}

	axes := make([]Axis, len(segs))

	var fft *fourier.CmplxFFT
	for k, seg := range segs {
		axes[k] = Axis{
			Freqs:    binFrequencies(&fft, seg.Len(), dt),
			Start:    float64(seg.Start) * dt,
			End:      float64(seg.End) * dt,
			Interval: seg,
		}
	}

	return axes, nil
}

// binFrequencies fills the bin frequencies of an n point transform. *fft is
// created on first use and resized afterwards.
func binFrequencies(fft **fourier.CmplxFFT, n int, dt float64) []float64 {
	freqs := make([]float64, n)
	if n == 0 {
		return freqs
	}

	if *fft == nil {
		*fft = fourier.NewCmplxFFT(n)
	} else if (*fft).Len() != n {
		(*fft).Reset(n)
	}

	for i := range freqs {
		freqs[i] = (*fft).Freq(i) / dt
	}

	return freqs
}
