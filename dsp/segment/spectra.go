package segment

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-gaps/dsp/mask"
)

// Spectrum is the DFT of one masked segment. Coeffs[i] belongs to
// Axis.Freqs[i].
type Spectrum struct {
	Axis
	Coeffs []complex128
}

// Spectra transforms every segment of series weighted by m. The result is
// aligned with FrequencyAxes(m, dt). Segments are transformed concurrently,
// at most GOMAXPROCS at a time.
func Spectra(ctx context.Context, series, m []float64, dt float64) ([]Spectrum, error) {
	if len(series) != len(m) {
		return nil, fmt.Errorf("%w: series %d, mask %d", ErrLengthMismatch, len(series), len(m))
	}

	axes, err := FrequencyAxes(m, dt)
	if err != nil {
		return nil, err
	}

	weighted, err := mask.Apply(series, m)
	if err != nil {
		return nil, err
	}

	out := make([]Spectrum, len(axes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for k, axis := range axes {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			out[k] = Spectrum{
				Axis:   axis,
				Coeffs: transform(weighted[axis.Interval.Start:axis.Interval.End]),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func transform(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	seq := make([]complex128, len(x))
	for i, v := range x {
		seq[i] = complex(v, 0)
	}

	return fourier.NewCmplxFFT(len(x)).Coefficients(nil, seq)
}
