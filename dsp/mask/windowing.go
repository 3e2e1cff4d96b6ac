package mask

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-gaps/dsp/window"
	"github.com/cwbudde/algo-gaps/logging"
)

// DefaultDecayLength is the modified Hann decay, in samples, applied at gap
// edges unless WithDecayLength overrides it.
const DefaultDecayLength = 160

// Option configures mask windowing.
type Option func(*options)

type options struct {
	decay int
}

// WithDecayLength sets the modified Hann decay in samples. Negative values
// are ignored.
func WithDecayLength(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.decay = n
		}
	}
}

// Windowing builds a mask of length n from gap boundaries. starts[k] is the
// first missing sample of gap k and ends[k] the first valid sample after it.
// Gaps must be sorted and must not overlap.
//
// With window.TypeRectangular the mask is 1 outside the gaps and 0 inside.
// Any other kind tapers every valid region so that the weight reaches zero on
// the gap samples bordering it: the taper of a region [a, b) is generated for
// b-a+2 samples and written to [a-1, b+1). The regions before the first gap
// and after the last gap are only tapered on their gap side; their taper is
// the half of a window computed for the region mirrored about the series edge.
//
// If a modified Hann decay has to be clamped in any region, the mask is
// returned together with an error wrapping window.ErrDecayWindowTooLarge
// (see IsWarning).
func Windowing(starts, ends []int, n int, kind window.Type, opts ...Option) ([]float64, error) {
	if err := validateGaps(starts, ends, n); err != nil {
		return nil, err
	}

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", window.ErrUnknownWindow, kind)
	}

	cfg := options{decay: DefaultDecayLength}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	starts, ends = dropEmpty(starts, ends)

	m := make([]float64, n)
	h := len(starts)

	if h == 0 {
		fill(m, 1)
		return m, nil
	}

	if kind == window.TypeRectangular {
		fill(m[:starts[0]], 1)
		for k := 0; k < h-1; k++ {
			fill(m[ends[k]:starts[k+1]], 1)
		}
		fill(m[ends[h-1]:], 1)

		return m, nil
	}

	w := taperer{kind: kind, decay: cfg.decay}

	if first := starts[0]; first > 0 {
		t := w.taper(2*first + 2)
		put(m, 0, t[first+1:])
	}

	for k := 0; k < h-1; k++ {
		if starts[k+1] > ends[k] {
			put(m, ends[k]-1, w.taper(starts[k+1]-ends[k]+2))
		}
	}

	if last := n - ends[h-1]; last > 0 {
		t := w.taper(2*last + 2)
		put(m, ends[h-1]-1, t[:last+1])
	}

	for k := range starts {
		fill(m[starts[k]:ends[k]], 0)
	}

	if w.clamped > 0 {
		warn := fmt.Errorf("%w: decay %d clamped in %d of %d regions",
			window.ErrDecayWindowTooLarge, cfg.decay, w.clamped, w.regions)
		logging.WithFields(logging.Fields{"component": "mask"}).Warn("taper decay clamped",
			logging.Fields{"decay": cfg.decay, "clamped": w.clamped, "regions": w.regions})

		return m, warn
	}

	return m, nil
}

// FromIntervals is Windowing for a gap list expressed as intervals.
func FromIntervals(gaps []Interval, n int, kind window.Type, opts ...Option) ([]float64, error) {
	starts, ends := Split(gaps)
	return Windowing(starts, ends, n, kind, opts...)
}

type taperer struct {
	kind    window.Type
	decay   int
	clamped int
	regions int
}

func (t *taperer) taper(length int) []float64 {
	t.regions++

	w, err := window.Taper(t.kind, length, window.WithDecayLength(t.decay))
	if errors.Is(err, window.ErrDecayWindowTooLarge) {
		t.clamped++
	}

	return w
}

// dropEmpty removes zero-length gaps; they hold no missing sample.
func dropEmpty(starts, ends []int) ([]int, []int) {
	keep := 0
	for k := range starts {
		if ends[k] > starts[k] {
			keep++
		}
	}

	if keep == len(starts) {
		return starts, ends
	}

	s := make([]int, 0, keep)
	e := make([]int, 0, keep)
	for k := range starts {
		if ends[k] > starts[k] {
			s = append(s, starts[k])
			e = append(e, ends[k])
		}
	}

	return s, e
}

// put copies w into m starting at off, skipping indices outside m.
func put(m []float64, off int, w []float64) {
	for i, v := range w {
		j := off + i
		if j < 0 || j >= len(m) {
			continue
		}

		m[j] = v
	}
}

func fill(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}
