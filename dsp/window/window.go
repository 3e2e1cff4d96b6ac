package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a taper shape.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeBlackman
	TypeModifiedHann
)

// DefaultDecayLength is the modified Hann decay used when none is configured.
const DefaultDecayLength = 60

var typeNames = map[Type]string{
	TypeRectangular:  "rect",
	TypeHann:         "hann",
	TypeBlackman:     "blackman",
	TypeModifiedHann: "modified_hann",
}

var typeAliases = map[string]Type{
	"rect":          TypeRectangular,
	"rectangular":   TypeRectangular,
	"hann":          TypeHann,
	"hanning":       TypeHann,
	"blackman":      TypeBlackman,
	"modified_hann": TypeModifiedHann,
	"modified-hann": TypeModifiedHann,
}

// String returns the canonical name of t.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t is one of the known taper shapes.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// Types returns all taper shapes in declaration order.
func Types() []Type {
	return []Type{TypeRectangular, TypeHann, TypeBlackman, TypeModifiedHann}
}

// ParseType maps a window name to its Type. Matching is case-insensitive.
func ParseType(name string) (Type, error) {
	if t, ok := typeAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownWindow, name)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	decay int
}

func defaultConfig() config {
	return config{decay: DefaultDecayLength}
}

// WithDecayLength sets the taper width of the modified Hann window in samples.
// Negative values are ignored.
func WithDecayLength(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.decay = n
		}
	}
}

// Generate returns window coefficients of the given length. A decay length
// that does not fit the window is clamped silently; use Taper to observe it.
func Generate(t Type, length int, opts ...Option) []float64 {
	w, _ := Taper(t, length, opts...)
	return w
}

// Taper returns window coefficients of the given length. For TypeModifiedHann
// an oversized decay is clamped and reported with an error wrapping
// ErrDecayWindowTooLarge; the coefficients are valid in that case.
func Taper(t Type, length int, opts ...Option) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	switch t {
	case TypeRectangular:
		return ones(length), nil
	case TypeHann:
		return cosineSum(length, hannCoeffs), nil
	case TypeBlackman:
		return cosineSum(length, blackmanCoeffs), nil
	case TypeModifiedHann:
		return ModifiedHann(length, cfg.decay)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownWindow, t)
	}
}

// Hann returns symmetric Hann window coefficients, zero at both ends.
func Hann(size int) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return cosineSum(size, hannCoeffs), nil
}

// Blackman returns symmetric Blackman window coefficients, zero at both ends.
func Blackman(size int) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return cosineSum(size, blackmanCoeffs), nil
}

// ModifiedHann returns the flat-top window of Carré and Porter (2010): one in
// the interior with a half-cosine rise over the first decay samples and a
// matching fall over the last decay samples. w[0] and w[length-1] are zero
// whenever decay > 0.
//
// If 2*decay > length the decay is clamped to length/2 and the returned error
// wraps ErrDecayWindowTooLarge. The coefficients are usable regardless.
func ModifiedHann(length, decay int) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	var warn error
	if 2*decay > length {
		warn = fmt.Errorf("%w: decay %d, window length %d, clamped to %d",
			ErrDecayWindowTooLarge, decay, length, length/2)
		decay = length / 2
	}

	w := ones(length)
	if decay <= 0 {
		return w, warn
	}

	d := float64(decay)
	for n := 0; n < decay; n++ {
		w[n] = 0.5 * (1 - math.Cos(math.Pi*float64(n)/d))
	}

	for n := length - decay; n < length; n++ {
		w[n] = 0.5 * (1 - math.Cos(math.Pi*float64(n-length+1)/d))
	}

	return w, warn
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	if len(coeffs) != len(buf) {
		return
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// CoherentGain returns sum(w) / N, the DC response of the window.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	return vecmath.Sum(coeffs) / float64(len(coeffs)), nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := vecmath.Sum(coeffs)
	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	sumSquares := vecmath.DotProduct(coeffs, coeffs)

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

var (
	hannCoeffs     = []float64{0.5, -0.5}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

// cosineSum evaluates sum_k a_k cos(2 pi k n / (size-1)) for the symmetric
// form. A single-sample window is [1]. Rounding outside [0, 1] is clamped so
// masks built from these tapers stay weights.
func cosineSum(size int, coeffs []float64) []float64 {
	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out
	}

	den := float64(size - 1)
	for n := range out {
		phase := 2 * math.Pi * float64(n) / den

		v := 0.0
		for k, c := range coeffs {
			v += c * math.Cos(float64(k)*phase)
		}

		out[n] = math.Min(1, math.Max(0, v))
	}

	out[0] = 0
	out[size-1] = 0

	return out
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}
