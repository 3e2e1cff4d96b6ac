package testutil

import (
	"math"
	"math/rand/v2"
)

// Source returns a seeded random source for reproducible gap synthesis.
func Source(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// DeterministicSine generates a sine wave sampled at sampleRate.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform white noise with a fixed seed.
func DeterministicNoise(seed uint64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(Source(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns 0, 1, ..., n-1. Handy for checking that slices keep the
// original sample values.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// BinaryMask builds a reference 0/1 mask of length n with zeros on the given
// half-open gaps. Bounds outside [0, n) are clipped.
func BinaryMask(n int, starts, ends []int) []float64 {
	m := make([]float64, n)
	for i := range m {
		m[i] = 1
	}
	for k := range starts {
		for i := max(starts[k], 0); i < min(ends[k], n); i++ {
			m[i] = 0
		}
	}
	return m
}
