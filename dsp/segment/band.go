package segment

import "fmt"

// Band holds the part of each segment's frequency grid inside a band.
// Segments without any bin in the band are left out; all slices stay
// aligned by position.
type Band struct {
	Freqs  [][]float64
	Starts []float64
	Ends   []float64
	// Indices are the positions of the kept bins in the segment's grid.
	Indices [][]int
	// Segments are the positions of the kept segments in the input.
	Segments []int
}

// Len returns the number of kept segments.
func (b Band) Len() int { return len(b.Segments) }

// SelectBand keeps the frequencies f with fLow <= f <= fHigh. freqs, starts
// and ends describe one segment per position.
func SelectBand(freqs [][]float64, starts, ends []float64, fLow, fHigh float64) (Band, error) {
	if len(freqs) != len(starts) || len(freqs) != len(ends) {
		return Band{}, fmt.Errorf("%w: %d frequency grids, %d starts, %d ends",
			ErrLengthMismatch, len(freqs), len(starts), len(ends))
	}

	if err := validateBand(fLow, fHigh); err != nil {
		return Band{}, err
	}

	var b Band
	for k, grid := range freqs {
		var idx []int
		for i, f := range grid {
			if f >= fLow && f <= fHigh {
				idx = append(idx, i)
			}
		}

		if len(idx) == 0 {
			continue
		}

		sel := make([]float64, len(idx))
		for j, i := range idx {
			sel[j] = grid[i]
		}

		b.Freqs = append(b.Freqs, sel)
		b.Starts = append(b.Starts, starts[k])
		b.Ends = append(b.Ends, ends[k])
		b.Indices = append(b.Indices, idx)
		b.Segments = append(b.Segments, k)
	}

	return b, nil
}

// SelectAxes is SelectBand for axes returned by FrequencyAxes.
func SelectAxes(axes []Axis, fLow, fHigh float64) (Band, error) {
	freqs := make([][]float64, len(axes))
	starts := make([]float64, len(axes))
	ends := make([]float64, len(axes))

	for k, a := range axes {
		freqs[k] = a.Freqs
		starts[k] = a.Start
		ends[k] = a.End
	}

	return SelectBand(freqs, starts, ends, fLow, fHigh)
}
