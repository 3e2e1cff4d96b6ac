package mask

import "fmt"

// Interval is a half-open index range [Start, End). It describes both gaps
// (missing data) and segments (valid data).
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns End - Start.
func (iv Interval) Len() int { return iv.End - iv.Start }

// Empty reports whether the interval holds no sample.
func (iv Interval) Empty() bool { return iv.End <= iv.Start }

// Overlaps reports whether iv and o share at least one sample.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start < o.End && o.Start < iv.End
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}

// Split returns the start and end indices of the intervals as two slices.
func Split(ivs []Interval) (starts, ends []int) {
	starts = make([]int, len(ivs))
	ends = make([]int, len(ivs))

	for i, iv := range ivs {
		starts[i] = iv.Start
		ends[i] = iv.End
	}

	return starts, ends
}

// Join pairs start and end indices into intervals. The slices must have the
// same length.
func Join(starts, ends []int) ([]Interval, error) {
	if len(starts) != len(ends) {
		return nil, fmt.Errorf("%w: %d starts but %d ends", ErrInvalidGapSpec, len(starts), len(ends))
	}

	ivs := make([]Interval, len(starts))
	for i := range starts {
		ivs[i] = Interval{Start: starts[i], End: ends[i]}
	}

	return ivs, nil
}

// TotalLen returns the summed length of the intervals.
func TotalLen(ivs []Interval) int {
	total := 0
	for _, iv := range ivs {
		total += iv.Len()
	}

	return total
}
