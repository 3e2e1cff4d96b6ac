// Package mask builds and inspects gap masks.
//
// A mask is a []float64 of the same length as a time series. A value of 0
// marks a missing sample, 1 a fully valid one, and values in between are
// taper weights applied next to gaps. Gaps are described as half-open index
// ranges: starts[k] is the first missing sample of gap k and ends[k] is the
// first valid sample after it.
//
// Windowing turns gap bounds into a mask and FindGaps recovers the bounds
// from a mask. For rectangular masks the two are inverse to each other.
package mask
