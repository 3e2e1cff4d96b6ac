package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireWeights fails t if any mask value is non-finite or outside [0, 1].
func RequireWeights(t *testing.T, m []float64) {
	t.Helper()
	for i, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
			t.Fatalf("index %d: mask value %v outside [0,1]", i, v)
		}
	}
}

// RequireBinary fails t if any mask value is neither 0 nor 1.
func RequireBinary(t *testing.T, m []float64) {
	t.Helper()
	for i, v := range m {
		if v != 0 && v != 1 {
			t.Fatalf("index %d: mask value %v, want 0 or 1", i, v)
		}
	}
}

// RequireTiling fails t unless the gap and segment intervals together cover
// [0, n) exactly once, alternating segment, gap, segment, ..., segment.
func RequireTiling(t *testing.T, n int, gapStarts, gapEnds, segStarts, segEnds []int) {
	t.Helper()
	if len(gapStarts) != len(gapEnds) || len(segStarts) != len(segEnds) {
		t.Fatalf("unpaired bounds: gaps %d/%d, segments %d/%d",
			len(gapStarts), len(gapEnds), len(segStarts), len(segEnds))
	}
	if len(segStarts) != len(gapStarts)+1 {
		t.Fatalf("segments=%d, want gaps+1=%d", len(segStarts), len(gapStarts)+1)
	}

	pos := 0
	for k := range segStarts {
		if segStarts[k] != pos || segEnds[k] < segStarts[k] {
			t.Fatalf("segment %d [%d,%d) does not continue at %d", k, segStarts[k], segEnds[k], pos)
		}
		pos = segEnds[k]
		if k == len(gapStarts) {
			break
		}
		if gapStarts[k] != pos || gapEnds[k] <= gapStarts[k] {
			t.Fatalf("gap %d [%d,%d) does not continue at %d", k, gapStarts[k], gapEnds[k], pos)
		}
		pos = gapEnds[k]
	}

	if pos != n {
		t.Fatalf("tiling ends at %d, want %d", pos, n)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns false if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, bool) {
	if len(a) != len(b) {
		return 0, false
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, true
}
