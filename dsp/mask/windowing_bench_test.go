package mask

import (
	"testing"

	"github.com/cwbudde/algo-gaps/dsp/window"
)

func benchGaps(n, gaps int) ([]int, []int) {
	starts := make([]int, gaps)
	ends := make([]int, gaps)
	step := n / (gaps + 1)

	for k := range starts {
		starts[k] = (k + 1) * step
		ends[k] = starts[k] + step/10
	}

	return starts, ends
}

func BenchmarkWindowing(b *testing.B) {
	const n = 1 << 20

	starts, ends := benchGaps(n, 64)

	for _, kind := range window.Types() {
		b.Run(kind.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(n * 8)

			for i := 0; i < b.N; i++ {
				_, _ = Windowing(starts, ends, n, kind)
			}
		})
	}
}

func BenchmarkFindGaps(b *testing.B) {
	const n = 1 << 20

	starts, ends := benchGaps(n, 64)

	m, err := Windowing(starts, ends, n, window.TypeRectangular)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(n * 8)

	for i := 0; i < b.N; i++ {
		_, _, _ = FindGaps(m)
	}
}
