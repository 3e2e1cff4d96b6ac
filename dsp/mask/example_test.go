package mask_test

import (
	"fmt"

	"github.com/cwbudde/algo-gaps/dsp/mask"
	"github.com/cwbudde/algo-gaps/dsp/window"
)

func ExampleWindowing() {
	m, err := mask.Windowing([]int{3}, []int{5}, 8, window.TypeRectangular)
	if err != nil {
		panic(err)
	}

	fmt.Println(m)
	// Output: [1 1 1 0 0 1 1 1]
}

func ExampleFindGaps() {
	starts, ends, _ := mask.FindGaps([]float64{1, 0, 0, 1, 0.5, 0, 1})
	fmt.Println(starts, ends)
	// Output: [1 5] [3 6]
}
