package gaps_test

import (
	"fmt"

	gapstats "github.com/cwbudde/algo-gaps/stats/gaps"
)

func ExampleCalculate() {
	m := []float64{1, 1, 0, 0, 1, 1, 1, 1, 0, 1}

	s, err := gapstats.Calculate(m, 1)
	if err != nil {
		panic(err)
	}

	fmt.Printf("gaps=%d segments=%d duty=%.1f\n", s.GapCount, s.SegmentCount, s.DutyCycle)

	// Output:
	// gaps=2 segments=3 duty=0.7
}
