package mds_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nmds/mds"
	"github.com/rs/zerolog"
)

// ExampleFit embeds four objects whose dissimilarities are a square's distances.
func ExampleFit() {
	s := math.Sqrt2
	proximity := [][]float64{
		{0, 1, s, 1},
		{1, 0, 1, s},
		{s, 1, 0, 1},
		{1, s, 1, 0},
	}

	res, err := mds.Fit(proximity, mds.WithLogger(zerolog.Nop()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("stress=%.3f quality=%s points=%d dim=%d\n",
		res.Stress, res.Quality, len(res.Coordinates), len(res.Coordinates[0]))
	// Output:
	// stress=0.000 quality=perfect points=4 dim=2
}

// ExampleClassify shows the verbal rating of a few stress values.
func ExampleClassify() {
	for _, s := range []float64{0, 0.02, 0.04, 0.08, 0.2} {
		fmt.Println(s, mds.Classify(s))
	}
	// Output:
	// 0 perfect
	// 0.02 excellent
	// 0.04 good
	// 0.08 fair
	// 0.2 poor
}

// ExampleIsotonicFit pools the violating pair into its mean.
func ExampleIsotonicFit() {
	fmt.Println(mds.IsotonicFit([]float64{1, 3, 2, 4}))
	// Output:
	// [1 2.5 2.5 4]
}
