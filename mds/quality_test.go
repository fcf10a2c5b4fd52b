package mds_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nmds/mds"
	"github.com/stretchr/testify/assert"
)

// TestClassify_Boundaries pins the inclusive upper bound of every class.
func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		stress float64
		want   mds.Quality
	}{
		{0, mds.Perfect},
		{math.SmallestNonzeroFloat64, mds.Excellent},
		{0.025, mds.Excellent},
		{math.Nextafter(0.025, 1), mds.Good},
		{0.05, mds.Good},
		{math.Nextafter(0.05, 1), mds.Fair},
		{0.10, mds.Fair},
		{math.Nextafter(0.10, 1), mds.Poor},
		{1, mds.Poor},
		{math.NaN(), mds.Poor},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mds.Classify(tc.stress), "stress %v", tc.stress)
	}
}

func TestQuality_String(t *testing.T) {
	assert.Equal(t, "perfect", mds.Perfect.String())
	assert.Equal(t, "excellent", mds.Excellent.String())
	assert.Equal(t, "good", mds.Good.String())
	assert.Equal(t, "fair", mds.Fair.String())
	assert.Equal(t, "poor", mds.Poor.String())
	assert.Equal(t, "Quality(9)", mds.Quality(9).String())
}
