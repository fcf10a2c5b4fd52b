package mds

import "math"

// Isotonic writes into yf the least-squares non-decreasing fit of y, using
// yc (length len(y)+1) as prefix-sum scratch.
//
// The fit is the lower convex envelope of the cumulative sums: from the
// current cursor, the breakpoint with the smallest block average is chosen
// (first occurrence on ties) and the block is filled with that average.
// Non-finite input propagates; the pass never stalls on NaN.
//
// Complexity: O(p²) time, no allocation.
func Isotonic(y, yc, yf []float64) {
	n := len(y)
	yc[0] = 0
	for i := 0; i < n; i++ {
		yc[i+1] = yc[i] + y[i]
	}

	var (
		known, ip, i int
		slope, avg   float64
	)
	for known < n {
		slope, ip = math.Inf(1), n
		for i = known + 1; i <= n; i++ {
			avg = (yc[i] - yc[known]) / float64(i-known)
			if avg < slope {
				slope, ip = avg, i
			}
		}
		avg = (yc[ip] - yc[known]) / float64(ip-known)
		for i = known; i < ip; i++ {
			yf[i] = avg
		}
		known = ip
	}
}

// IsotonicFit returns the least-squares non-decreasing fit of y.
func IsotonicFit(y []float64) []float64 {
	yf := make([]float64, len(y))
	Isotonic(y, make([]float64, len(y)+1), yf)

	return yf
}
