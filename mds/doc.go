// Package mds implements ordinal (non-metric, Kruskal) multidimensional scaling.
//
// 🚀 What is ordinal MDS?
//
//	Given an n×n matrix of dissimilarities, find n points in a d-dimensional
//	space whose Euclidean distances reproduce only the rank order of the
//	dissimilarities. Magnitudes are ignored: a configuration is perfect when
//	every smaller dissimilarity maps to a no-larger distance.
//
// How it works:
//
//  1. Rank builder: the lower triangle is linearized in pair order
//     (0,1),(0,2),…,(1,2),… and sorted once into a permutation and its inverse.
//  2. Objective: for a candidate configuration the fitted distances are put in
//     rank order, an isotonic (monotone least-squares) regression yields the
//     disparities, and Kruskal's stress sqrt(Σ(y-ŷ)²/Σy²) plus its analytic
//     gradient are returned.
//  3. Driver: starting from classical MDS (or a caller-supplied
//     configuration), L-BFGS minimizes stress; on failure BFGS restarts from
//     the original start vector. The result is tagged with a quality class.
//
// Quality classes (stress):
//
//	0        perfect
//	≤ 0.025  excellent
//	≤ 0.05   good
//	≤ 0.10   fair
//	>        poor
//
// Errors (sentinel):
//
//   - ErrConfiguration: dimension < 2, bad tolerance/iterations, malformed properties.
//   - ErrInvalidInput:  non-square proximity, mismatched initial configuration.
//   - ErrOptimization:  both the primary and the fallback minimizer failed.
//
// Numeric edge cases (all-zero dissimilarities, coincident points) are not
// errors: they surface as NaN or ±Inf in the stress and gradient.
//
// Performance:
//
//   - Each objective evaluation: O(n²·d) distances + O(p²) isotonic fit, p = n(n-1)/2
//   - Memory: O(p + n·d)
//
// An Objective is not safe for concurrent use; each Fit owns its buffers.
package mds
