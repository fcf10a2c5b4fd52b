// Package nmds is an in-memory toolkit for ordinal (non-metric)
// multidimensional scaling: place n objects in a low-dimensional space so
// that their distances follow the rank order of given dissimilarities.
//
// 🚀 What is in nmds?
//
//   - mds/: Kruskal's isotonic stress, its gradient and the fit driver
//   - classical/: classical (Torgerson) MDS, the default starting configuration
//   - quasinewton/: L-BFGS and BFGS minimizers backed by gonum/optimize
//   - matrix/: dense row-major matrices, double centering, Jacobi eigen
//   - cmd/nmds: CSV in, YAML or JSON out
//
// ✨ Why ordinal MDS?
//
//   - Only ranks matter – survey ratings, confusion counts and other
//     dissimilarities without a meaningful scale still embed faithfully
//   - Deterministic – classical start, fixed pivot order, no random seeds
//   - Diagnosable – stress, a quality class and a Shepard diagram per fit
//
// Quick example:
//
//	proximity := [][]float64{
//	    {0, 1, 1.41, 1},
//	    {1, 0, 1, 1.41},
//	    {1.41, 1, 0, 1},
//	    {1, 1.41, 1, 0},
//	}
//	res, err := mds.Fit(proximity, mds.WithDimension(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Stress, res.Quality) // 0 perfect
//
// Stress quality classes: 0 perfect, ≤ 0.025 excellent, ≤ 0.05 good,
// ≤ 0.10 fair, otherwise poor.
package nmds
