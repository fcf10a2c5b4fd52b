// Package matrix offers the dense linear-algebra primitives used by the
// scaling packages of nmds.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Central validators (square, symmetric, rectangular row tables).
//   - Eigen / EigenSorted, deterministic Jacobi eigen-decomposition for
//     symmetric input.
//   - DoubleCenter and Symmetrize, the centering transforms behind classical
//     (Torgerson) scaling.
//
// All kernels return sentinel errors from errors.go wrapped with an operation
// tag; match them with errors.Is.
package matrix
