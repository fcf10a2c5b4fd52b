// Package classical implements classical (Torgerson–Gower) multidimensional
// scaling: principal coordinates of a dissimilarity matrix.
//
// 🚀 What is classical MDS?
//
//	Given an n×n matrix of dissimilarities D, classical scaling squares the
//	entries, double-centers them (B = -½·J·D²·J) and takes the top-k
//	eigenpairs of B. Point i is placed at (√λ₁·v₁ᵢ, …, √λₖ·vₖᵢ).
//	When D holds Euclidean distances the configuration is recovered exactly
//	up to rotation, reflection and translation.
//
// It is deterministic (Jacobi eigen-decomposition, fixed pivot order) and is
// the default starting configuration for ordinal scaling in package mds.
//
// Performance:
//
//   - Time:   O(r·n²) for r Jacobi rotations (r grows roughly like n²)
//   - Memory: O(n²)
package classical
