// Copyright 2026 the mpnum authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense complex tensors and the index-layout
// primitives used by matrix-product (tensor-train) computations.
//
// The package defines:
//   - Dense: a row-major dense tensor of complex128 scalars
//   - Shape: ordered axis extents with stride computation
//   - ToLocal, ToGlobal: site-major vs. leg-major axis reorderings
//   - PartialTrace: elimination of selected sites from a two-legs-per-site tensor
//   - BlockDiag: generalized block-diagonal sum along arbitrary axis subsets
//   - Contract, MatDot, Kron, QR: the contraction and factorization
//     helpers the chain algebra is built on
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{1, 2, 3, 4, 5, 6})
//	l, err := tensor.ToLocal(t, 3) // shape (1, 4, 2, 5, 3, 6)
package tensor
