// Copyright 2026 the mpnum authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package chain provides the matrix-product chain container: an ordered
// sequence of local tensors, each shaped (bondLeft, plegs..., bondRight),
// whose bond contraction reproduces one many-index tensor.
//
// The package carries the minimal algebra the random samplers need:
// elementwise addition, scalar multiply/divide, inner products and
// norms, the operator trace, full contraction back to a dense tensor,
// and the density-from-pure and local-sum adapters. Compression,
// canonicalization and contraction-order optimization are out of scope.
//
// Example:
//
//	a, _ := chain.New([]*tensor.Dense{l0, l1, l2})
//	b := a.Scale(2)
//	sum, _ := a.Add(b)
package chain
