// Copyright 2026 the mpnum authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/pkg/errors"

// ToLocal converts a tensor over `sites` sites with a fixed number p of
// physical legs per site from the global form
//
//	A[i_1,..., i_N, j_1,..., j_N, ...]
//
// (grouped by leg type) to the local form
//
//	A[i_1, j_1, ..., i_2, j_2, ...]
//
// (grouped by site). The number of axes must be a multiple of sites.
//
// Example:
//
//	l, _ := tensor.ToLocal(tensor.Zeros(tensor.Shape{1, 2, 3, 4, 5, 6}), 3)
//	l.Shape() // (1, 4, 2, 5, 3, 6)
func ToLocal(t *Dense, sites int) (*Dense, error) {
	if sites < 1 {
		return nil, errors.Wrapf(ErrConfiguration, "ToLocal: sites %d < 1", sites)
	}
	ndim := t.NDim()
	if ndim%sites != 0 {
		return nil, errors.Wrapf(ErrShapeMismatch, "ToLocal: ndim %d is not a multiple of %d sites", ndim, sites)
	}
	plegs := ndim / sites
	order := make([]int, ndim)
	for i := range order {
		order[i] = i/plegs + sites*(i%plegs)
	}
	return t.Transpose(order...)
}

// ToGlobal is the inverse of ToLocal, restricted to the interior axes:
// the leftSkip leading and rightSkip trailing axes pass through
// unchanged. The interior axis count must be a multiple of sites.
func ToGlobal(t *Dense, sites, leftSkip, rightSkip int) (*Dense, error) {
	if sites < 1 {
		return nil, errors.Wrapf(ErrConfiguration, "ToGlobal: sites %d < 1", sites)
	}
	if leftSkip < 0 || rightSkip < 0 {
		return nil, errors.Wrapf(ErrConfiguration, "ToGlobal: negative skip (%d, %d)", leftSkip, rightSkip)
	}
	skip := leftSkip + rightSkip
	ndim := t.NDim() - skip
	if ndim < 0 || ndim%sites != 0 {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"ToGlobal: %d interior axes is not a multiple of %d sites", ndim, sites)
	}
	plegs := ndim / sites

	order := make([]int, 0, t.NDim())
	for i := 0; i < leftSkip; i++ {
		order = append(order, i)
	}
	for j := 0; j < plegs; j++ {
		for i := 0; i < sites; i++ {
			order = append(order, leftSkip+plegs*i+j)
		}
	}
	for i := t.NDim() - rightSkip; i < t.NDim(); i++ {
		order = append(order, i)
	}
	return t.Transpose(order...)
}
