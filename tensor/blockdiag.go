// Copyright 2026 the mpnum authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/pkg/errors"

// BlockDiag performs a generalized block-diagonal sum of the summands
// along the listed axes (negative indices count from the end). On every
// axis not listed the summands must have identical extents; on each
// listed axis the output extent is the sum of the summand extents.
// Summands occupy non-overlapping diagonal blocks, in input order, and
// all cross blocks are exactly zero.
//
// Example:
//
//	a, _ := tensor.FromSlice(vals0to7, tensor.Shape{2, 2, 2})
//	b, _ := tensor.FromSlice(vals8to15, tensor.Shape{2, 2, 2})
//	c, _ := tensor.BlockDiag([]*tensor.Dense{a, b}, []int{1, -1}) // shape (2, 4, 4)
func BlockDiag(summands []*Dense, axes []int) (*Dense, error) {
	if len(summands) == 0 {
		return nil, errors.Wrap(ErrConfiguration, "BlockDiag: no summands")
	}
	ndim := summands[0].NDim()
	for _, s := range summands[1:] {
		if s.NDim() != ndim {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"BlockDiag: summand ranks differ (%d vs %d)", ndim, s.NDim())
		}
	}

	resolved := make([]int, len(axes))
	listed := make([]bool, ndim)
	for i, ax := range axes {
		if ax < 0 {
			ax += ndim
		}
		if ax < 0 || ax >= ndim {
			return nil, errors.Wrapf(ErrShapeMismatch, "BlockDiag: axis %d out of range for rank %d", axes[i], ndim)
		}
		if listed[ax] {
			return nil, errors.Wrapf(ErrShapeMismatch, "BlockDiag: axis %d listed twice", ax)
		}
		listed[ax] = true
		resolved[i] = ax
	}

	// Bring the summed axes to the front, remaining axes in order.
	axesOrder := make([]int, 0, ndim)
	axesOrder = append(axesOrder, resolved...)
	for i := 0; i < ndim; i++ {
		if !listed[i] {
			axesOrder = append(axesOrder, i)
		}
	}

	nrAxes := len(resolved)
	reordered := make([]*Dense, len(summands))
	for i, s := range summands {
		r, err := s.Transpose(axesOrder...)
		if err != nil {
			return nil, err
		}
		if i > 0 && !r.shape[nrAxes:].Equal(reordered[0].shape[nrAxes:]) {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"BlockDiag: summand %d has extents %v outside the summed axes, want %v",
				i, r.shape[nrAxes:], reordered[0].shape[nrAxes:])
		}
		reordered[i] = r
	}

	outShape := reordered[0].shape.Clone()
	for _, r := range reordered[1:] {
		for j := 0; j < nrAxes; j++ {
			outShape[j] += r.shape[j]
		}
	}
	out := Zeros(outShape)
	outStrides := outShape.ComputeStrides()

	offset := make([]int, nrAxes)
	idx := make([]int, ndim)
	for _, r := range reordered {
		for flat := 0; flat < len(r.data); flat++ {
			tmp := flat
			for j := ndim - 1; j >= 0; j-- {
				idx[j] = tmp % r.shape[j]
				tmp /= r.shape[j]
			}
			outFlat := 0
			for j := 0; j < nrAxes; j++ {
				outFlat += (offset[j] + idx[j]) * outStrides[j]
			}
			for j := nrAxes; j < ndim; j++ {
				outFlat += idx[j] * outStrides[j]
			}
			out.data[outFlat] += r.data[flat]
		}
		for j := 0; j < nrAxes; j++ {
			offset[j] += r.shape[j]
		}
	}

	// Undo the axis reordering.
	inverse := make([]int, ndim)
	for i, ax := range axesOrder {
		inverse[ax] = i
	}
	return out.Transpose(inverse...)
}
