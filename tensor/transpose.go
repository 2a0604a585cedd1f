package tensor

import "github.com/pkg/errors"

// Transpose returns a copy with axes permuted according to the given
// permutation: output axis i carries the data of input axis axes[i].
// With no axes given, all axes are reversed.
func (d *Dense) Transpose(axes ...int) (*Dense, error) {
	ndim := len(d.shape)

	// Default: reverse all dimensions
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"Transpose: axes length %d must match tensor dimensions %d", len(axes), ndim)
	}

	newShape := make(Shape, ndim)
	seen := make([]bool, ndim)
	for i, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, errors.Wrapf(ErrShapeMismatch, "Transpose: axis %d out of range [0, %d)", ax, ndim)
		}
		if seen[ax] {
			return nil, errors.Wrapf(ErrShapeMismatch, "Transpose: axis %d listed twice", ax)
		}
		seen[ax] = true
		newShape[i] = d.shape[ax]
	}

	result := Zeros(newShape)
	transposeData(d.data, result.data, d.shape, newShape, axes)
	return result, nil
}

func transposeData(in, out []complex128, oldShape, newShape Shape, axes []int) {
	ndim := len(oldShape)
	oldStrides := oldShape.ComputeStrides()
	newStrides := newShape.ComputeStrides()
	total := newShape.NumElements()

	idx := make([]int, ndim)
	for i := 0; i < total; i++ {
		// Decode the new multi-index
		tmp := i
		for j := ndim - 1; j >= 0; j-- {
			idx[j] = tmp % newShape[j]
			tmp /= newShape[j]
		}

		oldFlat := 0
		for j := 0; j < ndim; j++ {
			oldFlat += idx[j] * oldStrides[axes[j]]
		}

		newFlat := 0
		for j := 0; j < ndim; j++ {
			newFlat += idx[j] * newStrides[j]
		}

		out[newFlat] = in[oldFlat]
	}
}
