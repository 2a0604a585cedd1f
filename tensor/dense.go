// Copyright 2026 the mpnum authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Dense is a dense tensor of complex128 scalars in row-major layout.
// All operations in this package allocate fresh output tensors and never
// mutate their inputs unless documented otherwise.
type Dense struct {
	data  []complex128
	shape Shape
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *Dense {
	if err := shape.Validate(); err != nil {
		panic(err) // Caller passed a non-positive extent
	}
	return &Dense{
		data:  make([]complex128, shape.NumElements()),
		shape: shape.Clone(),
	}
}

// FromSlice creates a tensor from a flat row-major slice. The data is
// copied, so the caller keeps ownership of the input slice.
func FromSlice(data []complex128, shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(ErrShapeMismatch, err.Error())
	}
	if len(data) != shape.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"%d elements cannot fill shape %v (%d elements)", len(data), shape, shape.NumElements())
	}
	d := Zeros(shape)
	copy(d.data, data)
	return d, nil
}

// Eye creates the n-by-n identity matrix.
func Eye(n int) *Dense {
	d := Zeros(Shape{n, n})
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}
	return d
}

// Shape returns the tensor's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// NDim returns the number of axes.
func (d *Dense) NDim() int {
	return len(d.shape)
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return d.shape.NumElements()
}

// Data returns the flat row-major backing slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (d *Dense) Data() []complex128 {
	return d.data
}

// At returns the element at the given multi-index.
// Panics if the index rank or any coordinate is out of range.
func (d *Dense) At(idx ...int) complex128 {
	return d.data[d.flatIndex(idx)]
}

// Set stores v at the given multi-index.
// Panics if the index rank or any coordinate is out of range.
func (d *Dense) Set(v complex128, idx ...int) {
	d.data[d.flatIndex(idx)] = v
}

func (d *Dense) flatIndex(idx []int) int {
	if len(idx) != len(d.shape) {
		panic(fmt.Sprintf("tensor: index rank %d does not match shape %v", len(idx), d.shape))
	}
	flat := 0
	stride := 1
	for i := len(d.shape) - 1; i >= 0; i-- {
		if idx[i] < 0 || idx[i] >= d.shape[i] {
			panic(fmt.Sprintf("tensor: index %v out of range for shape %v", idx, d.shape))
		}
		flat += idx[i] * stride
		stride *= d.shape[i]
	}
	return flat
}

// Clone creates a deep copy of the tensor.
func (d *Dense) Clone() *Dense {
	c := Zeros(d.shape)
	copy(c.data, d.data)
	return c
}

// Reshape returns a tensor with the same data and a new shape.
// At most one dimension may be -1, in which case its extent is inferred
// from the element count. The data is shared with the receiver.
func (d *Dense) Reshape(newShape ...int) (*Dense, error) {
	totalElements := d.NumElements()

	inferIdx := -1
	product := 1
	for i, dim := range newShape {
		switch {
		case dim == -1:
			if inferIdx >= 0 {
				return nil, errors.Wrap(ErrShapeMismatch, "Reshape: can only have one -1 dimension")
			}
			inferIdx = i
		case dim <= 0:
			return nil, errors.Wrapf(ErrShapeMismatch, "Reshape: dimensions must be positive, got %d", dim)
		default:
			product *= dim
		}
	}

	actualShape := make(Shape, len(newShape))
	copy(actualShape, newShape)

	if inferIdx >= 0 {
		if product == 0 || totalElements%product != 0 {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"Reshape: cannot infer dimension for shape %v from %d elements", newShape, totalElements)
		}
		actualShape[inferIdx] = totalElements / product
	}

	if actualShape.NumElements() != totalElements {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"Reshape: cannot reshape %d elements to shape %v", totalElements, actualShape)
	}

	return &Dense{data: d.data, shape: actualShape}, nil
}
