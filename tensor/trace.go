package tensor

import "github.com/pkg/errors"

// PartialTrace traces out the given sites of a tensor in global form
// with exactly 2 legs per site: row legs occupy axes 0..sites-1 and
// column legs axes sites..2*sites-1. The trace-out list must be
// strictly ascending; an empty list returns the input unchanged.
//
// Sites are eliminated back to front with an explicit loop, so long
// chains do not grow the call stack.
func PartialTrace(t *Dense, traceout []int) (*Dense, error) {
	if len(traceout) == 0 {
		return t, nil
	}
	if t.NDim()%2 != 0 {
		return nil, errors.Wrapf(ErrShapeMismatch, "PartialTrace: ndim %d is not a multiple of 2", t.NDim())
	}
	sites := t.NDim() / 2
	for i, s := range traceout {
		if s < 0 || s >= sites {
			return nil, errors.Wrapf(ErrShapeMismatch, "PartialTrace: site %d out of range [0, %d)", s, sites)
		}
		if i > 0 && traceout[i-1] >= s {
			return nil, errors.Wrapf(ErrOrderViolation, "PartialTrace: got %v", traceout)
		}
	}

	cur := t
	for k := len(traceout) - 1; k >= 0; k-- {
		curSites := cur.NDim() / 2
		r := traceout[k]
		red, err := traceAxes(cur, r, r+curSites)
		if err != nil {
			return nil, err
		}
		cur = red
	}
	return cur, nil
}

// traceAxes contracts the axis pair (ax1, ax2), ax1 < ax2, summing over
// their shared diagonal.
func traceAxes(t *Dense, ax1, ax2 int) (*Dense, error) {
	if t.shape[ax1] != t.shape[ax2] {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"trace axes %d and %d have extents %d != %d", ax1, ax2, t.shape[ax1], t.shape[ax2])
	}
	dlen := t.shape[ax1]

	outShape := make(Shape, 0, t.NDim()-2)
	outAxes := make([]int, 0, t.NDim()-2)
	for i, dim := range t.shape {
		if i != ax1 && i != ax2 {
			outShape = append(outShape, dim)
			outAxes = append(outAxes, i)
		}
	}
	out := Zeros(outShape)

	inStrides := t.shape.ComputeStrides()
	idx := make([]int, len(outShape))
	for flat := 0; flat < len(out.data); flat++ {
		tmp := flat
		for j := len(outShape) - 1; j >= 0; j-- {
			idx[j] = tmp % outShape[j]
			tmp /= outShape[j]
		}
		base := 0
		for j, ax := range outAxes {
			base += idx[j] * inStrides[ax]
		}
		diagStride := inStrides[ax1] + inStrides[ax2]
		var sum complex128
		for d := 0; d < dlen; d++ {
			sum += t.data[base+d*diagStride]
		}
		out.data[flat] = sum
	}
	return out, nil
}
