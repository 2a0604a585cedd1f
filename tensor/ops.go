package tensor

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"
)

// Add returns the elementwise sum a + b.
func Add(a, b *Dense) (*Dense, error) {
	if !a.shape.Equal(b.shape) {
		return nil, errors.Wrapf(ErrShapeMismatch, "Add: %v vs %v", a.shape, b.shape)
	}
	out := a.Clone()
	for i, v := range b.data {
		out.data[i] += v
	}
	return out, nil
}

// AddInPlace accumulates b into the receiver.
func (d *Dense) AddInPlace(b *Dense) error {
	if !d.shape.Equal(b.shape) {
		return errors.Wrapf(ErrShapeMismatch, "AddInPlace: %v vs %v", d.shape, b.shape)
	}
	for i, v := range b.data {
		d.data[i] += v
	}
	return nil
}

// Scale returns the tensor multiplied by the scalar s.
func (d *Dense) Scale(s complex128) *Dense {
	out := d.Clone()
	for i := range out.data {
		out.data[i] *= s
	}
	return out
}

// ScaleInPlace multiplies the receiver by the scalar s.
func (d *Dense) ScaleInPlace(s complex128) {
	for i := range d.data {
		d.data[i] *= s
	}
}

// Conj returns the elementwise complex conjugate.
func (d *Dense) Conj() *Dense {
	out := Zeros(d.shape)
	for i, v := range d.data {
		out.data[i] = cmplx.Conj(v)
	}
	return out
}

// Norm returns the Frobenius norm: the l2 norm of the tensor viewed as
// a flat vector.
func (d *Dense) Norm() float64 {
	var sum float64
	for _, v := range d.data {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(sum)
}

// Vdot returns the inner product <a, b> = sum conj(a_i) * b_i over the
// flattened tensors.
func Vdot(a, b *Dense) (complex128, error) {
	if !a.shape.Equal(b.shape) {
		return 0, errors.Wrapf(ErrShapeMismatch, "Vdot: %v vs %v", a.shape, b.shape)
	}
	var sum complex128
	for i, v := range a.data {
		sum += cmplx.Conj(v) * b.data[i]
	}
	return sum, nil
}

// Trace returns the matrix trace of a square 2-D tensor.
func (d *Dense) Trace() (complex128, error) {
	if d.NDim() != 2 || d.shape[0] != d.shape[1] {
		return 0, errors.Wrapf(ErrShapeMismatch, "Trace: want a square matrix, got %v", d.shape)
	}
	n := d.shape[0]
	var sum complex128
	for i := 0; i < n; i++ {
		sum += d.data[i*n+i]
	}
	return sum, nil
}

// Kron returns the Kronecker product of two matrices.
func Kron(a, b *Dense) (*Dense, error) {
	if a.NDim() != 2 || b.NDim() != 2 {
		return nil, errors.Wrapf(ErrShapeMismatch, "Kron: want matrices, got %v and %v", a.shape, b.shape)
	}
	am, an := a.shape[0], a.shape[1]
	bm, bn := b.shape[0], b.shape[1]
	out := Zeros(Shape{am * bm, an * bn})
	cols := an * bn
	for i := 0; i < am; i++ {
		for j := 0; j < an; j++ {
			av := a.data[i*an+j]
			for k := 0; k < bm; k++ {
				for l := 0; l < bn; l++ {
					out.data[(i*bm+k)*cols+(j*bn+l)] = av * b.data[k*bn+l]
				}
			}
		}
	}
	return out, nil
}

// MKron is Kron with an arbitrary number of n >= 1 matrix arguments.
func MKron(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, errors.Wrap(ErrConfiguration, "MKron: no arguments")
	}
	out := ms[0]
	for _, m := range ms[1:] {
		var err error
		out, err = Kron(out, m)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Contract contracts a with b over the given axis pairs: pairs[k][0] is
// an axis of a and pairs[k][1] the matching axis of b. The result
// carries a's free axes (in order) followed by b's free axes. With no
// pairs it is the outer product.
func Contract(a, b *Dense, pairs [][2]int) (*Dense, error) {
	for _, p := range pairs {
		if p[0] < 0 || p[0] >= a.NDim() || p[1] < 0 || p[1] >= b.NDim() {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"Contract: pair (%d, %d) out of range for ranks (%d, %d)", p[0], p[1], a.NDim(), b.NDim())
		}
		if a.shape[p[0]] != b.shape[p[1]] {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"Contract: axis %d of %v does not match axis %d of %v", p[0], a.shape, p[1], b.shape)
		}
	}

	aFree, aSum := splitAxes(a.NDim(), pairs, 0)
	bFree, bSum := splitAxes(b.NDim(), pairs, 1)

	aPerm, err := a.Transpose(append(append([]int{}, aFree...), aSum...)...)
	if err != nil {
		return nil, err
	}
	bPerm, err := b.Transpose(append(append([]int{}, bSum...), bFree...)...)
	if err != nil {
		return nil, err
	}

	m, k, n := 1, 1, 1
	outShape := make(Shape, 0, len(aFree)+len(bFree))
	for _, ax := range aFree {
		m *= a.shape[ax]
		outShape = append(outShape, a.shape[ax])
	}
	for _, ax := range aSum {
		k *= a.shape[ax]
	}
	for _, ax := range bFree {
		n *= b.shape[ax]
		outShape = append(outShape, b.shape[ax])
	}

	out := Zeros(outShape)
	matmul(out.data, aPerm.data, bPerm.data, m, k, n)
	return out, nil
}

// splitAxes partitions 0..ndim-1 into the axes not named on side `side`
// of the pairs (free, in order) and the named ones (in pair order).
func splitAxes(ndim int, pairs [][2]int, side int) (free, summed []int) {
	used := make([]bool, ndim)
	summed = make([]int, 0, len(pairs))
	for _, p := range pairs {
		used[p[side]] = true
		summed = append(summed, p[side])
	}
	free = make([]int, 0, ndim-len(pairs))
	for i := 0; i < ndim; i++ {
		if !used[i] {
			free = append(free, i)
		}
	}
	return free, summed
}

// MatDot is Contract with matrix-multiplication defaults: the last axis
// of a against the first axis of b.
func MatDot(a, b *Dense) (*Dense, error) {
	return Contract(a, b, [][2]int{{a.NDim() - 1, 0}})
}

func matmul(out, a, b []complex128, m, k, n int) {
	for i := 0; i < m; i++ {
		for l := 0; l < k; l++ {
			av := a[i*k+l]
			if av == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out[i*n+j] += av * b[l*n+j]
			}
		}
	}
}
