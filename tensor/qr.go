package tensor

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"
)

// QR factorizes a square matrix A into a unitary Q and an upper
// triangular R with A = Q R, using Householder reflections. No pivoting
// is performed, so R's diagonal carries the usual phase ambiguity.
func QR(a *Dense) (q, r *Dense, err error) {
	if a.NDim() != 2 || a.shape[0] != a.shape[1] {
		return nil, nil, errors.Wrapf(ErrShapeMismatch, "QR: want a square matrix, got %v", a.shape)
	}
	n := a.shape[0]

	r = a.Clone()
	q = Eye(n)
	v := make([]complex128, n)

	for k := 0; k < n-1; k++ {
		// Householder vector for column k, rows k..n-1.
		var norm float64
		for i := k; i < n; i++ {
			x := r.data[i*n+k]
			norm += real(x)*real(x) + imag(x)*imag(x)
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}

		x0 := r.data[k*n+k]
		sign := complex(1, 0)
		if x0 != 0 {
			sign = x0 / complex(cmplx.Abs(x0), 0)
		}
		alpha := -sign * complex(norm, 0)

		var vnorm float64
		for i := k; i < n; i++ {
			v[i] = r.data[i*n+k]
			if i == k {
				v[i] -= alpha
			}
			vnorm += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
		}
		vnorm = math.Sqrt(vnorm)
		if vnorm == 0 {
			continue
		}
		for i := k; i < n; i++ {
			v[i] /= complex(vnorm, 0)
		}

		// R[k:, j] -= 2 v (v† R[k:, j]) for the trailing columns.
		for j := k; j < n; j++ {
			var dot complex128
			for i := k; i < n; i++ {
				dot += cmplx.Conj(v[i]) * r.data[i*n+j]
			}
			for i := k; i < n; i++ {
				r.data[i*n+j] -= 2 * v[i] * dot
			}
		}

		// Accumulate Q = Q H_k by updating its columns k..n-1:
		// Q[i, k:] -= 2 (Q[i, k:] v) v†.
		for i := 0; i < n; i++ {
			var dot complex128
			for j := k; j < n; j++ {
				dot += q.data[i*n+j] * v[j]
			}
			for j := k; j < n; j++ {
				q.data[i*n+j] -= 2 * dot * cmplx.Conj(v[j])
			}
		}
	}

	// Zero the strict lower triangle left behind by roundoff.
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			r.data[i*n+j] = 0
		}
	}
	return q, r, nil
}
