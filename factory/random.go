// Copyright 2026 the mpnum authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package factory

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/codeaudit/mpnum/tensor"
)

// NewSource returns a seeded random source for the samplers in this
// package. It is a convenience for the outermost API boundary; the
// samplers themselves always take the source explicitly.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// GaussianComplex returns a tensor whose entries are independent
// standard complex normals: two N(0, 1) draws per entry, combined as
// real + i*imaginary.
func GaussianComplex(rng *rand.Rand, shape tensor.Shape) *tensor.Dense {
	t := tensor.Zeros(shape)
	data := t.Data()
	for i := range data {
		data[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	return t
}

// RandomVector returns a random complex vector of shape (ldim,)*sites
// normalized to unit l2 norm: a pure state with local dimension ldim
// living on `sites` sites.
func RandomVector(rng *rand.Rand, sites, ldim int) (*tensor.Dense, error) {
	if sites < 1 || ldim < 1 {
		return nil, errors.Wrapf(tensor.ErrConfiguration,
			"RandomVector: sites %d, ldim %d", sites, ldim)
	}
	shape := make(tensor.Shape, sites)
	for i := range shape {
		shape[i] = ldim
	}
	psi := GaussianComplex(rng, shape)
	ip, err := tensor.Vdot(psi, psi)
	if err != nil {
		return nil, err
	}
	psi.ScaleInPlace(1 / cmplx.Sqrt(ip))
	return psi, nil
}

// RandomOperator returns a random operator of shape (ldim, ldim)*sites
// in global form. With hermitian set, the conjugate transpose is added;
// with normalized set, the result has unit Frobenius norm.
func RandomOperator(rng *rand.Rand, sites, ldim int, hermitian, normalized bool) (*tensor.Dense, error) {
	if sites < 1 || ldim < 1 {
		return nil, errors.Wrapf(tensor.ErrConfiguration,
			"RandomOperator: sites %d, ldim %d", sites, ldim)
	}
	dim := intPow(ldim, sites)
	op := GaussianComplex(rng, tensor.Shape{dim, dim})
	if hermitian {
		adj, err := op.Transpose()
		if err != nil {
			return nil, err
		}
		if err := op.AddInPlace(adj.Conj()); err != nil {
			return nil, err
		}
	}
	if normalized {
		op.ScaleInPlace(complex(1/op.Norm(), 0))
	}
	return op.Reshape(operatorShape(sites, ldim)...)
}

// RandomState returns a random positive semidefinite operator of shape
// (ldim, ldim)*sites in global form, normalized to trace 1: a mixed
// state on `sites` sites. Positivity comes from the Gram construction
// M†M, so eigenvalues are nonnegative up to roundoff.
func RandomState(rng *rand.Rand, sites, ldim int) (*tensor.Dense, error) {
	if sites < 1 || ldim < 1 {
		return nil, errors.Wrapf(tensor.ErrConfiguration,
			"RandomState: sites %d, ldim %d", sites, ldim)
	}
	dim := intPow(ldim, sites)
	m := GaussianComplex(rng, tensor.Shape{dim, dim})
	adj, err := m.Transpose()
	if err != nil {
		return nil, err
	}
	rho, err := tensor.MatDot(adj.Conj(), m)
	if err != nil {
		return nil, err
	}
	tr, err := rho.Trace()
	if err != nil {
		return nil, err
	}
	rho.ScaleInPlace(1 / tr)
	return rho.Reshape(operatorShape(sites, ldim)...)
}

// HaarUnitary returns a sample from the Haar measure on the unitary
// group U(dim). A Gaussian matrix scaled by 1/sqrt(2) is QR-factorized
// and Q's phase ambiguity is fixed by the phases of R's diagonal, which
// makes the corrected Q uniform on the group.
func HaarUnitary(rng *rand.Rand, dim int) (*tensor.Dense, error) {
	if dim < 1 {
		return nil, errors.Wrapf(tensor.ErrConfiguration, "HaarUnitary: dim %d < 1", dim)
	}
	z := GaussianComplex(rng, tensor.Shape{dim, dim})
	z.ScaleInPlace(complex(1/math.Sqrt2, 0))
	q, r, err := tensor.QR(z)
	if err != nil {
		return nil, err
	}
	// Multiply column j of Q by r_jj / |r_jj|.
	qd := q.Data()
	for j := 0; j < dim; j++ {
		d := r.At(j, j)
		ph := d / complex(cmplx.Abs(d), 0)
		for i := 0; i < dim; i++ {
			qd[i*dim+j] *= ph
		}
	}
	return q, nil
}

// operatorShape is (ldim, ldim) repeated `sites` times: the global form
// of an operator with two legs per site.
func operatorShape(sites, ldim int) tensor.Shape {
	shape := make(tensor.Shape, 2*sites)
	for i := range shape {
		shape[i] = ldim
	}
	return shape
}

func intPow(base, exp int) int {
	n := 1
	for i := 0; i < exp; i++ {
		n *= base
	}
	return n
}
