// Copyright 2026 the mpnum authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package factory

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/codeaudit/mpnum/chain"
	"github.com/codeaudit/mpnum/tensor"
)

// RandomChain returns a chain whose local tensors are filled with
// standard complex Gaussian noise.
func RandomChain(rng *rand.Rand, sites int, legs LegSpec, bondDim int) (*chain.Chain, error) {
	return Build(sites, legs, bondDim, func(shape tensor.Shape) *tensor.Dense {
		return GaussianComplex(rng, shape)
	})
}

// ZeroChain returns a chain of the given geometry with all local
// tensors zero.
func ZeroChain(sites int, legs LegSpec, bondDim int) (*chain.Chain, error) {
	return Build(sites, legs, bondDim, tensor.Zeros)
}

// IdentityChain returns the chain representing the identity operator:
// bond extent 1 everywhere and the ldim-by-ldim identity as every local
// tensor.
func IdentityChain(sites, ldim int) (*chain.Chain, error) {
	if sites < 1 || ldim < 1 {
		return nil, errors.Wrapf(tensor.ErrConfiguration,
			"IdentityChain: sites %d, ldim %d", sites, ldim)
	}
	ltens := make([]*tensor.Dense, sites)
	for i := range ltens {
		lt, err := tensor.Eye(ldim).Reshape(1, ldim, ldim, 1)
		if err != nil {
			return nil, err
		}
		ltens[i] = lt
	}
	return chain.New(ltens)
}

// RandomOperatorChain returns a random operator chain with two physical
// legs of extent ldim per site.
//
// With hermitian set, every local tensor has its leg-swapped conjugate
// added to it. This symmetrizes each site individually; for bond
// dimensions above 1 it does NOT guarantee that the fully contracted
// operator is Hermitian. With normalized set, the whole chain is scaled
// to unit Frobenius norm.
func RandomOperatorChain(rng *rand.Rand, sites, ldim, bondDim int, hermitian, normalized bool) (*chain.Chain, error) {
	legs := make(PerSiteMultiLeg, sites)
	for i := range legs {
		legs[i] = []int{ldim, ldim}
	}
	mpo, err := RandomChain(rng, sites, legs, bondDim)
	if err != nil {
		return nil, err
	}

	if hermitian {
		// Symmetrize in place without increasing the bond dimension.
		for i := 0; i < mpo.Sites(); i++ {
			lt := mpo.Site(i)
			swapped, err := lt.Transpose(0, 2, 1, 3)
			if err != nil {
				return nil, err
			}
			if err := lt.AddInPlace(swapped.Conj()); err != nil {
				return nil, err
			}
		}
	}
	if normalized {
		// The norm comes from a copy so the returned chain is scaled
		// exactly once.
		norm, err := mpo.Clone().Norm()
		if err != nil {
			return nil, err
		}
		mpo = mpo.Div(complex(norm, 0))
	}
	return mpo, nil
}

// RandomStateChain returns a random pure-state chain with one physical
// leg of extent ldim per site, scaled to unit Frobenius norm.
func RandomStateChain(rng *rand.Rand, sites, ldim, bondDim int) (*chain.Chain, error) {
	mps, err := RandomChain(rng, sites, Uniform(ldim), bondDim)
	if err != nil {
		return nil, err
	}
	norm, err := mps.Clone().Norm()
	if err != nil {
		return nil, err
	}
	return mps.Div(complex(norm, 0)), nil
}

// RandomDensityChain returns a random density-operator chain: Hermitian,
// positive semidefinite and of trace 1 within numerical tolerance, with
// interior bond extent exactly bondDim at every cut.
//
// The operator is a mixture of bondDim pure product states with
// non-negative weights summing to 1. Summing the bondDim rank-1 pieces
// fixes every interior bond at bondDim; a Haar-uniform gauge transform
// is then absorbed into each bond so the local tensors do not expose
// the product-state structure, and the trace is renormalized to absorb
// numerical drift.
func RandomDensityChain(rng *rand.Rand, sites, ldim, bondDim int) (*chain.Chain, error) {
	if bondDim < 1 {
		return nil, errors.Wrapf(tensor.ErrConfiguration, "RandomDensityChain: bondDim %d < 1", bondDim)
	}

	psis := make([]*chain.Chain, bondDim)
	for i := range psis {
		psi, err := RandomStateChain(rng, sites, ldim, 1)
		if err != nil {
			return nil, err
		}
		psis[i] = psi
	}

	weights := make([]float64, bondDim)
	var total float64
	for i := range weights {
		weights[i] = rng.Float64()
		total += weights[i]
	}

	var rho *chain.Chain
	for i, psi := range psis {
		term, err := chain.FromPure(psi)
		if err != nil {
			return nil, err
		}
		term = term.Scale(complex(weights[i]/total, 0))
		if rho == nil {
			rho = term
			continue
		}
		if rho, err = rho.Add(term); err != nil {
			return nil, err
		}
	}

	// Scramble the local tensors: absorbing U into the left tensor and
	// U conjugate-transposed into the right one leaves the represented
	// operator unchanged.
	for n, bd := range rho.BondDims() {
		u, err := HaarUnitary(rng, bd)
		if err != nil {
			return nil, err
		}
		left, err := tensor.MatDot(rho.Site(n), u)
		if err != nil {
			return nil, err
		}
		uAdj, err := u.Transpose()
		if err != nil {
			return nil, err
		}
		right, err := tensor.MatDot(uAdj.Conj(), rho.Site(n+1))
		if err != nil {
			return nil, err
		}
		if err := rho.SetSite(n, left); err != nil {
			return nil, err
		}
		if err := rho.SetSite(n+1, right); err != nil {
			return nil, err
		}
	}

	tr, err := rho.Trace()
	if err != nil {
		return nil, err
	}
	return rho.Div(tr), nil
}

// RandomLocalHamiltonianChain returns a random Hamiltonian on `sites`
// sites with local dimension ldim, built as the sum of Hermitian,
// unit-Frobenius-norm terms on every contiguous window of
// interactionLength sites. Bond-dimension minimization of the sum is
// left to the chain layer.
func RandomLocalHamiltonianChain(rng *rand.Rand, sites, ldim, interactionLength int) (*chain.Chain, error) {
	if interactionLength < 1 {
		return nil, errors.Wrapf(tensor.ErrConfiguration,
			"RandomLocalHamiltonianChain: interaction length %d < 1", interactionLength)
	}
	if sites < interactionLength {
		return nil, errors.Wrapf(tensor.ErrConfiguration,
			"RandomLocalHamiltonianChain: sites %d < interaction length %d", sites, interactionLength)
	}

	terms := make([]*chain.Chain, sites+1-interactionLength)
	for i := range terms {
		op, err := RandomOperator(rng, interactionLength, ldim, true, true)
		if err != nil {
			return nil, err
		}
		local, err := tensor.ToLocal(op, interactionLength)
		if err != nil {
			return nil, err
		}
		if terms[i], err = chain.FromDense(local, 2); err != nil {
			return nil, err
		}
	}
	return chain.LocalSum(terms)
}
