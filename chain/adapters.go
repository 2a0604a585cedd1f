// Copyright 2026 the mpnum authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/pkg/errors"

	"github.com/codeaudit/mpnum/tensor"
)

// FromPure maps a pure-state chain (one physical leg per site) to its
// outer-product density-operator chain: site tensors become
// A ⊗ conj(A) with row leg, column leg and squared bond extents.
func FromPure(psi *Chain) (*Chain, error) {
	ltens := make([]*tensor.Dense, psi.Sites())
	for i := 0; i < psi.Sites(); i++ {
		lt := psi.ltens[i]
		if lt.NDim() != 3 {
			return nil, errors.Wrapf(tensor.ErrShapeMismatch,
				"chain: site %d with shape %v is not a pure-state site", i, lt.Shape())
		}
		outer, err := tensor.Contract(lt, lt.Conj(), nil)
		if err != nil {
			return nil, err
		}
		// (bl, d, br, bl', d', br') -> (bl, bl', d, d', br, br')
		perm, err := outer.Transpose(0, 3, 1, 4, 2, 5)
		if err != nil {
			return nil, err
		}
		s := lt.Shape()
		rho, err := perm.Reshape(s[0]*s[0], s[1], s[1], s[2]*s[2])
		if err != nil {
			return nil, err
		}
		ltens[i] = rho
	}
	return New(ltens)
}

// LocalSum combines operator chains supported on consecutive contiguous
// site windows into one chain on the union of the windows: term i
// starts at site i, and sites outside a term's window are filled with
// identity tensors of bond extent 1 before the terms are summed.
// All terms must share a uniform square physical dimension.
func LocalSum(terms []*Chain) (*Chain, error) {
	if len(terms) == 0 {
		return nil, errors.Wrap(tensor.ErrConfiguration, "chain: no local terms")
	}

	ldim := 0
	sites := 0
	for i, term := range terms {
		for _, pd := range term.PhysDims() {
			if len(pd) != 2 || pd[0] != pd[1] {
				return nil, errors.Wrapf(tensor.ErrShapeMismatch,
					"chain: term %d with physical dims %v is not an operator chain", i, pd)
			}
			if ldim == 0 {
				ldim = pd[0]
			}
			if pd[0] != ldim {
				return nil, errors.Wrapf(tensor.ErrShapeMismatch,
					"chain: term %d mixes local dimensions %d and %d", i, ldim, pd[0])
			}
		}
		if end := i + term.Sites(); end > sites {
			sites = end
		}
	}

	id, err := tensor.Eye(ldim).Reshape(1, ldim, ldim, 1)
	if err != nil {
		return nil, err
	}

	var acc *Chain
	for i, term := range terms {
		ltens := make([]*tensor.Dense, 0, sites)
		for s := 0; s < i; s++ {
			ltens = append(ltens, id.Clone())
		}
		for s := 0; s < term.Sites(); s++ {
			ltens = append(ltens, term.ltens[s].Clone())
		}
		for s := i + term.Sites(); s < sites; s++ {
			ltens = append(ltens, id.Clone())
		}
		embedded, err := New(ltens)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = embedded
			continue
		}
		acc, err = acc.Add(embedded)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
