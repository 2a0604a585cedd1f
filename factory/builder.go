// Copyright 2026 the mpnum authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package factory

import (
	"github.com/pkg/errors"

	"github.com/codeaudit/mpnum/chain"
	"github.com/codeaudit/mpnum/tensor"
)

// LegSpec describes the physical legs of a chain under construction.
// The three variants are:
//
//	Uniform(d)                 one leg of extent d on every site
//	PerSite{d0, d1, ...}       one leg per site with the given extents
//	PerSiteMultiLeg{{...},...} arbitrary legs per site
//
// PerSite and PerSiteMultiLeg must list exactly one entry per site.
type LegSpec interface {
	normalize(sites int) ([][]int, error)
}

// Uniform gives every site a single physical leg of the same extent.
type Uniform int

// PerSite gives every site a single physical leg with its own extent.
type PerSite []int

// PerSiteMultiLeg gives every site its own tuple of leg extents.
type PerSiteMultiLeg [][]int

func (u Uniform) normalize(sites int) ([][]int, error) {
	if u < 1 {
		return nil, errors.Wrapf(tensor.ErrConfiguration, "leg extent %d < 1", int(u))
	}
	legs := make([][]int, sites)
	for i := range legs {
		legs[i] = []int{int(u)}
	}
	return legs, nil
}

func (p PerSite) normalize(sites int) ([][]int, error) {
	if len(p) != sites {
		return nil, errors.Wrapf(tensor.ErrConfiguration,
			"leg spec lists %d sites, want %d", len(p), sites)
	}
	legs := make([][]int, sites)
	for i, d := range p {
		if d < 1 {
			return nil, errors.Wrapf(tensor.ErrConfiguration, "leg extent %d < 1 at site %d", d, i)
		}
		legs[i] = []int{d}
	}
	return legs, nil
}

func (p PerSiteMultiLeg) normalize(sites int) ([][]int, error) {
	if len(p) != sites {
		return nil, errors.Wrapf(tensor.ErrConfiguration,
			"leg spec lists %d sites, want %d", len(p), sites)
	}
	legs := make([][]int, sites)
	for i, ds := range p {
		for _, d := range ds {
			if d < 1 {
				return nil, errors.Wrapf(tensor.ErrConfiguration, "leg extent %d < 1 at site %d", d, i)
			}
		}
		legs[i] = append([]int{}, ds...)
	}
	return legs, nil
}

// Build constructs a chain of `sites` local tensors with the physical
// legs named by the spec, boundary bonds of extent 1 and interior bonds
// of extent bondDim. Each tensor's values come from the element
// factory, which must return a fresh tensor of the requested shape.
func Build(sites int, legs LegSpec, bondDim int, element func(tensor.Shape) *tensor.Dense) (*chain.Chain, error) {
	if sites < 2 {
		return nil, errors.Wrapf(tensor.ErrConfiguration, "cannot build chain with sites %d < 2", sites)
	}
	if bondDim < 1 {
		return nil, errors.Wrapf(tensor.ErrConfiguration, "bond dimension %d < 1", bondDim)
	}
	perSite, err := legs.normalize(sites)
	if err != nil {
		return nil, err
	}

	ltens := make([]*tensor.Dense, sites)
	for i := 0; i < sites; i++ {
		left, right := bondDim, bondDim
		if i == 0 {
			left = 1
		}
		if i == sites-1 {
			right = 1
		}
		shape := make(tensor.Shape, 0, len(perSite[i])+2)
		shape = append(shape, left)
		shape = append(shape, perSite[i]...)
		shape = append(shape, right)
		ltens[i] = element(shape)
	}
	return chain.New(ltens)
}
