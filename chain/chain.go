// Copyright 2026 the mpnum authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package chain

import (
	"math"

	"github.com/pkg/errors"

	"github.com/codeaudit/mpnum/tensor"
)

// Chain is an ordered sequence of local tensors. Site i holds a tensor
// of shape (bond_i, plegs..., bond_i+1); the two open boundaries have
// bond extent 1 and neighboring bonds agree.
type Chain struct {
	ltens []*tensor.Dense
}

// New builds a chain from an ordered list of local tensors. The list is
// not copied; the caller must not alias the tensors afterwards.
func New(ltens []*tensor.Dense) (*Chain, error) {
	if len(ltens) == 0 {
		return nil, errors.Wrap(tensor.ErrConfiguration, "chain: no local tensors")
	}
	for i, lt := range ltens {
		if lt.NDim() < 2 {
			return nil, errors.Wrapf(tensor.ErrShapeMismatch,
				"chain: local tensor %d has rank %d < 2", i, lt.NDim())
		}
	}
	if bl := ltens[0].Shape()[0]; bl != 1 {
		return nil, errors.Wrapf(tensor.ErrConfiguration, "chain: left boundary bond is %d, want 1", bl)
	}
	last := ltens[len(ltens)-1]
	if br := last.Shape()[last.NDim()-1]; br != 1 {
		return nil, errors.Wrapf(tensor.ErrConfiguration, "chain: right boundary bond is %d, want 1", br)
	}
	for i := 0; i+1 < len(ltens); i++ {
		l, r := ltens[i], ltens[i+1]
		if l.Shape()[l.NDim()-1] != r.Shape()[0] {
			return nil, errors.Wrapf(tensor.ErrShapeMismatch,
				"chain: bond between sites %d and %d disagrees (%d vs %d)",
				i, i+1, l.Shape()[l.NDim()-1], r.Shape()[0])
		}
	}
	return &Chain{ltens: ltens}, nil
}

// Sites returns the number of sites.
func (c *Chain) Sites() int {
	return len(c.ltens)
}

// Site returns the local tensor at site i.
func (c *Chain) Site(i int) *tensor.Dense {
	return c.ltens[i]
}

// SetSite replaces the local tensor at site i. The replacement must
// keep the neighboring bond extents intact.
func (c *Chain) SetSite(i int, lt *tensor.Dense) error {
	old := c.ltens[i]
	if lt.NDim() < 2 {
		return errors.Wrapf(tensor.ErrShapeMismatch, "chain: local tensor has rank %d < 2", lt.NDim())
	}
	if lt.Shape()[0] != old.Shape()[0] ||
		lt.Shape()[lt.NDim()-1] != old.Shape()[old.NDim()-1] {
		return errors.Wrapf(tensor.ErrShapeMismatch,
			"chain: site %d bonds (%d, %d) cannot change to (%d, %d)", i,
			old.Shape()[0], old.Shape()[old.NDim()-1],
			lt.Shape()[0], lt.Shape()[lt.NDim()-1])
	}
	c.ltens[i] = lt
	return nil
}

// BondDims returns the extents of the interior bonds, left to right.
func (c *Chain) BondDims() []int {
	dims := make([]int, len(c.ltens)-1)
	for i := 0; i+1 < len(c.ltens); i++ {
		s := c.ltens[i].Shape()
		dims[i] = s[len(s)-1]
	}
	return dims
}

// PhysDims returns the physical leg extents per site.
func (c *Chain) PhysDims() [][]int {
	dims := make([][]int, len(c.ltens))
	for i, lt := range c.ltens {
		s := lt.Shape()
		dims[i] = append([]int{}, s[1:len(s)-1]...)
	}
	return dims
}

// Clone creates a deep copy of the chain.
func (c *Chain) Clone() *Chain {
	ltens := make([]*tensor.Dense, len(c.ltens))
	for i, lt := range c.ltens {
		ltens[i] = lt.Clone()
	}
	return &Chain{ltens: ltens}
}

// Add returns the elementwise sum of two chains representing tensors of
// identical physical dimensions. Boundary sites are concatenated along
// their single open bond; interior sites combine block-diagonally on
// both bond axes, so the result's interior bonds are the sums of the
// operands' bonds.
func (c *Chain) Add(o *Chain) (*Chain, error) {
	if c.Sites() != o.Sites() {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"chain: cannot add %d sites to %d sites", o.Sites(), c.Sites())
	}
	n := c.Sites()
	ltens := make([]*tensor.Dense, n)
	for i := 0; i < n; i++ {
		summands := []*tensor.Dense{c.ltens[i], o.ltens[i]}
		var (
			lt  *tensor.Dense
			err error
		)
		switch {
		case n == 1:
			lt, err = tensor.Add(c.ltens[i], o.ltens[i])
		case i == 0:
			lt, err = tensor.BlockDiag(summands, []int{-1})
		case i == n-1:
			lt, err = tensor.BlockDiag(summands, []int{0})
		default:
			lt, err = tensor.BlockDiag(summands, []int{0, -1})
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "chain: adding site %d", i)
		}
		ltens[i] = lt
	}
	return New(ltens)
}

// Scale returns the chain multiplied by the scalar s. The factor is
// absorbed into the first local tensor.
func (c *Chain) Scale(s complex128) *Chain {
	out := c.Clone()
	out.ltens[0].ScaleInPlace(s)
	return out
}

// Div returns the chain divided by the scalar s.
func (c *Chain) Div(s complex128) *Chain {
	return c.Scale(1 / s)
}

// InnerProduct returns <a, b> = sum over all entries of conj(a)*b of
// the represented tensors, evaluated by transfer-matrix contraction in
// O(sites) bond-sized steps.
func InnerProduct(a, b *Chain) (complex128, error) {
	if a.Sites() != b.Sites() {
		return 0, errors.Wrapf(tensor.ErrShapeMismatch,
			"chain: inner product of %d sites with %d sites", a.Sites(), b.Sites())
	}
	f, err := tensor.FromSlice([]complex128{1}, tensor.Shape{1, 1})
	if err != nil {
		return 0, err
	}
	for i := 0; i < a.Sites(); i++ {
		as, bs := a.ltens[i], b.ltens[i]
		if as.NDim() != bs.NDim() {
			return 0, errors.Wrapf(tensor.ErrShapeMismatch,
				"chain: site %d ranks differ (%d vs %d)", i, as.NDim(), bs.NDim())
		}
		// f is (bondA, bondB); absorb b's site, then close with conj(a).
		fb, err := tensor.Contract(f, bs, [][2]int{{1, 0}})
		if err != nil {
			return 0, err
		}
		pairs := make([][2]int, as.NDim()-1)
		pairs[0] = [2]int{0, 0}
		for p := 1; p < as.NDim()-1; p++ {
			pairs[p] = [2]int{p, p}
		}
		f, err = tensor.Contract(as.Conj(), fb, pairs)
		if err != nil {
			return 0, err
		}
	}
	return f.At(0, 0), nil
}

// Norm returns the Frobenius norm of the represented tensor. The
// receiver is not mutated.
func (c *Chain) Norm() (float64, error) {
	ip, err := InnerProduct(c, c)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(math.Max(real(ip), 0)), nil
}

// Trace returns the trace of an operator chain: every site must carry
// exactly two physical legs of equal extent.
func (c *Chain) Trace() (complex128, error) {
	f, err := tensor.FromSlice([]complex128{1}, tensor.Shape{1, 1})
	if err != nil {
		return 0, err
	}
	for i, lt := range c.ltens {
		s := lt.Shape()
		if lt.NDim() != 4 || s[1] != s[2] {
			return 0, errors.Wrapf(tensor.ErrShapeMismatch,
				"chain: site %d with shape %v is not an operator site", i, s)
		}
		m, err := tensor.Contract(lt, tensor.Eye(s[1]), [][2]int{{1, 0}, {2, 1}})
		if err != nil {
			return 0, err
		}
		f, err = tensor.MatDot(f, m)
		if err != nil {
			return 0, err
		}
	}
	return f.At(0, 0), nil
}

// ToDense contracts all bonds and returns the represented tensor in
// local (site-major) form, with the two boundary axes removed.
func (c *Chain) ToDense() (*tensor.Dense, error) {
	acc := c.ltens[0]
	for _, lt := range c.ltens[1:] {
		var err error
		acc, err = tensor.Contract(acc, lt, [][2]int{{acc.NDim() - 1, 0}})
		if err != nil {
			return nil, err
		}
	}
	inner := acc.Shape()[1 : acc.NDim()-1]
	return acc.Reshape(inner...)
}

// ToDenseGlobal contracts all bonds and returns the represented tensor
// in global (leg-major) form. All sites must carry the same number of
// physical legs.
func (c *Chain) ToDenseGlobal() (*tensor.Dense, error) {
	local, err := c.ToDense()
	if err != nil {
		return nil, err
	}
	return tensor.ToGlobal(local, c.Sites(), 0, 0)
}
