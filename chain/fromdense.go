package chain

import (
	"github.com/pkg/errors"

	"github.com/codeaudit/mpnum/tensor"
)

// FromDense wraps a dense tensor in local (site-major) form, with plegs
// physical legs per site, as an exact chain. No factorization is
// performed: every site but the last is a reshaped identity routing the
// accumulated indices into the bond, and the last site carries the
// data. Bond extents therefore grow with the product of the leg extents
// to the left; intended for short window terms, not whole systems.
func FromDense(t *tensor.Dense, plegs int) (*Chain, error) {
	if plegs < 1 {
		return nil, errors.Wrapf(tensor.ErrConfiguration, "chain: plegs %d < 1", plegs)
	}
	if t.NDim()%plegs != 0 {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"chain: ndim %d is not a multiple of %d legs per site", t.NDim(), plegs)
	}
	sites := t.NDim() / plegs
	if sites < 1 {
		return nil, errors.Wrapf(tensor.ErrConfiguration, "chain: no sites in shape %v", t.Shape())
	}

	ltens := make([]*tensor.Dense, sites)
	bond := 1
	for k := 0; k < sites-1; k++ {
		legs := t.Shape()[k*plegs : (k+1)*plegs]
		p := legs.NumElements()
		shape := append(append(tensor.Shape{bond}, legs...), bond*p)
		lt, err := tensor.Eye(bond * p).Reshape(shape...)
		if err != nil {
			return nil, err
		}
		ltens[k] = lt
		bond *= p
	}

	legs := t.Shape()[(sites-1)*plegs:]
	shape := append(append(tensor.Shape{bond}, legs...), 1)
	last, err := t.Clone().Reshape(shape...)
	if err != nil {
		return nil, err
	}
	ltens[sites-1] = last

	return New(ltens)
}
