package chain_test

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeaudit/mpnum/chain"
	"github.com/codeaudit/mpnum/factory"
	"github.com/codeaudit/mpnum/tensor"
)

func TestFromDenseRoundTrip(t *testing.T) {
	rng := factory.NewSource(10)
	local := factory.GaussianComplex(rng, tensor.Shape{2, 3, 2, 4})

	c, err := chain.FromDense(local, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Sites())

	back, err := c.ToDense()
	require.NoError(t, err)
	require.Equal(t, local.Shape(), back.Shape())
	assert.Empty(t, cmp.Diff(local.Data(), back.Data(), approx))
}

func TestFromDenseOperator(t *testing.T) {
	rng := factory.NewSource(11)
	local := factory.GaussianComplex(rng, tensor.Shape{2, 2, 2, 2})

	c, err := chain.FromDense(local, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Sites())
	assert.Equal(t, [][]int{{2, 2}, {2, 2}}, c.PhysDims())

	back, err := c.ToDense()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(local.Data(), back.Data(), approx))

	_, err = chain.FromDense(local, 3)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
}

func TestFromPure(t *testing.T) {
	rng := factory.NewSource(12)
	psi, err := factory.RandomStateChain(rng, 3, 2, 2)
	require.NoError(t, err)

	rho, err := chain.FromPure(psi)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4}, rho.BondDims())

	// The dense density operator is the outer product |psi><psi|.
	psiD, err := psi.ToDense()
	require.NoError(t, err)
	vec, err := psiD.Reshape(8)
	require.NoError(t, err)

	rhoD, err := rho.ToDenseGlobal()
	require.NoError(t, err)
	rhoM, err := rhoD.Reshape(8, 8)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			want := vec.At(i) * cmplx.Conj(vec.At(j))
			assert.InDelta(t, 0, cmplx.Abs(rhoM.At(i, j)-want), 1e-9)
		}
	}

	// Operator chains are rejected.
	op, err := factory.RandomOperatorChain(rng, 3, 2, 2, false, false)
	require.NoError(t, err)
	_, err = chain.FromPure(op)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
}

func TestLocalSum(t *testing.T) {
	// Two SZ⊗SZ terms on a 3-site chain: H = SZ SZ I + I SZ SZ.
	zz, err := tensor.Kron(factory.SZ, factory.SZ)
	require.NoError(t, err)
	global, err := zz.Reshape(2, 2, 2, 2)
	require.NoError(t, err)
	local, err := tensor.ToLocal(global, 2)
	require.NoError(t, err)

	term, err := chain.FromDense(local, 2)
	require.NoError(t, err)
	sum, err := chain.LocalSum([]*chain.Chain{term, term.Clone()})
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Sites())

	sumD, err := sum.ToDenseGlobal()
	require.NoError(t, err)
	sumM, err := sumD.Reshape(8, 8)
	require.NoError(t, err)

	left, err := tensor.MKron(factory.SZ, factory.SZ, factory.SI)
	require.NoError(t, err)
	right, err := tensor.MKron(factory.SI, factory.SZ, factory.SZ)
	require.NoError(t, err)
	want, err := tensor.Add(left, right)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(want.Data(), sumM.Data(), approx))
}

func TestLocalSumErrors(t *testing.T) {
	_, err := chain.LocalSum(nil)
	assert.True(t, errors.Is(err, tensor.ErrConfiguration))

	rng := factory.NewSource(13)
	mps, err := factory.RandomStateChain(rng, 2, 2, 1)
	require.NoError(t, err)
	_, err = chain.LocalSum([]*chain.Chain{mps})
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
}
