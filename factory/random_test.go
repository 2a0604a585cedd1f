package factory

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/codeaudit/mpnum/tensor"
)

// hermitianEigenvalues returns the eigenvalues of a Hermitian matrix,
// each reported twice, via the real symmetric embedding
// [[Re(H), -Im(H)], [Im(H), Re(H)]].
func hermitianEigenvalues(t *testing.T, m *tensor.Dense) []float64 {
	t.Helper()
	require.Equal(t, 2, m.NDim())
	n := m.Shape()[0]
	require.Equal(t, n, m.Shape()[1])

	data := make([]float64, 4*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			data[i*2*n+j] = real(v)
			data[i*2*n+n+j] = -imag(v)
			data[(n+i)*2*n+j] = imag(v)
			data[(n+i)*2*n+n+j] = real(v)
		}
	}
	var es mat.EigenSym
	require.True(t, es.Factorize(mat.NewSymDense(2*n, data), false))
	return es.Values(nil)
}

// asMatrix reshapes an operator in global form to its square matrix.
func asMatrix(t *testing.T, op *tensor.Dense, dim int) *tensor.Dense {
	t.Helper()
	m, err := op.Reshape(dim, dim)
	require.NoError(t, err)
	return m
}

func assertHermitian(t *testing.T, m *tensor.Dense, tol float64) {
	t.Helper()
	n := m.Shape()[0]
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDelta(t, 0, cmplx.Abs(m.At(i, j)-cmplx.Conj(m.At(j, i))), tol)
		}
	}
}

func TestGaussianComplexDeterminism(t *testing.T) {
	a := GaussianComplex(NewSource(42), tensor.Shape{3, 3})
	b := GaussianComplex(NewSource(42), tensor.Shape{3, 3})
	assert.Equal(t, a.Data(), b.Data())

	c := GaussianComplex(NewSource(43), tensor.Shape{3, 3})
	assert.NotEqual(t, a.Data(), c.Data())
}

func TestRandomVector(t *testing.T) {
	for seed := uint64(0); seed < 5; seed++ {
		psi, err := RandomVector(NewSource(seed), 5, 2)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{2, 2, 2, 2, 2}, psi.Shape())

		ip, err := tensor.Vdot(psi, psi)
		require.NoError(t, err)
		assert.InDelta(t, 0, cmplx.Abs(ip-1), 1e-6, "seed=%d", seed)
	}
}

func TestRandomOperator(t *testing.T) {
	op, err := RandomOperator(NewSource(0), 3, 2, false, false)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2, 2, 2, 2, 2}, op.Shape())

	herm, err := RandomOperator(NewSource(1), 2, 2, true, false)
	require.NoError(t, err)
	assertHermitian(t, asMatrix(t, herm, 4), 1e-12)

	normed, err := RandomOperator(NewSource(2), 2, 3, true, true)
	require.NoError(t, err)
	assert.InDelta(t, 1, normed.Norm(), 1e-12)
}

func TestRandomState(t *testing.T) {
	for _, sites := range []int{1, 2, 3} {
		for seed := uint64(0); seed < 3; seed++ {
			rho, err := RandomState(NewSource(seed), sites, 2)
			require.NoError(t, err)

			dim := 1 << sites
			m := asMatrix(t, rho, dim)
			assertHermitian(t, m, 1e-12)

			tr, err := m.Trace()
			require.NoError(t, err)
			assert.InDelta(t, 0, cmplx.Abs(tr-1), 1e-6, "sites=%d seed=%d", sites, seed)

			for _, ev := range hermitianEigenvalues(t, m) {
				assert.GreaterOrEqual(t, ev, -1e-9, "sites=%d seed=%d", sites, seed)
			}
		}
	}
}

func TestHaarUnitary(t *testing.T) {
	for _, dim := range []int{2, 3, 5, 8} {
		u, err := HaarUnitary(NewSource(uint64(dim)), dim)
		require.NoError(t, err)

		uAdj, err := u.Transpose()
		require.NoError(t, err)
		prod, err := tensor.MatDot(uAdj.Conj(), u)
		require.NoError(t, err)
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				want := 0 + 0i
				if i == j {
					want = 1
				}
				assert.InDelta(t, 0, cmplx.Abs(prod.At(i, j)-want), 1e-9, "dim=%d", dim)
			}
		}
	}
}

func TestRandomPrimitiveErrors(t *testing.T) {
	rng := NewSource(0)
	_, err := RandomVector(rng, 0, 2)
	assert.True(t, errors.Is(err, tensor.ErrConfiguration))
	_, err = RandomOperator(rng, 2, 0, false, false)
	assert.True(t, errors.Is(err, tensor.ErrConfiguration))
	_, err = RandomState(rng, 0, 2)
	assert.True(t, errors.Is(err, tensor.ErrConfiguration))
	_, err = HaarUnitary(rng, 0)
	assert.True(t, errors.Is(err, tensor.ErrConfiguration))
}

func TestPauliAlgebra(t *testing.T) {
	for _, s := range []*tensor.Dense{SX, SY, SZ} {
		sq, err := tensor.MatDot(s, s)
		require.NoError(t, err)
		assert.Equal(t, SI.Data(), sq.Data())
	}

	// SP and SM are the ladder combinations 0.5*(SX ± i*SY).
	up, err := tensor.Add(SX, SY.Scale(1i))
	require.NoError(t, err)
	assert.Equal(t, SP.Data(), up.Scale(0.5).Data())
	down, err := tensor.Add(SX, SY.Scale(-1i))
	require.NoError(t, err)
	assert.Equal(t, SM.Data(), down.Scale(0.5).Data())
}
