package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerosAndAt(t *testing.T) {
	d := Zeros(Shape{2, 3})
	assert.Equal(t, 6, d.NumElements())
	assert.Equal(t, 2, d.NDim())

	d.Set(3+4i, 1, 2)
	assert.Equal(t, 3+4i, d.At(1, 2))
	assert.Equal(t, 0+0i, d.At(0, 0))
}

func TestZerosPanicsOnInvalidShape(t *testing.T) {
	assert.Panics(t, func() { Zeros(Shape{2, 0}) })
}

func TestAtPanicsOnBadIndex(t *testing.T) {
	d := Zeros(Shape{2, 2})
	assert.Panics(t, func() { d.At(0) })
	assert.Panics(t, func() { d.At(2, 0) })
}

func TestFromSlice(t *testing.T) {
	d, err := FromSlice([]complex128{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6+0i, d.At(1, 2))

	_, err = FromSlice([]complex128{1, 2, 3}, Shape{2, 3})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestEye(t *testing.T) {
	d := Eye(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				assert.Equal(t, 1+0i, d.At(i, j))
			} else {
				assert.Equal(t, 0+0i, d.At(i, j))
			}
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := Zeros(Shape{2, 2})
	c := d.Clone()
	c.Set(1, 0, 0)
	assert.Equal(t, 0+0i, d.At(0, 0))
}

func TestReshape(t *testing.T) {
	d, err := FromSlice([]complex128{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	r, err := d.Reshape(3, -1)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, r.Shape())
	assert.Equal(t, 4+0i, r.At(1, 1)) // Row-major data is shared

	_, err = d.Reshape(4, -1)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = d.Reshape(-1, -1)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestTranspose(t *testing.T) {
	d, err := FromSlice([]complex128{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	tr, err := d.Transpose()
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, tr.Shape())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, d.At(i, j), tr.At(j, i))
		}
	}

	_, err = d.Transpose(0, 0)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = d.Transpose(0, 2)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestTransposeRoundTrip(t *testing.T) {
	d := Zeros(Shape{2, 3, 4})
	for i := range d.Data() {
		d.Data()[i] = complex(float64(i), -float64(i))
	}
	p, err := d.Transpose(2, 0, 1)
	require.NoError(t, err)
	back, err := p.Transpose(1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, d.Data(), back.Data())
}
