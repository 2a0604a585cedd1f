package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeaudit/mpnum/tensor"
)

func TestBuildUniform(t *testing.T) {
	c, err := RandomChain(NewSource(0), 4, Uniform(2), 10)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 10, 10}, c.BondDims())
	assert.Equal(t, [][]int{{2}, {2}, {2}, {2}}, c.PhysDims())
	assert.Equal(t, tensor.Shape{1, 2, 10}, c.Site(0).Shape())
	assert.Equal(t, tensor.Shape{10, 2, 10}, c.Site(1).Shape())
	assert.Equal(t, tensor.Shape{10, 2, 1}, c.Site(3).Shape())
}

func TestBuildPerSite(t *testing.T) {
	c, err := RandomChain(NewSource(0), 4, PerSite{1, 2, 3, 4}, 5)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {2}, {3}, {4}}, c.PhysDims())
}

func TestBuildPerSiteMultiLeg(t *testing.T) {
	c, err := RandomChain(NewSource(0), 4, PerSiteMultiLeg{{1}, {2, 3}, {4, 5}, {1}}, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 10, 10}, c.BondDims())
	assert.Equal(t, [][]int{{1}, {2, 3}, {4, 5}, {1}}, c.PhysDims())
	assert.Equal(t, tensor.Shape{10, 2, 3, 10}, c.Site(1).Shape())
}

func TestBuildErrors(t *testing.T) {
	_, err := RandomChain(NewSource(0), 1, Uniform(2), 10)
	assert.True(t, errors.Is(err, tensor.ErrConfiguration))

	_, err = RandomChain(NewSource(0), 4, PerSite{2, 2}, 10)
	assert.True(t, errors.Is(err, tensor.ErrConfiguration))

	_, err = RandomChain(NewSource(0), 4, PerSiteMultiLeg{{2}, {2}}, 10)
	assert.True(t, errors.Is(err, tensor.ErrConfiguration))

	_, err = RandomChain(NewSource(0), 4, Uniform(0), 10)
	assert.True(t, errors.Is(err, tensor.ErrConfiguration))

	_, err = RandomChain(NewSource(0), 4, Uniform(2), 0)
	assert.True(t, errors.Is(err, tensor.ErrConfiguration))
}

func TestZeroChain(t *testing.T) {
	c, err := ZeroChain(3, Uniform(2), 4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4}, c.BondDims())
	for i := 0; i < c.Sites(); i++ {
		for _, v := range c.Site(i).Data() {
			assert.Equal(t, 0+0i, v)
		}
	}
}
