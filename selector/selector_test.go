package selector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesslabs/tess/selector"
)

func TestFromIndicesSetsExactlyNamedParties(t *testing.T) {
	sel, err := selector.FromIndices(5, []int{1, 3, 5})
	require.NoError(t, err)

	require.Equal(t, 3, sel.Count())
	require.True(t, sel.Has(1))
	require.False(t, sel.Has(2))
	require.True(t, sel.Has(3))
	require.False(t, sel.Has(4))
	require.True(t, sel.Has(5))
	require.Equal(t, []int{1, 3, 5}, sel.Indices())
}

func TestFromIndicesRejectsOutOfRange(t *testing.T) {
	_, err := selector.FromIndices(5, []int{0})
	require.Error(t, err)
	_, err = selector.FromIndices(5, []int{6})
	require.Error(t, err)
}

func TestHasOutOfRangeIsFalse(t *testing.T) {
	sel := selector.New(3)
	require.False(t, sel.Has(0))
	require.False(t, sel.Has(4))
}

func TestSetTogglesPresence(t *testing.T) {
	sel := selector.New(3)
	require.NoError(t, sel.Set(2, true))
	require.True(t, sel.Has(2))
	require.NoError(t, sel.Set(2, false))
	require.False(t, sel.Has(2))
}
