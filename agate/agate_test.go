package agate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsKnown(t *testing.T) {
	require.True(t, IsKnown(AAdd))
	require.True(t, IsKnown("ABitAnd"))
	require.False(t, IsKnown("aadd"))
	require.False(t, IsKnown("XOR"))
	require.False(t, IsKnown(""))
}

func TestList(t *testing.T) {
	l := List()
	require.Len(t, l, 20)
	require.Equal(t, AAdd, l[0])
	for _, op := range l {
		require.True(t, IsKnown(op))
	}
}
