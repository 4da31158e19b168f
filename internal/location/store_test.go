package location

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	store := NewStore()

	_, ok := store.Get(1)
	require.False(t, ok)

	store.Set(1, "Dubai")
	store.Set(2, "Sharjah")

	loc, ok := store.Get(1)
	require.True(t, ok)
	require.Equal(t, "Dubai", loc)

	loc, _ = store.Get(2)
	require.Equal(t, "Sharjah", loc)
}

func TestIsKnown(t *testing.T) {
	require.True(t, IsKnown("Dubai"))
	require.True(t, IsKnown("Umm Al Quwain"))
	require.False(t, IsKnown("dubai"))
	require.False(t, IsKnown("London"))
}
