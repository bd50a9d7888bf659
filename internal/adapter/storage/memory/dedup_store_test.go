package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupStore_FirstSeen(t *testing.T) {
	store := NewDedupStore()
	ctx := context.Background()

	first, err := store.FirstSeen(ctx, "log:sig-1:10", time.Minute)
	require.NoError(t, err)
	assert.True(t, first)

	first, err = store.FirstSeen(ctx, "log:sig-1:10", time.Minute)
	require.NoError(t, err)
	assert.False(t, first)

	first, err = store.FirstSeen(ctx, "log:sig-1:11", time.Minute)
	require.NoError(t, err)
	assert.True(t, first, "different slot is a different delivery")
}

func TestDedupStore_FirstSeen_Expiry(t *testing.T) {
	store := NewDedupStore()
	ctx := context.Background()

	first, err := store.FirstSeen(ctx, "log:sig-2:20", time.Millisecond)
	require.NoError(t, err)
	assert.True(t, first)

	time.Sleep(5 * time.Millisecond)

	first, err = store.FirstSeen(ctx, "log:sig-2:20", time.Millisecond)
	require.NoError(t, err)
	assert.True(t, first, "expired key should be new again")
}
