package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityCache_GetSet(t *testing.T) {
	c := NewAvailabilityCache(8, time.Minute)

	_, ok := c.Get("flight-1")
	assert.False(t, ok, "empty cache misses")

	c.Set("flight-1", 42)
	got, ok := c.Get("flight-1")
	require.True(t, ok)
	assert.Equal(t, 42, got)

	c.Set("flight-1", 40)
	got, _ = c.Get("flight-1")
	assert.Equal(t, 40, got, "set overwrites")
}

func TestAvailabilityCache_Invalidate(t *testing.T) {
	c := NewAvailabilityCache(8, time.Minute)

	c.Set("flight-1", 10)
	c.Invalidate("flight-1")
	_, ok := c.Get("flight-1")
	assert.False(t, ok)

	// Invalidating an absent key is a no-op.
	c.Invalidate("flight-unknown")
}

func TestAvailabilityCache_TTLExpiry(t *testing.T) {
	c := NewAvailabilityCache(8, 20*time.Millisecond)

	c.Set("flight-1", 10)
	_, ok := c.Get("flight-1")
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	_, ok = c.Get("flight-1")
	assert.False(t, ok, "entry expires after TTL")
}

func TestAvailabilityCache_SizeBound(t *testing.T) {
	c := NewAvailabilityCache(2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok, "least recently used entry is evicted")
}

func TestNewAvailabilityCache_Defaults(t *testing.T) {
	c := NewAvailabilityCache(0, 0)
	c.Set("flight-1", 5)
	got, ok := c.Get("flight-1")
	require.True(t, ok)
	assert.Equal(t, 5, got)
}
