package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheMemoryOnly(t *testing.T) {
	c, err := New("", 8)
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get("posts", "missing", time.Minute)
	assert.False(t, ok)

	require.NoError(t, c.Set("posts", "k", []byte("payload")))
	value, ok := c.Get("posts", "k", time.Minute)
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), value)
}

func TestCacheNamespaces(t *testing.T) {
	c, err := New("", 8)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Set("posts", "k", []byte("a")))
	require.NoError(t, c.Set("comments", "k", []byte("b")))

	value, ok := c.Get("posts", "k", time.Minute)
	require.True(t, ok)
	assert.Equal(t, []byte("a"), value)
	value, ok = c.Get("comments", "k", time.Minute)
	require.True(t, ok)
	assert.Equal(t, []byte("b"), value)
}

func TestCacheTTLExpiry(t *testing.T) {
	c, err := New("", 8)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Set("posts", "k", []byte("stale")))
	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get("posts", "k", 10*time.Millisecond)
	assert.False(t, ok)

	// a longer ttl still sees the same entry... unless the short lookup
	// already evicted it, which is the contract
	_, ok = c.Get("posts", "k", time.Minute)
	assert.False(t, ok)
}

func TestCacheDiskLevel(t *testing.T) {
	dir := t.TempDir()
	c, err := New(dir, 8)
	require.NoError(t, err)

	require.NoError(t, c.Set("posts", "k", []byte("durable")))
	require.NoError(t, c.Close())

	// a fresh cache starts with cold memory and reads through to disk
	c, err = New(dir, 8)
	require.NoError(t, err)
	defer c.Close()

	value, ok := c.Get("posts", "k", time.Minute)
	require.True(t, ok)
	assert.Equal(t, []byte("durable"), value)

	// second read is served from the repopulated memory level
	value, ok = c.Get("posts", "k", time.Minute)
	require.True(t, ok)
	assert.Equal(t, []byte("durable"), value)
}

func TestCacheDiskExpiry(t *testing.T) {
	dir := t.TempDir()
	c, err := New(dir, 8)
	require.NoError(t, err)
	require.NoError(t, c.Set("posts", "k", []byte("old")))
	require.NoError(t, c.Close())

	c, err = New(dir, 8)
	require.NoError(t, err)
	defer c.Close()

	time.Sleep(30 * time.Millisecond)
	_, ok := c.Get("posts", "k", 10*time.Millisecond)
	assert.False(t, ok)
}

func TestCacheEviction(t *testing.T) {
	c, err := New("", 2)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Set("posts", "a", []byte("1")))
	require.NoError(t, c.Set("posts", "b", []byte("2")))
	require.NoError(t, c.Set("posts", "c", []byte("3")))

	// oldest entry falls out once capacity is exceeded
	_, ok := c.Get("posts", "a", time.Minute)
	assert.False(t, ok)
	_, ok = c.Get("posts", "c", time.Minute)
	assert.True(t, ok)
}
