package cache

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c, err := NewAt(t.TempDir(), time.Hour)
	require.NoError(t, err)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	require.NoError(t, c.Set("k", []byte(`{"summary":"ok"}`)))
	data, ok := c.Get("k")
	require.True(t, ok)
	assert.JSONEq(t, `{"summary":"ok"}`, string(data))
}

func TestDiskTierSurvivesNewCache(t *testing.T) {
	dir := t.TempDir()
	first, err := NewAt(dir, time.Hour)
	require.NoError(t, err)
	require.NoError(t, first.Set("k", []byte("v")))

	second, err := NewAt(dir, time.Hour)
	require.NoError(t, err)
	data, ok := second.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", string(data))
}

func TestExpiredEntries(t *testing.T) {
	dir := t.TempDir()
	c, err := NewAt(dir, time.Minute)
	require.NoError(t, err)
	require.NoError(t, c.Set("k", []byte("v")))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(c.Path("k"), old, old))

	fresh, err := NewAt(dir, time.Minute)
	require.NoError(t, err)
	_, ok := fresh.Get("k")
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	c, err := NewAt(dir, time.Hour)
	require.NoError(t, err)
	require.NoError(t, c.Set("a", []byte("1")))
	require.NoError(t, c.Set("b", []byte("2")))

	require.NoError(t, c.Clear())

	_, ok := c.Get("a")
	assert.False(t, ok)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key("model", "payload"), Key("model", "payload"))
	assert.NotEqual(t, Key("model", "payload"), Key("modelp", "ayload"))
	assert.Len(t, Key("x"), 64)
}

func TestDefaultTTL(t *testing.T) {
	c, err := NewAt(t.TempDir(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTTL, c.TTL)
}
