package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache stores generated responses in memory and on disk. The in-memory
// tier serves repeated lookups within one process (watch mode); the file
// tier persists across runs until TTL expires.
type Cache struct {
	Dir string
	TTL time.Duration

	memory *lru.Cache[string, entry]
}

type entry struct {
	data    []byte
	written time.Time
}

// DefaultTTL is the default cache time-to-live
const DefaultTTL = 24 * time.Hour

// memoryEntries bounds the in-memory tier
const memoryEntries = 256

// New creates a new cache under ~/.cache/<appName>
func New(appName string, ttl time.Duration) (*Cache, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewAt(filepath.Join(homeDir, ".cache", appName), ttl)
}

// NewAt creates a new cache in dir
func NewAt(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	if ttl == 0 {
		ttl = DefaultTTL
	}

	memory, err := lru.New[string, entry](memoryEntries)
	if err != nil {
		return nil, err
	}

	return &Cache{
		Dir:    dir,
		TTL:    ttl,
		memory: memory,
	}, nil
}

// Key derives a cache key from its parts
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// keyToFilename converts a key to a safe filename
func (c *Cache) keyToFilename(key string) string {
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:16]) + ".json"
}

// Path returns the full path to the cache file for a key
func (c *Cache) Path(key string) string {
	return filepath.Join(c.Dir, c.keyToFilename(key))
}

// Get retrieves data from cache if it exists and is not expired
func (c *Cache) Get(key string) ([]byte, bool) {
	if e, ok := c.memory.Get(key); ok {
		if time.Since(e.written) <= c.TTL {
			return e.data, true
		}
		c.memory.Remove(key)
	}

	path := c.Path(key)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}

	// Check if cache is expired
	if time.Since(info.ModTime()) > c.TTL {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	c.memory.Add(key, entry{data: data, written: info.ModTime()})
	return data, true
}

// Set stores data in the cache
func (c *Cache) Set(key string, data []byte) error {
	c.memory.Add(key, entry{data: data, written: time.Now()})
	return os.WriteFile(c.Path(key), data, 0644)
}

// Clear removes all cached entries
func (c *Cache) Clear() error {
	c.memory.Purge()

	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			os.Remove(filepath.Join(c.Dir, entry.Name()))
		}
	}
	return nil
}
