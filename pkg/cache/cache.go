// Package cache persists per-file lint results between runs so unchanged
// files are not re-analyzed. Entries are keyed by file path and validated
// against a content hash; the store serializes with msgpack.
package cache

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/l3aro/go-jsx-lint/pkg/lint"
)

// ErrKeyNotFound is returned when a file has no cached entry.
var ErrKeyNotFound = errors.New("key not found")

// Entry is one cached result: the content hash the findings were computed
// from and the findings themselves.
type Entry struct {
	Hash     [sha256.Size]byte
	Findings []lint.Finding
}

// ResultCache is a concurrency-safe findings store. The zero value is not
// usable; create one with New.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New creates an empty ResultCache.
func New() *ResultCache {
	return &ResultCache{entries: make(map[string]Entry)}
}

// HashContent returns the cache hash for file content.
func HashContent(content []byte) [sha256.Size]byte {
	return sha256.Sum256(content)
}

// Get returns the cached findings for path, but only when hash still matches
// the content the entry was computed from. A stale or missing entry returns
// ErrKeyNotFound.
func (c *ResultCache) Get(path string, hash [sha256.Size]byte) ([]lint.Finding, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[path]
	if !ok || entry.Hash != hash {
		return nil, ErrKeyNotFound
	}
	return entry.Findings, nil
}

// Put stores findings for path at the given content hash, replacing any
// previous entry.
func (c *ResultCache) Put(path string, hash [sha256.Size]byte, findings []lint.Finding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = Entry{Hash: hash, Findings: findings}
}

// Len returns the number of cached files.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Save persists the cache to w using msgpack.
func (c *ResultCache) Save(w io.Writer) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := msgpack.NewEncoder(w).Encode(c.entries); err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}
	return nil
}

// Load restores the cache from r, replacing the current contents.
func (c *ResultCache) Load(r io.Reader) error {
	entries := make(map[string]Entry)
	if err := msgpack.NewDecoder(r).Decode(&entries); err != nil {
		return fmt.Errorf("decoding cache: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
	return nil
}

// SaveFile writes the cache to path, creating parent directories as needed.
func (c *ResultCache) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating cache file: %w", err)
	}
	defer f.Close()
	return c.Save(f)
}

// LoadFile reads the cache from path. A missing file leaves the cache empty
// and is not an error.
func (c *ResultCache) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening cache file: %w", err)
	}
	defer f.Close()
	return c.Load(f)
}
