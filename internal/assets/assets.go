// Package assets loads model and shader files from disk, caches their
// bytes and reports when they change.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when no search root holds the requested file.
var ErrNotFound = errors.New("asset not found")

// Manager loads files relative to a list of search roots.
type Manager struct {
	roots []string
	cache *Cache

	mu      sync.Mutex
	watcher *Watcher
}

// NewManager creates a manager searching roots in order. With no roots the
// working directory is used.
func NewManager(roots ...string) *Manager {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	return &Manager{
		roots: roots,
		cache: NewCache(),
	}
}

// Resolve returns the absolute path of the first root holding name.
// Absolute names are returned as-is when they exist.
func (m *Manager) Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return name, nil
	}
	for _, root := range m.roots {
		p, err := filepath.Abs(filepath.Join(root, name))
		if err != nil {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

// Load returns the contents of name, from the cache when possible.
func (m *Manager) Load(name string) ([]byte, error) {
	path, err := m.Resolve(name)
	if err != nil {
		return nil, err
	}
	if data, ok := m.cache.Get(path); ok {
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m.cache.Set(path, data)
	return data, nil
}

// Invalidate drops path from the cache so the next Load rereads it.
func (m *Manager) Invalidate(path string) {
	m.cache.Delete(filepath.Clean(path))
}

// Cache returns the manager's cache.
func (m *Manager) Cache() *Cache {
	return m.cache
}

// Watch starts reporting changes to the named files. Changed files are
// evicted from the cache before they are reported on Changes.
func (m *Manager) Watch(names ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watcher == nil {
		w, err := NewWatcher(m.Invalidate)
		if err != nil {
			return err
		}
		m.watcher = w
	}
	for _, name := range names {
		path, err := m.Resolve(name)
		if err != nil {
			return err
		}
		if err := m.watcher.Add(path); err != nil {
			return err
		}
	}
	return nil
}

// Changes delivers the paths of watched files that changed on disk. It is
// nil until Watch is called.
func (m *Manager) Changes() <-chan string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Changes()
}

// Close stops watching and clears the cache.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Delete removes one item.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Len returns the number of cached items.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
