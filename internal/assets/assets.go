// Package assets handles asset lookup across search paths and caching.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/orbitscene/internal/logger"
)

// ErrNotFound is returned when no search path holds the requested file.
var ErrNotFound = errors.New("asset not found")

// Loader reads an asset by slash-separated path.
type Loader interface {
	Load(name string) ([]byte, error)
}

// Manager resolves assets against a list of file systems.
type Manager struct {
	layers []layer
	cache  *Cache
	mu     sync.RWMutex
}

type layer struct {
	name string
	fsys fs.FS
}

var _ Loader = (*Manager)(nil)

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// AddDir adds a directory on disk as a search path.
// Paths are searched in reverse order (last added = highest priority).
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding asset dir %s: not a directory", dir)
	}
	m.AddFS(dir, os.DirFS(dir))
	return nil
}

// AddFS adds an arbitrary file system as a search path.
func (m *Manager) AddFS(name string, fsys fs.FS) {
	m.mu.Lock()
	m.layers = append(m.layers, layer{name: name, fsys: fsys})
	m.mu.Unlock()

	logger.Debug("asset path added", zap.String("path", name))
}

// Load loads a file from the search paths.
func (m *Manager) Load(name string) ([]byte, error) {
	name = path.Clean(name)

	// Check cache first
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.layers) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.layers[i].fsys, name)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s from %s: %w", name, m.layers[i].name, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Close drops all search paths and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.layers = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

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
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
