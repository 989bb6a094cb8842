package assets

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPriority(t *testing.T) {
	m := NewManager()
	m.AddFS("base", fstest.MapFS{
		"textures/a.dds": {Data: []byte("base-a")},
		"textures/b.dds": {Data: []byte("base-b")},
	})
	m.AddFS("mod", fstest.MapFS{
		"textures/a.dds": {Data: []byte("mod-a")},
	})

	data, err := m.Load("textures/a.dds")
	require.NoError(t, err)
	assert.Equal(t, "mod-a", string(data))

	data, err = m.Load("textures/b.dds")
	require.NoError(t, err)
	assert.Equal(t, "base-b", string(data))
}

func TestLoadNotFound(t *testing.T) {
	m := NewManager()
	m.AddFS("base", fstest.MapFS{})

	_, err := m.Load("missing.dds")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadCaches(t *testing.T) {
	m := NewManager()
	m.AddFS("base", fstest.MapFS{"x": {Data: []byte("1")}})

	_, err := m.Load("x")
	require.NoError(t, err)
	_, err = m.Load("./x")
	require.NoError(t, err)

	hits, misses := m.cache.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}

func TestAddDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "textures"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "textures", "wood.dds"), []byte("wood"), 0644))

	m := NewManager()
	require.NoError(t, m.AddDir(dir))

	data, err := m.Load("textures/wood.dds")
	require.NoError(t, err)
	assert.Equal(t, "wood", string(data))

	assert.Error(t, m.AddDir(filepath.Join(dir, "nope")))
	assert.Error(t, m.AddDir(filepath.Join(dir, "textures", "wood.dds")))
}

func TestClose(t *testing.T) {
	m := NewManager()
	m.AddFS("base", fstest.MapFS{"x": {Data: []byte("1")}})
	_, err := m.Load("x")
	require.NoError(t, err)

	m.Close()
	_, err = m.Load("x")
	assert.ErrorIs(t, err, ErrNotFound)
}
