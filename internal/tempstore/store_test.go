package tempstore

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestStore_Save(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		expectedExt string
	}{
		{name: "keeps extension", filename: "lesson.wav", expectedExt: ".wav"},
		{name: "defaults to webm", filename: "", expectedExt: ".webm"},
		{name: "no extension in name", filename: "blob", expectedExt: ".webm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			store := New(fsys, "temp_audio")

			path, err := store.Save(strings.NewReader("RIFF"), tt.filename)
			require.NoError(t, err)

			assert.Equal(t, "temp_audio", filepath.Dir(path))
			assert.Equal(t, tt.expectedExt, filepath.Ext(path))
			data, err := afero.ReadFile(fsys, path)
			require.NoError(t, err)
			assert.Equal(t, "RIFF", string(data))
		})
	}
}

func TestStore_Save_UniqueNames(t *testing.T) {
	store := New(afero.NewMemMapFs(), "tmp")

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		path, err := store.Save(strings.NewReader("x"), "a.ogg")
		require.NoError(t, err)
		assert.False(t, seen[path])
		seen[path] = true
	}
}

func TestStore_Save_WriteFailureLeavesNothing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := New(fsys, "tmp")

	path, err := store.Save(failingReader{}, "a.wav")

	assert.Error(t, err)
	assert.Empty(t, path)
	entries, err := afero.ReadDir(fsys, "tmp")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Remove(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := New(fsys, "tmp")

	path, err := store.Save(strings.NewReader("x"), "a.wav")
	require.NoError(t, err)
	assert.True(t, store.Exists(path))

	assert.NoError(t, store.Remove(path))
	assert.False(t, store.Exists(path))

	// Removing twice is fine.
	assert.NoError(t, store.Remove(path))
	assert.NoError(t, store.Remove(""))
}

func TestStore_Sweep(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := New(fsys, "tmp")

	oldPath, err := store.Save(strings.NewReader("old"), "a.wav")
	require.NoError(t, err)
	freshPath, err := store.Save(strings.NewReader("fresh"), "b.wav")
	require.NoError(t, err)

	old := time.Now().Add(-3 * time.Hour)
	require.NoError(t, fsys.Chtimes(oldPath, old, old))

	removed, err := store.Sweep(time.Now().Add(-time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.False(t, store.Exists(oldPath))
	assert.True(t, store.Exists(freshPath))
}

func TestStore_Sweep_MissingDir(t *testing.T) {
	store := New(afero.NewMemMapFs(), "never-created")

	removed, err := store.Sweep(time.Now())

	assert.NoError(t, err)
	assert.Zero(t, removed)
}
