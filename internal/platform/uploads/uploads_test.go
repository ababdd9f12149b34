package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	t.Parallel()

	t.Run("writes the file under its base name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := NewFileStore(dir)

		name, err := store.Save("avatar.png", strings.NewReader("image bytes"))
		require.NoError(t, err)
		assert.Equal(t, "avatar.png", name)

		content, err := os.ReadFile(filepath.Join(dir, "avatar.png"))
		require.NoError(t, err)
		assert.Equal(t, "image bytes", string(content))
	})

	t.Run("creates the directory on first write", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "uploads")
		store := NewFileStore(dir)

		_, err := store.Save("avatar.png", strings.NewReader("x"))
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "avatar.png"))
		assert.NoError(t, err)
	})

	t.Run("same filename overwrites the previous content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := NewFileStore(dir)

		_, err := store.Save("avatar.png", strings.NewReader("first"))
		require.NoError(t, err)
		_, err = store.Save("avatar.png", strings.NewReader("second"))
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "avatar.png"))
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))
	})

	t.Run("path components are stripped from the filename", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := NewFileStore(dir)

		name, err := store.Save("../../etc/passwd", strings.NewReader("nope"))
		require.NoError(t, err)
		assert.Equal(t, "passwd", name)

		// The file is inside the uploads directory, not above it.
		_, err = os.Stat(filepath.Join(dir, "passwd"))
		assert.NoError(t, err)
	})

	t.Run("filename with no base component is rejected", func(t *testing.T) {
		t.Parallel()

		store := NewFileStore(t.TempDir())

		_, err := store.Save("..", strings.NewReader("x"))
		assert.Error(t, err)
	})
}
