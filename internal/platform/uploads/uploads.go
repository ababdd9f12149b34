// Package uploads stores user-submitted profile pictures on the local filesystem.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStore writes uploaded files into a single directory, keyed by their
// client-supplied filename. A file with an already-used name silently
// overwrites the previous one (last write wins).
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir.
// The directory is created on first write, not here, so constructing a store
// never touches the filesystem.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save writes the content under the given filename and returns the stored
// name. The filename is reduced to its base component so a crafted name
// cannot escape the uploads directory.
func (s *FileStore) Save(filename string, r io.Reader) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", fmt.Errorf("uploads: invalid filename %q", filename)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("uploads: mkdir: %w", err)
	}

	full := filepath.Join(s.dir, name)
	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("uploads: create %s: %w", name, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("uploads: write %s: %w", name, err)
	}

	return name, nil
}
