// internal/store/file.go
//
// Local JSON file backend.
//
// Context
// -------
// The file is the floor guarantee: when no remote DSN is configured, or the
// remote has been marked unavailable, every read and write lands here.  The
// document is pretty-printed so the operator can diff and hand-edit it.
// Save writes to a temp file in the same directory and renames it over the
// target, so a crash mid-write never leaves a torn document behind.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/skjuv/portfolio/internal/portfolio"
)

// FileBackend persists the record as one JSON file on local disk.
type FileBackend struct {
	path string
}

// NewFileBackend returns a backend rooted at path.  The file need not exist
// yet; Load reports ErrNotFound until the first Save.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads and decodes the whole document.
func (f *FileBackend) Load(_ context.Context) (*portfolio.Data, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var data portfolio.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Save atomically replaces the document via temp file + rename.
func (f *FileBackend) Save(_ context.Context, data *portfolio.Data) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".portfolio-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, f.path)
}
