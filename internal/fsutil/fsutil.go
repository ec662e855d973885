// Package fsutil holds file helpers shared by the preset store, the config
// layer and the terminal host.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// rename is swapped out by tests to simulate a crash before the rename lands.
var rename = os.Rename

// WriteFileAtomic writes data to a new temporary file next to path and renames
// it over path. Readers observe either the old content or the new content,
// never a truncated file. The temporary file is removed on any failure.
// The parent directory is created if missing.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("fsutil: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("fsutil: create temp: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("fsutil: write temp: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("fsutil: sync temp: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("fsutil: close temp: %w", err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("fsutil: chmod temp: %w", err)
	}
	if err = rename(tmpPath, path); err != nil {
		return fmt.Errorf("fsutil: rename: %w", err)
	}
	return nil
}

// ReadFileOptional reads path, reporting found=false instead of an error when
// the file does not exist.
func ReadFileOptional(path string) (data []byte, found bool, err error) {
	data, err = os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
