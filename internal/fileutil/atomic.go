// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExecutableBits are the permission bits carried over from a source file.
const ExecutableBits = 0o111

// IsExec reports whether any executable bit is set on path.
func IsExec(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("getting file info for %q: %w", path, err)
	}

	return info.Mode()&ExecutableBits != 0, nil
}

// TempFile is an in-progress atomic write to Path.
type TempFile struct {
	*os.File

	// Path is the final destination.
	Path string
}

// NewTempFile creates a temporary file next to path.
// Caller must defer CleanupOnError.
func NewTempFile(path string) (*TempFile, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &TempFile{File: tmp, Path: path}, nil
}

// CleanupOnError closes the temp file and removes it if the write failed.
func (t *TempFile) CleanupOnError(errp *error) {
	t.Close() //nolint:errcheck,gosec // best-effort cleanup

	if *errp != nil {
		os.Remove(t.Name()) //nolint:errcheck,gosec // best-effort cleanup
	}
}

// Commit sets perm, closes the temp file and renames it over Path.
func (t *TempFile) Commit(perm os.FileMode) error {
	if err := t.Chmod(perm); err != nil {
		return fmt.Errorf("setting file permissions: %w", err)
	}

	if err := t.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(t.Name(), t.Path); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}

	return nil
}

// WriteFile replaces path with data through a temporary file and a rename,
// so readers never observe a partially written file. It returns the number
// of bytes written.
func WriteFile(path string, data []byte, perm os.FileMode) (size int64, err error) {
	tmp, err := NewTempFile(path)
	if err != nil {
		return 0, err
	}

	defer tmp.CleanupOnError(&err)

	n, err := tmp.Write(data)
	if err != nil {
		return 0, fmt.Errorf("writing %q: %w", path, err)
	}

	if err = tmp.Commit(perm); err != nil {
		return 0, err
	}

	return int64(n), nil
}
