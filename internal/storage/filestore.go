package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrIO is wrapped by every file store failure
var ErrIO = errors.New("file I/O failed")

// FileStore reads and writes whole text files
type FileStore interface {
	// ReadIfExists returns the file content and whether the file exists
	ReadIfExists(path string) (string, bool, error)
	// WriteDurably replaces the file content so that readers see either the
	// old or the new text, never a partial write
	WriteDurably(path, text string) error
}

// OSFileStore is the FileStore backed by the local filesystem
type OSFileStore struct{}

// ReadIfExists implements FileStore
func (OSFileStore) ReadIfExists(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}
	return string(data), true, nil
}

// WriteDurably implements FileStore. Parent directories are created, the
// text goes to a temporary file in the same directory which is synced and
// then renamed over path.
func (OSFileStore) WriteDurably(path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: create directory %s: %v", ErrIO, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file in %s: %v", ErrIO, dir, err)
	}
	tmpPath := tmp.Name()

	if err := writeAndSync(tmp, text); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: write %s: %v", ErrIO, path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: rename %s: %v", ErrIO, path, err)
	}
	return nil
}

func writeAndSync(file *os.File, text string) error {
	if err := file.Chmod(0644); err != nil {
		_ = file.Close()
		return err
	}
	if _, err := file.WriteString(text); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
