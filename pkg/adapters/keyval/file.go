package keyval

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// File implements core.Storage with one file per key under a directory.
// Values are credentials, so files are created 0600 and the directory
// 0700. Writes go through a temp-file rename so a crash mid-write never
// leaves a truncated credential behind.
type File struct {
	dir    string
	logger *slog.Logger
}

// NewFile creates a file-backed storage rooted at dir. The directory is
// created lazily on the first write.
func NewFile(dir string, logger *slog.Logger) *File {
	return &File{dir: dir, logger: logger}
}

// Get implements core.Storage.
func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	path, err := f.path(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set implements core.Storage.
func (f *File) Set(ctx context.Context, key, value string) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir, 0700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	if f.logger != nil {
		f.logger.Debug("persisting key", "key", key, "dir", f.dir)
	}
	return f.writeAtomic(path, []byte(value), 0600)
}

// writeAtomic replaces path through a temp file in the same directory,
// so a reader observes either the old credential or the new one, never
// a torn write.
func (f *File) writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(f.dir, ".jot-*")
	if err != nil {
		return fmt.Errorf("creating temp credential file: %w", err)
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing temp credential file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("restricting temp credential file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Delete implements core.Storage. Deleting an absent key is a no-op.
func (f *File) Delete(ctx context.Context, key string) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// path maps a key to a file, rejecting anything that could escape the
// storage directory.
func (f *File) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(f.dir, key), nil
}
