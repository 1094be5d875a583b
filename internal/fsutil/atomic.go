// Package fsutil holds the filesystem primitives used to lay out an
// environment: atomic file writes, atomic symlink replacement and access
// checks.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteFileAtomic writes data to a temp file next to path, fsyncs it, and
// renames it over path. On any error the temp file is removed, so path holds
// either its previous content or the complete new content.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpPath := f.Name()

	// cleanup closes and removes the temp file on error.
	cleanup := func() {
		_ = f.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := f.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write temp file %s: %w", tmpPath, err)
	}
	if err := f.Chmod(perm); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file %s: %w", tmpPath, err)
	}
	if err := f.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("fsync temp file %s: %w", tmpPath, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s to %s: %w", tmpPath, path, err)
	}
	return nil
}

// ReplaceSymlink makes link a symlink pointing at target. A link that
// already points at target is left untouched and false is returned.
// Otherwise a temp symlink is created in link's directory and renamed over
// link, so observers see either the old link or the new one.
func ReplaceSymlink(target, link string) (bool, error) {
	if current, err := os.Readlink(link); err == nil && current == target {
		return false, nil
	}

	if info, err := os.Lstat(link); err == nil && info.IsDir() {
		return false, fmt.Errorf("replace symlink %s: path is a directory", link)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", link, err)
	}

	tmpLink := filepath.Join(filepath.Dir(link), "."+filepath.Base(link)+".tmp-"+uuid.NewString())
	if err := os.Symlink(target, tmpLink); err != nil {
		return false, fmt.Errorf("create symlink %s -> %s: %w", tmpLink, target, err)
	}
	if err := os.Rename(tmpLink, link); err != nil {
		_ = os.Remove(tmpLink)
		return false, fmt.Errorf("rename %s to %s: %w", tmpLink, link, err)
	}
	return true, nil
}
