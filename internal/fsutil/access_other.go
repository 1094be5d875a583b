//go:build !unix

package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CheckExecutable reports whether path looks executable. Without POSIX
// permission bits this falls back to the file extension.
func CheckExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Mode()&0o111 != 0 {
		return nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".exe", ".bat", ".cmd", ".com":
		return nil
	}
	return fmt.Errorf("%s is not executable", path)
}

// CheckWritable reports whether dir accepts new files by creating and removing a
// temp file.
func CheckWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".write-check-*")
	if err != nil {
		return fmt.Errorf("write check %s: %w", dir, err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
