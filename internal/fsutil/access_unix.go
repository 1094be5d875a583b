//go:build unix

package fsutil

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// CheckExecutable reports whether the current user may execute path.
func CheckExecutable(path string) error {
	if err := unix.Access(path, unix.X_OK); err != nil {
		return fmt.Errorf("access %s: %w", path, err)
	}
	return nil
}

// CheckWritable reports whether the current user may create entries in the
// directory dir.
func CheckWritable(dir string) error {
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("access %s: %w", dir, err)
	}
	return nil
}
