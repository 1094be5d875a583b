// Package testutil provides shared fixtures for environment tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bazelbuild/rules_go/go/tools/bazel"
)

// TempDir creates a temporary directory that is removed when the test ends.
// Under Bazel it is placed in TEST_TMPDIR; outside Bazel TestTmpDir falls
// back to the system temp directory.
func TempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp(bazel.TestTmpDir(), "venv-test-*")
	if err != nil {
		t.Fatalf("creating temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	// Canonicalize so paths compare equal to symlink-resolved results
	// (e.g. /var vs /private/var on macOS).
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("resolving temp dir: %v", err)
	}
	return resolved
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// FakeInterpreter installs an executable stand-in for a Python interpreter
// at dir/name and returns its path. The interpreter is never run.
func FakeInterpreter(t *testing.T, dir, name string) string {
	t.Helper()
	return WriteFile(t, dir, name, "#!/bin/sh\nexit 0\n", 0o755)
}

// ListDir returns the names of the entries in dir, or nil if it does not
// exist.
func ListDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
