package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestWriteFileAtomic_CreatesAndReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deps.pth")

	require.NoError(t, WriteFileAtomic(path, []byte("first\n"), 0o644))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(content))

	require.NoError(t, WriteFileAtomic(path, []byte("second\n"), 0o644))
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(content))

	// No temp files left behind.
	assert.Equal(t, []string{"deps.pth"}, listNames(t, dir))
}

func TestWriteFileAtomic_SetsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	path := filepath.Join(t.TempDir(), "pyvenv.cfg")
	require.NoError(t, WriteFileAtomic(path, []byte("x"), 0o644))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteFileAtomic_MissingDirLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "deps.pth")

	err := WriteFileAtomic(path, []byte("x"), 0o644)
	require.Error(t, err)
	assert.Empty(t, listNames(t, dir))
}

func TestWriteFileAtomic_FailedRenameKeepsOldContent(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory at the destination makes the rename fail.
	path := filepath.Join(dir, "deps.pth")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "child"), 0o755))

	err := WriteFileAtomic(path, []byte("x"), 0o644)
	require.Error(t, err)
	assert.Equal(t, []string{"deps.pth"}, listNames(t, dir))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestReplaceSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}
	dir := t.TempDir()
	link := filepath.Join(dir, "python")
	targetA := filepath.Join(dir, "a")
	targetB := filepath.Join(dir, "b")

	changed, err := ReplaceSymlink(targetA, link)
	require.NoError(t, err)
	assert.True(t, changed)
	got, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, targetA, got)

	changed, err = ReplaceSymlink(targetA, link)
	require.NoError(t, err)
	assert.False(t, changed, "unchanged link should not be rewritten")

	changed, err = ReplaceSymlink(targetB, link)
	require.NoError(t, err)
	assert.True(t, changed)
	got, err = os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, targetB, got)

	assert.ElementsMatch(t, []string{"python"}, listNames(t, dir))
}

func TestReplaceSymlink_ReplacesRegularFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}
	dir := t.TempDir()
	link := filepath.Join(dir, "python")
	require.NoError(t, os.WriteFile(link, []byte("stale"), 0o755))

	changed, err := ReplaceSymlink("/usr/bin/python3", link)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/python3", got)
}

func TestReplaceSymlink_DirectoryIsError(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "python")
	require.NoError(t, os.Mkdir(link, 0o755))

	_, err := ReplaceSymlink("/usr/bin/python3", link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestCheckWritable(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, CheckWritable(dir))
	assert.Error(t, CheckWritable(filepath.Join(dir, "missing")))
}

func TestCheckExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute permission is extension based on windows")
	}
	dir := t.TempDir()
	exe := filepath.Join(dir, "python3")
	plain := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(plain, []byte("x"), 0o644))

	assert.NoError(t, CheckExecutable(exe))
	assert.Error(t, CheckExecutable(plain))
	assert.Error(t, CheckExecutable(filepath.Join(dir, "missing")))
}
