package venv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"martianoff/venv/internal/pyversion"
	"martianoff/venv/internal/venverr"
)

// ConfigFileName is the metadata file the interpreter looks for next to (or
// one level above) its executable to detect a virtual environment.
const ConfigFileName = "pyvenv.cfg"

// Layout describes the on-disk shape of a virtual environment.
type Layout struct {
	// Platform is the family the layout was derived for.
	Platform Platform

	// Version is the Python version the layout was derived for.
	Version pyversion.Version

	// Dir is the absolute path to the environment root.
	Dir string

	// BinDir holds the interpreter link.
	BinDir string

	// LibDir is the standard-library shadow directory.
	LibDir string

	// SitePackagesDir is where the .pth file is placed.
	SitePackagesDir string

	// ConfigPath is the path to pyvenv.cfg.
	ConfigPath string

	// InterpreterPath is the path of the interpreter link.
	InterpreterPath string
}

// NewLayout computes the layout for an environment at location.
// Every path is derived from location, v and p; nothing is touched on disk.
func NewLayout(location string, v pyversion.Version, p Platform) (*Layout, error) {
	absDir, err := filepath.Abs(location)
	if err != nil {
		return nil, fmt.Errorf("resolving environment path: %w", err)
	}

	binDir := filepath.Join(absDir, p.BinDir())
	return &Layout{
		Platform:        p,
		Version:         v,
		Dir:             absDir,
		BinDir:          binDir,
		LibDir:          filepath.Join(absDir, p.LibDir()),
		SitePackagesDir: filepath.Join(absDir, p.SitePackagesDir(v)),
		ConfigPath:      filepath.Join(absDir, ConfigFileName),
		InterpreterPath: filepath.Join(binDir, p.InterpreterName()),
	}, nil
}

// Dirs returns every directory of the layout, parents first.
func (l *Layout) Dirs() []string {
	dirs := []string{l.Dir, l.BinDir, l.LibDir}

	// Intermediate directories between LibDir and SitePackagesDir, such as
	// lib/python3.11, are checked too.
	var between []string
	for d := filepath.Dir(l.SitePackagesDir); d != l.LibDir && d != l.Dir && len(d) > len(l.Dir); d = filepath.Dir(d) {
		between = append([]string{d}, between...)
	}
	dirs = append(dirs, between...)
	return append(dirs, l.SitePackagesDir)
}

// Ensure creates the directory structure. Existing directories are kept; any
// layout path occupied by something other than a directory is a
// LayoutPathCollision.
func (l *Layout) Ensure() error {
	for _, dir := range l.Dirs() {
		info, err := os.Stat(dir)
		switch {
		case err == nil && !info.IsDir():
			return venverr.New(venverr.KindLayoutPathCollision, dir, "path is occupied by a non-directory")
		case err == nil:
			continue
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("checking environment dir %s: %w", dir, err)
		}

		// Stat misses dangling symlinks; they still occupy the path.
		if _, err := os.Lstat(dir); err == nil {
			return venverr.New(venverr.KindLayoutPathCollision, dir, "path is occupied by a non-directory")
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating environment dir %s: %w", dir, err)
		}
	}

	for _, file := range []string{l.ConfigPath, l.InterpreterPath} {
		if info, err := os.Lstat(file); err == nil && info.IsDir() {
			return venverr.New(venverr.KindLayoutPathCollision, file, "path is occupied by a directory")
		}
	}
	return nil
}

// Exists returns true if the environment directory and its metadata file
// exist.
func (l *Layout) Exists() bool {
	info, err := os.Stat(l.Dir)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(l.ConfigPath)
	return err == nil
}
