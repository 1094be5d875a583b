// Package venv materializes Python virtual environments that link to an
// existing interpreter instead of copying it.
package venv

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"martianoff/venv/internal/fsutil"
	"martianoff/venv/internal/pth"
	"martianoff/venv/internal/pyversion"
	"martianoff/venv/internal/venverr"
)

// Options configures Create.
type Options struct {
	// Python is the source interpreter to link. Required.
	Python string

	// Version is the dotted Python version, e.g. "3.11.4". Required.
	Version string

	// Location is the environment directory. Required.
	Location string

	// PthFile, when set, is installed into site-packages.
	PthFile *pth.File

	// WorkspaceRoot is the build workspace directory, if any.
	WorkspaceRoot string

	// AdditionalPaths are workspace-relative entries appended to the .pth
	// file. They require WorkspaceRoot.
	AdditionalPaths []string

	// Platform selects the directory conventions. Defaults to the host's.
	Platform Platform

	// Logger receives progress at debug level. Defaults to discarding.
	Logger *slog.Logger
}

// Create materializes a virtual environment at opts.Location.
//
// Re-running Create on an existing environment refreshes it in place.
// Concurrent calls against the same location are not supported; callers
// must serialize them.
func Create(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	platform := opts.Platform
	if platform == nil {
		platform = CurrentPlatform()
	}

	interpreter, err := resolveInterpreter(opts.Python)
	if err != nil {
		return err
	}

	version, err := pyversion.Parse(opts.Version)
	if err != nil {
		return err
	}

	// Resolved before anything is written, so a bad workspace leaves the
	// filesystem untouched.
	ws, err := pth.NewWorkspace(opts.WorkspaceRoot, opts.AdditionalPaths)
	if err != nil {
		return err
	}

	layout, err := NewLayout(opts.Location, version, platform)
	if err != nil {
		return err
	}
	logger.Debug("creating environment",
		"location", layout.Dir,
		"interpreter", interpreter,
		"version", layout.Version.String(),
		"platform", layout.Platform.Name(),
		"existing", layout.Exists())

	if err := layout.Ensure(); err != nil {
		return err
	}

	changed, err := fsutil.ReplaceSymlink(interpreter, layout.InterpreterPath)
	if err != nil {
		return fmt.Errorf("linking interpreter: %w", err)
	}
	logger.Debug("interpreter link", "path", layout.InterpreterPath, "target", interpreter, "changed", changed)

	cfg := NewConfig(interpreter, version.String())
	if err := fsutil.WriteFileAtomic(layout.ConfigPath, []byte(FormatConfig(cfg)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", ConfigFileName, err)
	}
	logger.Debug("wrote environment metadata", "path", layout.ConfigPath)

	if opts.PthFile == nil {
		return nil
	}

	dest, err := pth.Build(opts.PthFile, ws, layout.SitePackagesDir)
	if err != nil {
		return fmt.Errorf("unable to build path-configuration file: %w", err)
	}
	logger.Debug("wrote path-configuration file", "path", dest, "source", opts.PthFile.Source)
	return nil
}

// resolveInterpreter checks that path is an executable file and returns its
// absolute, symlink-free path.
func resolveInterpreter(path string) (string, error) {
	if path == "" {
		return "", venverr.New(venverr.KindInterpreterNotFound, "", "no interpreter given")
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", venverr.Wrap(venverr.KindInterpreterNotFound, path, "cannot stat interpreter", err)
	}
	if !info.Mode().IsRegular() {
		return "", venverr.New(venverr.KindInterpreterNotFound, path, "interpreter is not a regular file")
	}
	if err := fsutil.CheckExecutable(path); err != nil {
		return "", venverr.Wrap(venverr.KindInterpreterNotFound, path, "interpreter is not executable", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving interpreter path %s: %w", path, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", venverr.Wrap(venverr.KindInterpreterNotFound, abs, "cannot resolve interpreter path", err)
	}
	return canonical, nil
}
