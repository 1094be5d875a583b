// Package pth generates the .pth path-configuration file placed in a
// virtual environment's site-packages directory.
//
// A .pth file is plain text with one search-path entry per line. The
// interpreter appends each entry to sys.path at startup.
package pth

import (
	"path/filepath"
	"strings"

	"martianoff/venv/internal/venverr"
)

// Extension is the suffix the interpreter's site module looks for.
const Extension = ".pth"

// File describes the path-configuration file to generate.
type File struct {
	// Source lists the entries to install, one per line.
	Source string

	// EntryPrefix is joined in front of every entry. Empty means no prefix.
	EntryPrefix string
}

// NewFile creates a File for the given source and optional prefix.
func NewFile(source, entryPrefix string) *File {
	return &File{Source: source, EntryPrefix: entryPrefix}
}

// Name returns the file name used inside site-packages: the base name of
// Source with its extension replaced by .pth.
func (f *File) Name() string {
	base := filepath.Base(f.Source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + Extension
}

// Workspace is the build workspace used to resolve relative entries.
// A nil *Workspace means the invocation runs outside a build workspace.
type Workspace struct {
	// Root is the absolute path of the workspace (BUILD_WORKSPACE_DIRECTORY).
	Root string

	// Paths are workspace-relative directories appended after the source
	// entries, in order.
	Paths []string
}

// NewWorkspace builds a Workspace from an optional root and optional
// relative paths. Paths without a root are a configuration error. When
// both are empty the result is nil.
func NewWorkspace(root string, paths []string) (*Workspace, error) {
	if root == "" {
		if len(paths) > 0 {
			return nil, venverr.New(venverr.KindWorkspacePathsWithoutRoot, "",
				"additional workspace paths "+strings.Join(paths, ",")+" require a build workspace directory")
		}
		return nil, nil
	}
	return &Workspace{Root: root, Paths: append([]string(nil), paths...)}, nil
}
