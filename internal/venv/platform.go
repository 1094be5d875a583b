package venv

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"martianoff/venv/internal/pyversion"
)

// Platform captures the directory naming conventions of a platform family.
// Layout derives every path from these, so adding a family never touches
// Create.
type Platform interface {
	// Name identifies the family, e.g. "posix".
	Name() string

	// BinDir is the executable directory, relative to the environment root.
	BinDir() string

	// LibDir is the standard-library shadow directory, relative to the
	// environment root.
	LibDir() string

	// SitePackagesDir is the site-packages directory for v, relative to the
	// environment root.
	SitePackagesDir(v pyversion.Version) string

	// InterpreterName is the file name of the interpreter inside BinDir.
	InterpreterName() string
}

// Posix is the layout used on Linux, macOS and other unix systems.
type Posix struct{}

func (Posix) Name() string   { return "posix" }
func (Posix) BinDir() string { return "bin" }
func (Posix) LibDir() string { return "lib" }

// SitePackagesDir returns lib/pythonX.Y/site-packages.
func (Posix) SitePackagesDir(v pyversion.Version) string {
	return filepath.Join("lib", "python"+v.MajorMinor(), "site-packages")
}

func (Posix) InterpreterName() string { return "python" }

// Windows is the layout CPython uses on Windows. site-packages does not
// embed the version there.
type Windows struct{}

func (Windows) Name() string   { return "windows" }
func (Windows) BinDir() string { return "Scripts" }
func (Windows) LibDir() string { return "Lib" }

func (Windows) SitePackagesDir(pyversion.Version) string {
	return filepath.Join("Lib", "site-packages")
}

func (Windows) InterpreterName() string { return "python.exe" }

var platforms = map[string]Platform{
	Posix{}.Name():   Posix{},
	Windows{}.Name(): Windows{},
}

// CurrentPlatform returns the family of the host OS.
func CurrentPlatform() Platform {
	if runtime.GOOS == "windows" {
		return Windows{}
	}
	return Posix{}
}

// PlatformByName looks up a platform family by name.
func PlatformByName(name string) (Platform, error) {
	if p, ok := platforms[strings.ToLower(name)]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown platform %q (known: %s)", name, strings.Join(PlatformNames(), ", "))
}

// PlatformNames returns the known family names, sorted.
func PlatformNames() []string {
	names := make([]string, 0, len(platforms))
	for name := range platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
