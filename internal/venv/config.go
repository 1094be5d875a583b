package venv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FormatVersion marks environments laid out by this tool. Bump it when the
// layout changes incompatibly.
const FormatVersion = "1"

// Config is the content of pyvenv.cfg.
type Config struct {
	// Home is the directory containing the base interpreter.
	Home string

	// Executable is the canonical path of the base interpreter.
	Executable string

	// Version is the full Python version string, as given.
	Version string

	// IncludeSystemSitePackages exposes the base installation's
	// site-packages when true.
	IncludeSystemSitePackages bool

	// Format is the layout format marker.
	Format string
}

// NewConfig creates the metadata for an environment linked to interpreter.
// interpreter must already be canonical.
func NewConfig(interpreter, version string) *Config {
	return &Config{
		Home:       filepath.Dir(interpreter),
		Executable: interpreter,
		Version:    version,
		Format:     FormatVersion,
	}
}

// FormatConfig formats c as pyvenv.cfg content. The output is
// deterministic so rewriting an unchanged environment is byte-identical.
func FormatConfig(c *Config) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("home = %s\n", c.Home))
	sb.WriteString(fmt.Sprintf("executable = %s\n", c.Executable))
	sb.WriteString(fmt.Sprintf("include-system-site-packages = %t\n", c.IncludeSystemSitePackages))
	sb.WriteString(fmt.Sprintf("version = %s\n", c.Version))
	sb.WriteString(fmt.Sprintf("venv-format = %s\n", c.Format))
	return sb.String()
}

// ParseConfig parses pyvenv.cfg content. Lines without "=" are ignored, as
// the interpreter's site module does.
func ParseConfig(content string) *Config {
	c := &Config{}
	for _, line := range strings.Split(content, "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "home":
			c.Home = value
		case "executable":
			c.Executable = value
		case "include-system-site-packages":
			c.IncludeSystemSitePackages = strings.EqualFold(value, "true")
		case "version":
			c.Version = value
		case "venv-format":
			c.Format = value
		}
	}
	return c
}

// ReadConfig reads and parses a pyvenv.cfg file.
func ReadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}
	return ParseConfig(string(content)), nil
}
