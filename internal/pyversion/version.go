// Package pyversion parses the dotted Python version strings used to name
// virtual environment directories.
package pyversion

import (
	"fmt"
	"regexp"
	"strconv"

	"martianoff/venv/internal/venverr"
)

// Version represents a parsed Python version such as "3.11.4".
type Version struct {
	Major int
	Minor int
	Raw   string // Original string, including any components past minor
}

var versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.\d+)*$`)

// Parse parses a dot-separated version string.
// At least major and minor are required; further components are accepted
// and kept in Raw but are not interpreted.
// Examples: "3.8", "3.8.12", "3.13.0.1"
func Parse(s string) (Version, error) {
	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil {
		return Version{}, venverr.New(venverr.KindInvalidVersionFormat, "",
			fmt.Sprintf("invalid python version %q: expected dot-separated integers like 3.11 or 3.11.4", s))
	}

	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return Version{}, venverr.Wrap(venverr.KindInvalidVersionFormat, "",
			fmt.Sprintf("invalid major version in %q", s), err)
	}
	minor, err := strconv.Atoi(matches[2])
	if err != nil {
		return Version{}, venverr.Wrap(venverr.KindInvalidVersionFormat, "",
			fmt.Sprintf("invalid minor version in %q", s), err)
	}

	return Version{Major: major, Minor: minor, Raw: s}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MajorMinor returns the "X.Y" form used in directory names.
func (v Version) MajorMinor() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// String returns the version exactly as it was given.
func (v Version) String() string {
	return v.Raw
}
