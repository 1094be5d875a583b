package pyversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"martianoff/venv/internal/venverr"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input      string
		major      int
		minor      int
		majorMinor string
	}{
		{"3.8", 3, 8, "3.8"},
		{"3.8.12", 3, 8, "3.8"},
		{"3.11.4", 3, 11, "3.11"},
		{"3.13.0.1", 3, 13, "3.13"},
		{"0.0", 0, 0, "0.0"},
		{"10.20.30", 10, 20, "10.20"},
		{"03.09", 3, 9, "3.9"},
	}

	for _, tt := range tests {
		v, err := Parse(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.major, v.Major, "input: %s", tt.input)
		assert.Equal(t, tt.minor, v.Minor, "input: %s", tt.input)
		assert.Equal(t, tt.majorMinor, v.MajorMinor(), "input: %s", tt.input)
		assert.Equal(t, tt.input, v.Raw, "input: %s", tt.input)
		assert.Equal(t, tt.input, v.String(), "input: %s", tt.input)
	}
}

func TestParse_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"3",
		"3.",
		".3",
		"3..11",
		"3.11.",
		"v3.11",
		"3.11-rc1",
		"3.11.4+local",
		" 3.11",
		"3.11 ",
		"3.x",
		"-3.11",
		"99999999999999999999.1",
	}

	for _, input := range invalid {
		_, err := Parse(input)
		require.Error(t, err, "input: %q", input)
		assert.ErrorIs(t, err, venverr.ErrInvalidVersionFormat, "input: %q", input)
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, "3.12", MustParse("3.12.1").MajorMinor())
	assert.Panics(t, func() { MustParse("three") })
}
