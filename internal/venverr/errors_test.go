package venverr

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "kind only",
			err:      &Error{Kind: KindInterpreterNotFound},
			expected: "[InterpreterNotFound] InterpreterNotFound",
		},
		{
			name:     "with message and path",
			err:      New(KindLayoutPathCollision, "/venv/bin", "path is occupied by a non-directory"),
			expected: "[LayoutPathCollision] path is occupied by a non-directory: /venv/bin",
		},
		{
			name:     "with cause",
			err:      Wrap(KindSourceFileUnreadable, "/src/deps.pth", "cannot read source file", fs.ErrNotExist),
			expected: "[SourceFileUnreadable] cannot read source file: /src/deps.pth: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("unable to build path-configuration file: %w",
		Wrap(KindSourceFileUnreadable, "/x", "cannot read source file", fs.ErrPermission))

	assert.ErrorIs(t, err, ErrSourceFileUnreadable)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, err, ErrDestinationNotWritable)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindWorkspacePathsWithoutRoot,
		KindOf(fmt.Errorf("outer: %w", New(KindWorkspacePathsWithoutRoot, "", "no root"))))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}
