// Package venverr defines the error kinds reported while materializing a
// virtual environment.
package venverr

import (
	"errors"
	"fmt"
)

// Kind defines the category of the error.
type Kind string

const (
	KindInvalidVersionFormat      Kind = "InvalidVersionFormat"
	KindInterpreterNotFound       Kind = "InterpreterNotFound"
	KindLayoutPathCollision       Kind = "LayoutPathCollision"
	KindSourceFileUnreadable      Kind = "SourceFileUnreadable"
	KindWorkspacePathsWithoutRoot Kind = "WorkspacePathsWithoutRoot"
	KindDestinationNotWritable    Kind = "DestinationNotWritable"
)

// Sentinels for use with errors.Is. Matching is by Kind only.
var (
	ErrInvalidVersionFormat      = &Error{Kind: KindInvalidVersionFormat}
	ErrInterpreterNotFound       = &Error{Kind: KindInterpreterNotFound}
	ErrLayoutPathCollision       = &Error{Kind: KindLayoutPathCollision}
	ErrSourceFileUnreadable      = &Error{Kind: KindSourceFileUnreadable}
	ErrWorkspacePathsWithoutRoot = &Error{Kind: KindWorkspacePathsWithoutRoot}
	ErrDestinationNotWritable    = &Error{Kind: KindDestinationNotWritable}
)

// Error is a categorized failure, optionally tied to a filesystem path and
// an underlying cause.
type Error struct {
	Kind Kind
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Kind)
	}
	s := fmt.Sprintf("[%s] %s", e.Kind, msg)
	if e.Path != "" {
		s += ": " + e.Path
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New creates an Error of the given kind.
func New(kind Kind, path, msg string) *Error {
	return &Error{Kind: kind, Path: path, Msg: msg}
}

// Wrap creates an Error of the given kind caused by err.
func Wrap(kind Kind, path, msg string, err error) *Error {
	return &Error{Kind: kind, Path: path, Msg: msg, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if there
// is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
