package reporter

import (
	"errors"
	"fmt"
)

// ErrTokenizeFailed is a sentinel returned by Handler.Error when errors
// were reported but the configured ErrorReporter never aborted the
// operation with its own error.
var ErrTokenizeFailed = errors.New("codematch: tokenization failed for one or more files")

// ErrorWithPos is a diagnostic that carries the source Position that
// caused it. Error() formats both; Unwrap() yields only the underlying
// cause.
type ErrorWithPos interface {
	error
	GetPosition() Position
	Unwrap() error
}

// Error wraps err with pos, producing an ErrorWithPos.
func Error(pos Position, err error) ErrorWithPos {
	return errorWithPosition{pos: pos, underlying: err}
}

// Errorf is like Error but builds the underlying error from a format
// string, the same way fmt.Errorf does.
func Errorf(pos Position, format string, args ...any) ErrorWithPos {
	return errorWithPosition{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithPosition struct {
	underlying error
	pos        Position
}

func (e errorWithPosition) Error() string {
	return fmt.Sprintf("%s: %v", e.GetPosition(), e.underlying)
}

func (e errorWithPosition) GetPosition() Position {
	return e.pos
}

func (e errorWithPosition) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithPosition{}
