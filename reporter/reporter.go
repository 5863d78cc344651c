// Package reporter contains the types used for reporting errors and
// warnings encountered while tokenizing submissions and templates.
// ParseError and IOError are reported and skipped, never fatal, while
// programming-error invariant violations are left to panic.
package reporter

import (
	"sync"
)

// Position identifies where in a source file a diagnostic occurred.
// Line and Column are 1-based, matching Token's fields.
type Position struct {
	Path   string
	Line   uint32
	Column uint32
}

func (p Position) String() string {
	if p.Line == 0 {
		return p.Path
	}
	return p.Path + ":" + itoa(p.Line) + ":" + itoa(p.Column)
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// ErrorReporter is responsible for reporting the given error. If it
// returns a non-nil error, the caller's current operation aborts with
// that error; if it returns nil, the caller continues, skipping the
// offending file.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for surfacing non-fatal diagnostics,
// such as a file that could not be read or tokenized and was skipped.
type WarningReporter func(ErrorWithPos)

// Reporter handles both errors and warnings.
type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

// NewReporter builds a Reporter from a pair of callbacks. Either may be
// nil; a nil ErrorReporter causes errors to always abort, a nil
// WarningReporter silently drops warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler accumulates errors and warnings reported while processing one
// batch of files (one template walk, or one submission directory walk).
// It is safe for concurrent use so that tokenization of many files can
// report through the same handler from an errgroup.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a Handler that reports through rep. A nil rep
// swallows warnings and aborts on the first error.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf reports a positional error built from format and args.
//
// If the handler has already aborted, that same error is returned
// without reporting the new one.
func (h *Handler) HandleErrorf(pos Position, format string, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	err := h.reporter.Error(Errorf(pos, format, args...))
	h.err = err
	return err
}

// HandleWarning reports a non-fatal diagnostic at pos.
func (h *Handler) HandleWarning(pos Position, err error) {
	// No lock needed: warnings never touch h.err/h.errsReported.
	h.reporter.Warning(errorWithPosition{pos: pos, underlying: err})
}

// Error returns the accumulated result: nil if nothing was reported,
// ErrTokenizeFailed if errors were reported but the reporter never
// aborted, or the reporter's own abort error otherwise.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrTokenizeFailed
	}
	return h.err
}
