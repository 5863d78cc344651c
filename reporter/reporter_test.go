package reporter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandlerWarningNeverAborts(t *testing.T) {
	h := NewHandler(nil)
	h.HandleWarning(Position{Path: "a.py", Line: 1}, errors.New("fallback to unknown kind"))
	assert.NoError(t, h.Error())
}

func TestHandlerErrorAccumulatesUntilAbort(t *testing.T) {
	h := NewHandler(NewReporter(func(ErrorWithPos) error { return nil }, nil))

	require.NoError(t, h.HandleErrorf(Position{Path: "a.py"}, "read failed: %s", "disk error"))
	assert.ErrorIs(t, h.Error(), ErrTokenizeFailed)
}

func TestHandlerErrorAbortsWhenReporterReturnsError(t *testing.T) {
	abort := errors.New("stop")
	h := NewHandler(NewReporter(func(ErrorWithPos) error { return abort }, nil))

	err := h.HandleErrorf(Position{Path: "a.py"}, "boom")
	assert.ErrorIs(t, err, abort)
	assert.ErrorIs(t, h.Error(), abort)
}

func TestNewZapReporterLogsWarningsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	h := NewHandler(NewZapReporter(logger))
	h.HandleWarning(Position{Path: "a.py", Line: 3}, errors.New("fallback to unknown kind"))
	require.NoError(t, h.HandleErrorf(Position{Path: "b.py"}, "could not read file"))

	assert.Equal(t, 2, logs.Len())
	for _, entry := range logs.All() {
		assert.Equal(t, zapcore.WarnLevel, entry.Level)
	}
}

func TestNewZapReporterAcceptsNilLogger(t *testing.T) {
	h := NewHandler(NewZapReporter(nil))
	h.HandleWarning(Position{Path: "a.py"}, errors.New("ignored"))
	assert.NoError(t, h.Error())
}
