package reporter

import "go.uber.org/zap"

// NewZapReporter builds a Reporter that logs every error and warning
// through logger rather than silently dropping it; errors still never
// abort the batch they occur in, matching the CLI's warn-and-skip
// policy for ParseError and IOError.
func NewZapReporter(logger *zap.Logger) Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return NewReporter(
		func(err ErrorWithPos) error {
			logger.Warn("tokenize error", zap.String("pos", err.GetPosition().String()), zap.Error(err))
			return nil
		},
		func(err ErrorWithPos) {
			logger.Warn("tokenize warning", zap.String("pos", err.GetPosition().String()), zap.Error(err))
		},
	)
}
