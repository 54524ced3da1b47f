package appmeta

import "log/slog"

// Option adjusts orchestration behavior without touching the Request.
type Option func(*settings)

type settings struct {
	logger *slog.Logger
}

func newSettings(opts []Option) *settings {
	s := &settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLogger routes diagnostic output, such as best-effort cleanup
// failures, through l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
