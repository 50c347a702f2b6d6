package usecase

import (
	"io"
	"log/slog"
	"time"
)

type settings struct {
	log *slog.Logger
	now func() time.Time
}

// Option configures the ambient collaborators shared by the palette use cases.
type Option func(*settings)

func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
