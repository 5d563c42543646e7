package lending

// Logger receives registry events. *slog.Logger satisfies it.
//
// Info level: members, items and contracts added.
// Debug level: rejected requests with their cause.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. A nil logger keeps the default, which discards everything.
func WithLogger(logger Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock sets the clock used for creation dates.
func WithClock(clock Clock) Option {
	return func(r *Registry) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithIDGenerator replaces the ULID generator, mainly for deterministic tests.
func WithIDGenerator(ids IDGenerator) Option {
	return func(r *Registry) {
		if ids != nil {
			r.ids = ids
		}
	}
}

// WithStartDay starts the day counter at day instead of zero.
func WithStartDay(day int) Option {
	return func(r *Registry) {
		r.days.Set(day)
	}
}
