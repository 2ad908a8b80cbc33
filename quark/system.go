package quark

import (
	"errors"
	"log/slog"
)

// ErrEffectPanic wraps a value recovered from a panicking effect.
var ErrEffectPanic = errors.New("quark: effect panicked")

type OnErrorFunc func(from any, err error)

type Option func(*System)

func WithLogger(logger *slog.Logger) Option {
	return func(sys *System) {
		if logger != nil {
			sys.logger = logger
		}
	}
}

func WithErrorHandler(onError OnErrorFunc) Option {
	return func(sys *System) {
		sys.onError = onError
	}
}

// System owns the ambient transaction slot shared by every atom created
// against it. Unqualified writes made while a batched call is running land in
// that transaction. A System is not safe for concurrent use.
type System struct {
	ambient *Transaction
	logger  *slog.Logger
	onError OnErrorFunc
}

func NewSystem(opts ...Option) *System {
	sys := &System{logger: slog.Default()}
	for _, opt := range opts {
		opt(sys)
	}
	return sys
}

// Ambient returns the transaction installed by the outermost running batched
// call, or nil.
func (sys *System) Ambient() *Transaction {
	return sys.ambient
}

func (sys *System) Logger() *slog.Logger {
	return sys.logger
}

func (sys *System) reportEffectError(from any, err error) {
	sys.logger.Error("observe effect failed", "error", err)
	if sys.onError != nil {
		sys.onError(from, err)
	}
}
