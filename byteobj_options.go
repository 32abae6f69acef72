package byteobj

import (
	"github.com/rs/zerolog"
)

// Option configures a Runtime.
type Option func(*options)

type options struct {
	logger       zerolog.Logger
	maxBytesSize int64
}

func collectOptions(opts ...Option) *options {
	o := &options{logger: discardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithLogger sets the logger used by the runtime and, through the context,
// by the dispatcher.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxBytesSize limits the size of bytes objects the runtime will
// construct. Zero, the default, means unlimited.
func WithMaxBytesSize(size int64) Option {
	return func(o *options) {
		o.maxBytesSize = size
	}
}
