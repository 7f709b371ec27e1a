package partial

import "go.uber.org/zap"

type options struct {
	typeName string
	logger   *zap.Logger
}

type Option func(*options)

// WithTypeName marks the Partial as a named variant; the name replaces CanonicalName in String.
func WithTypeName(name string) Option {
	return func(o *options) {
		o.typeName = name
	}
}

// WithLogger traces construction, invocation and state restore at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
