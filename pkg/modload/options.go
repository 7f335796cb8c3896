package modload

import (
	"github.com/bft-labs/implement/pkg/codec"
	"github.com/bft-labs/implement/pkg/log"
)

// Option configures a Loader.
type Option func(*options)

type options struct {
	codecs []codec.Codec
	logger log.Logger
}

func defaultOptions() options {
	return options{
		codecs: codec.Default(),
		logger: log.NewNoopLogger(),
	}
}

// WithCodecs replaces the codec list. Order is probe order.
func WithCodecs(codecs ...codec.Codec) Option {
	return func(o *options) {
		if len(codecs) > 0 {
			o.codecs = codecs
		}
	}
}

// WithLogger sets the logger used for cache and resolution diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
