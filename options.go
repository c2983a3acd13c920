package gnfa

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
	order  []string
	prune  bool
}

type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		logger: zap.NewNop(),
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithLogger Elimination steps are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEliminationOrder Eliminates the listed states first, in the given order. States not listed
// follow in construction order.
func WithEliminationOrder(states ...string) Option {
	return func(o *options) {
		o.order = append([]string(nil), states...)
	}
}

// WithPruning Removes states that are unreachable from start or cannot reach accept before
// elimination. The resulting expression does not change.
func WithPruning(prune bool) Option {
	return func(o *options) {
		o.prune = prune
	}
}
