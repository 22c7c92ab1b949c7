package plan

import "github.com/sirupsen/logrus"

// Option configures a run.
type Option func(*options)

type options struct {
	logger logrus.FieldLogger
}

func buildOptions(opts []Option) options {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// OptLogger sets the logger that receives per-step debug output.
func OptLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
