package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Option configures a Memory store.
type Option func(*options)

type options struct {
	name     string
	logger   logrus.FieldLogger
	registry prometheus.Registerer
}

func defaultOptions() options {
	return options{
		name:   "default",
		logger: logrus.StandardLogger(),
	}
}

// OptName names the store in log fields and metric labels.
func OptName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// OptLogger sets the logger used for bulk operations.
func OptLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// OptMetrics registers store metrics with the given registerer.
// Stores sharing a registerer must use distinct names.
func OptMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registry = reg
	}
}
