package store

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	quads   prometheus.Gauge
	added   prometheus.Counter
	deleted prometheus.Counter
	matches prometheus.Counter
}

func newMetrics(reg prometheus.Registerer, name string) *metrics {
	if reg == nil {
		return nil
	}
	labels := prometheus.Labels{"store": name}
	return &metrics{
		quads: register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "rdfpath_store_quads",
			Help:        "Number of quads currently held by the store",
			ConstLabels: labels,
		})),
		added: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "rdfpath_store_added_total",
			Help:        "Total number of quads added to the store",
			ConstLabels: labels,
		})),
		deleted: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "rdfpath_store_deleted_total",
			Help:        "Total number of quads removed from the store",
			ConstLabels: labels,
		})),
		matches: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "rdfpath_store_match_total",
			Help:        "Total number of pattern match calls",
			ConstLabels: labels,
		})),
	}
}

// register returns the already registered collector when an identical one exists.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *metrics) onAdd(size int) {
	if m == nil {
		return
	}
	m.added.Inc()
	m.quads.Set(float64(size))
}

func (m *metrics) onDelete(size int) {
	if m == nil {
		return
	}
	m.deleted.Inc()
	m.quads.Set(float64(size))
}

func (m *metrics) onMatch() {
	if m == nil {
		return
	}
	m.matches.Inc()
}
