// SPDX-License-Identifier: MIT

package check

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the checker's collectors. A nil *metrics records nothing.
type metrics struct {
	checks     *prometheus.CounterVec
	narrowings prometheus.Counter
	nodes      prometheus.Histogram
	cacheHits  prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}
	m := &metrics{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "simplicity_checks_total",
				Help: "Rules and nets checked, by verdict.",
			},
			[]string{"kind", "verdict"},
		),
		narrowings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "simplicity_narrowings_total",
			Help: "Labels narrowed while saturating diagrams.",
		}),
		nodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "simplicity_diagram_nodes",
			Help:    "Nodes per diagram.",
			Buckets: prometheus.ExponentialBuckets(2, 2, 10),
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "simplicity_cache_hits_total",
			Help: "Verdicts served from the cache.",
		}),
	}
	for _, c := range []prometheus.Collector{m.checks, m.narrowings, m.nodes, m.cacheHits} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("check: register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *metrics) observe(v Verdict) {
	if m == nil {
		return
	}
	m.checks.WithLabelValues(string(v.Kind), v.Label()).Inc()
	if v.Cached {
		m.cacheHits.Inc()
		return
	}
	m.narrowings.Add(float64(v.Stats.Narrowed))
	m.nodes.Observe(float64(v.Nodes))
}
