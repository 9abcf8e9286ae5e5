// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Connection events
const (
	connOpened    = "opened"
	connClosed    = "closed"
	connAbandoned = "abandoned"
)

// Metrics counts calls and connection churn. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	calls       *prometheus.CounterVec
	connections *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

// NewMetrics builds the client collectors and registers them on reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dapi",
			Subsystem: "client",
			Name:      "calls_total",
			Help:      "Remote calls by method and outcome.",
		}, []string{"method", "outcome"}),
		connections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dapi",
			Subsystem: "client",
			Name:      "connections_total",
			Help:      "Connection lifecycle events by transport.",
		}, []string{"transport", "event"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dapi",
			Subsystem: "client",
			Name:      "call_duration_seconds",
			Help:      "Remote call latency, connection setup included.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.calls, m.connections, m.latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeCall(method string, outcome Outcome, d time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(method, outcome.String()).Inc()
	m.latency.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Metrics) connectionEvent(kind TransportKind, event string) {
	if m == nil {
		return
	}
	m.connections.WithLabelValues(string(kind), event).Inc()
}
