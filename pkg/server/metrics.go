package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for one Host.
type metrics struct {
	writesTotal   prometheus.Counter
	rendersTotal  prometheus.Counter
	eventsTotal   *prometheus.CounterVec
	eventDuration *prometheus.HistogramVec
	liveClients   prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		writesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: DefaultNamespace,
			Name:      "store_writes_total",
			Help:      "Writes published by the store",
		}),
		rendersTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: DefaultNamespace,
			Name:      "page_renders_total",
			Help:      "Page renders performed by the host",
		}),
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: DefaultNamespace,
			Name:      "events_total",
			Help:      "Interactions dispatched, by type and status",
		}, []string{"type", "status"}),
		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: DefaultNamespace,
			Name:      "event_duration_seconds",
			Help:      "Interaction handling duration in seconds, including propagation",
			Buckets:   prometheus.DefBuckets,
		}, []string{"type"}),
		liveClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: DefaultNamespace,
			Name:      "live_clients",
			Help:      "Connected live-update websocket clients",
		}),
	}
}
