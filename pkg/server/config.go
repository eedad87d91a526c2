package server

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/colorctx/pkg/demo"
)

const (
	// DefaultQueueSize is the default capacity of the dispatch queue.
	DefaultQueueSize = 64

	// DefaultTracerName is the OpenTelemetry tracer name.
	DefaultTracerName = "colorctx"

	// DefaultNamespace is the Prometheus metrics namespace.
	DefaultNamespace = "colorctx"

	// DefaultWriteTimeout bounds each websocket write.
	DefaultWriteTimeout = 10 * time.Second
)

// Config configures a Host.
type Config struct {
	// Logger receives structured logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Registry receives the host's metrics and backs GET /metrics.
	// Defaults to a fresh registry per host.
	Registry *prometheus.Registry

	// TracerName names the tracer used for interaction spans.
	TracerName string

	// QueueSize is the dispatch queue capacity.
	QueueSize int

	// WriteTimeout is the deadline for one write to a live client. A client
	// that cannot accept a page within it is dropped.
	// Default: 10s.
	WriteTimeout time.Duration

	// Pretty enables indented HTML.
	Pretty bool

	// App configures the mounted demo.
	App []demo.Option
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Registry == nil {
		c.Registry = prometheus.NewRegistry()
	}
	if c.TracerName == "" {
		c.TracerName = DefaultTracerName
	}
	if c.QueueSize <= 0 {
		c.QueueSize = DefaultQueueSize
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	return c
}
