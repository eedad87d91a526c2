package server

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/colorctx/internal/errors"
	"github.com/vango-dev/colorctx/pkg/colors"
	"github.com/vango-dev/colorctx/pkg/demo"
	"github.com/vango-dev/colorctx/pkg/render"
	"github.com/vango-dev/colorctx/pkg/vdom"
)

// Host runs one demo.App on a single event loop.
type Host struct {
	config  Config
	logger  *slog.Logger
	metrics *metrics
	tracer  trace.Tracer

	app   *demo.App
	unsub func()

	dispatchCh chan func()
	done       chan struct{}
	closed     atomic.Bool
	closeOnce  sync.Once

	// Owned by the event loop.
	handlers map[string]any
	body     string
	clients  map[*websocket.Conn]struct{}

	upgrader websocket.Upgrader
}

// New mounts the demo and prepares the host. Call Run to start the loop.
func New(config Config) *Host {
	config = config.withDefaults()

	h := &Host{
		config:     config,
		logger:     config.Logger.With("component", "host"),
		metrics:    newMetrics(config.Registry),
		tracer:     otel.Tracer(config.TracerName),
		app:        demo.New(config.App...),
		dispatchCh: make(chan func(), config.QueueSize),
		done:       make(chan struct{}),
		clients:    make(map[*websocket.Conn]struct{}),
	}

	// The host is the last subscriber, so renderers have updated by the time
	// the page is rebuilt.
	h.unsub = h.app.Store().Subscribe(h.onWrite)
	h.renderPage()

	return h
}

// App returns the mounted demo. Only touch it from inside Do.
func (h *Host) App() *demo.App {
	return h.app
}

// Run processes dispatched functions until ctx is cancelled or Close is
// called. It unmounts the app before returning.
func (h *Host) Run(ctx context.Context) {
	h.logger.Info("event loop started")
	defer h.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.done:
			return
		case fn := <-h.dispatchCh:
			h.safeExecute(fn)
		}
	}
}

// Close stops the event loop.
func (h *Host) Close() {
	h.closeOnce.Do(func() {
		h.closed.Store(true)
		close(h.done)
	})
}

func (h *Host) shutdown() {
	h.Close()
	h.unsub()
	h.app.Unmount()
	for conn := range h.clients {
		conn.Close()
	}
	h.clients = nil
	h.metrics.liveClients.Set(0)
	h.logger.Info("event loop stopped")
}

// Dispatch queues fn to run on the event loop. It reports false if the host
// is closed or the queue is full.
func (h *Host) Dispatch(fn func()) bool {
	if h.closed.Load() {
		return false
	}
	select {
	case h.dispatchCh <- fn:
		return true
	case <-h.done:
		return false
	default:
		h.logger.Warn("dispatch queue full, discarding callback")
		return false
	}
}

// Do runs fn on the event loop and waits for it to finish.
func (h *Host) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	queued := h.Dispatch(func() {
		defer close(finished)
		fn()
	})
	if !queued {
		return errors.New("E203")
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return errors.New("E203")
	}
}

// safeExecute runs fn, recovering and logging a panic so the loop survives.
func (h *Host) safeExecute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("handler panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}

// onWrite runs on the event loop for every store write.
func (h *Host) onWrite(v colors.Value) {
	h.metrics.writesTotal.Inc()
	h.logger.Debug("store write",
		"color", v.Color(),
		"subcolor", v.Subcolor(),
		"version", h.app.Store().Version())

	h.renderPage()
	h.broadcast()
}

// renderPage rebuilds the body HTML and handler registry.
func (h *Host) renderPage() {
	r := render.NewRenderer(render.RendererConfig{Pretty: h.config.Pretty})
	body, err := r.RenderToString(h.app.Render())
	if err != nil {
		h.logger.Error("render failed", "error", err)
		return
	}
	h.body = body
	h.handlers = r.Handlers()
	h.metrics.rendersTotal.Inc()
}

// Trigger dispatches one interaction and waits for it and its propagation
// to complete. It reports whether the handler suppressed the platform's
// default behavior.
func (h *Host) Trigger(ctx context.Context, hid, typ string) (bool, error) {
	prevented, _, err := h.interact(ctx, hid, typ)
	return prevented, err
}

// interact runs one interaction and captures the body it produced in the
// same loop turn, so no other interaction lands in between.
func (h *Host) interact(ctx context.Context, hid, typ string) (bool, string, error) {
	var (
		prevented bool
		body      string
		handleErr error
	)
	err := h.Do(ctx, func() {
		prevented, handleErr = h.handleEvent(ctx, hid, typ)
		body = h.body
	})
	if err != nil {
		return false, "", err
	}
	return prevented, body, handleErr
}

// handleEvent runs on the event loop.
func (h *Host) handleEvent(ctx context.Context, hid, typ string) (bool, error) {
	start := time.Now()
	_, span := h.tracer.Start(ctx, "colorctx.event",
		trace.WithAttributes(
			attribute.String("colorctx.hid", hid),
			attribute.String("colorctx.event", typ),
		))
	defer span.End()

	status := "ok"
	defer func() {
		h.metrics.eventsTotal.WithLabelValues(typ, status).Inc()
		h.metrics.eventDuration.WithLabelValues(typ).Observe(time.Since(start).Seconds())
	}()

	fail := func(err *errors.Error) (bool, error) {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Message)
		h.logger.Warn("event rejected", "hid", hid, "type", typ, "code", err.Code)
		return false, err
	}

	if typ != "click" && typ != "contextmenu" {
		return fail(errors.New("E202").WithDetail(fmt.Sprintf("type %q", typ)))
	}

	key := hid + "_on" + typ
	handler, ok := h.handlers[key]
	if !ok {
		return fail(errors.New("E201").WithDetail(key))
	}

	event := vdom.NewEvent(typ, hid)
	if err := vdom.Invoke(handler, event); err != nil {
		return fail(errors.New("E201").Wrap(err))
	}

	span.SetAttributes(attribute.Bool("colorctx.default_prevented", event.DefaultPrevented()))
	h.logger.Debug("event handled", "hid", hid, "type", typ, "prevented", event.DefaultPrevented())
	return event.DefaultPrevented(), nil
}

// Body returns the current body HTML.
func (h *Host) Body(ctx context.Context) (string, error) {
	var body string
	err := h.Do(ctx, func() { body = h.body })
	return body, err
}

// State returns the store state as seen from the event loop.
func (h *Host) State(ctx context.Context) (colors.State, error) {
	var st colors.State
	err := h.Do(ctx, func() { st = h.app.Store().State() })
	return st, err
}

// Handlers returns the handler keys of the current page.
func (h *Host) Handlers(ctx context.Context) ([]string, error) {
	var keys []string
	err := h.Do(ctx, func() {
		for key := range h.handlers {
			keys = append(keys, key)
		}
	})
	return keys, err
}
