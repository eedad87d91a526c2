package server

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/colorctx/internal/errors"
	"github.com/vango-dev/colorctx/pkg/render"
)

// HeaderDefaultPrevented reports, on POST /events responses, whether the
// handler suppressed the platform default.
const HeaderDefaultPrevented = "X-Default-Prevented"

// Handler returns the HTTP routes for the host.
func (h *Host) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.handlePage)
	r.Get("/fragment", h.handleFragment)
	r.Post("/events", h.handleEvents)
	r.Get("/live", h.handleLive)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(h.config.Registry, promhttp.HandlerOpts{}))

	return r
}

func (h *Host) handlePage(w http.ResponseWriter, r *http.Request) {
	body, err := h.Body(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	var buf bytes.Buffer
	page := render.PageData{
		Title:    "colorctx",
		BodyHTML: body,
		Styles:   []string{pageStyle},
		Script:   pageScript,
	}
	renderer := render.NewRenderer(render.RendererConfig{})
	if err := renderer.RenderPage(&buf, page); err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (h *Host) handleFragment(w http.ResponseWriter, r *http.Request) {
	body, err := h.Body(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(body))
}

func (h *Host) handleEvents(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	prevented, body, err := h.interact(r.Context(), r.PostForm.Get("hid"), r.PostForm.Get("type"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set(HeaderDefaultPrevented, strconv.FormatBool(prevented))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(body))
}

// writeError maps host errors to HTTP status codes.
func (h *Host) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.HasCode(err, "E201"):
		status = http.StatusNotFound
	case errors.HasCode(err, "E202"):
		status = http.StatusBadRequest
	case errors.HasCode(err, "E203"):
		status = http.StatusServiceUnavailable
	case err == context.Canceled || err == context.DeadlineExceeded:
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
	}
	http.Error(w, err.Error(), status)
}

// ListenAndServe runs the event loop and an HTTP server on addr until ctx is
// cancelled, then shuts both down.
func (h *Host) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		h.Run(ctx)
	}()

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
	h.Close()
	<-loopDone

	if err == http.ErrServerClosed {
		err = nil
	}
	return err
}
