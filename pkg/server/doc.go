// Package server is a development host for the colorctx demo.
//
// A Host owns one mounted demo.App and a single event-loop goroutine. Every
// interaction (an HTTP event post or a websocket snapshot) is
// dispatched onto that loop, so a write and its propagation to every renderer
// complete before the next interaction runs.
//
// Routes:
//
//	GET  /          full HTML page
//	GET  /fragment  current body HTML
//	POST /events    form fields hid and type (click or contextmenu)
//	GET  /live      websocket; receives the body HTML after every write
//	GET  /metrics   Prometheus metrics
//	GET  /healthz   liveness
//
// Usage:
//
//	h := server.New(server.Config{Logger: logger})
//	go h.Run(ctx)
//	http.ListenAndServe(":3000", h.Handler())
package server
