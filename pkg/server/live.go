package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// handleLive upgrades to a websocket and registers the connection for
// broadcasts. The client receives the current body immediately.
func (h *Host) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	// Writes happen only on the event loop.
	err = h.Do(r.Context(), func() {
		h.clients[conn] = struct{}{}
		h.metrics.liveClients.Inc()
		h.send(conn)
	})
	if err != nil {
		conn.Close()
		return
	}

	// Read until the client goes away; incoming messages are ignored.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.Dispatch(func() { h.drop(conn) })
}

// broadcast sends the current body to every live client. Runs on the loop.
func (h *Host) broadcast() {
	for conn := range h.clients {
		h.send(conn)
	}
}

// send writes the body to conn, dropping it on failure or timeout.
// Runs on the loop.
func (h *Host) send(conn *websocket.Conn) {
	if err := conn.SetWriteDeadline(time.Now().Add(h.config.WriteTimeout)); err != nil {
		h.drop(conn)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(h.body)); err != nil {
		h.logger.Debug("live write failed", "error", err)
		h.drop(conn)
	}
}

// drop forgets conn. Runs on the loop.
func (h *Host) drop(conn *websocket.Conn) {
	if _, ok := h.clients[conn]; !ok {
		return
	}
	delete(h.clients, conn)
	h.metrics.liveClients.Dec()
	conn.Close()
}
