package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/comigor/saturday-go/internal/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

const writeTimeout = 10 * time.Second

// handleStream upgrades to a WebSocket and pushes a fresh state snapshot
// on every controller change. This is the renderer's subscription: it
// receives the snapshot once on connect, then again whenever the
// conversation log, presence signal or session state moves.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.L.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sub := h.hub.subscribe()
	defer h.hub.unsubscribe(sub)

	// Read pump: the client sends nothing meaningful, but reading is how
	// close frames are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := h.writeSnapshot(conn); err != nil {
		return
	}

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case <-sub:
			if err := h.writeSnapshot(conn); err != nil {
				return
			}
		}
	}
}

func (h *Handler) writeSnapshot(conn *websocket.Conn) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(h.snapshot())
}
