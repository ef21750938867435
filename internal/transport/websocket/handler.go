package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"

	"github.com/kaanhvc/catalog-api/internal/events"
)

// Handler streams catalog lifecycle events to connected clients.
type Handler struct {
	upgrader websocket.Upgrader
	logger   hclog.Logger
	eventBus *events.Bus
}

func NewHandler(logger hclog.Logger, eventBus *events.Bus) *Handler {
	return &Handler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger:   logger,
		eventBus: eventBus,
	}
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("Unable to upgrade to WebSocket", "error", err)
		return
	}
	defer conn.Close()

	subscriber := h.eventBus.Subscribe()
	defer h.eventBus.Unsubscribe(subscriber)

	done := make(chan struct{})
	go h.readPump(conn, done)

	for {
		select {
		case event, ok := <-subscriber:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug("Client write failed, closing", "error", err)
				return
			}
		case <-done:
			return
		}
	}
}

// readPump drains client frames so pings are answered and a close frame
// ends the stream.
func (h *Handler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
