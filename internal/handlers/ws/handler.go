package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/eventra/eventra-backend/internal/domain/ports"
)

// Handler faz o upgrade das conexões do stream de notificações.
// A autenticação e a checagem de permissão acontecem antes, no middleware.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   ports.Logger
}

// NewHandler cria o handler do stream de notificações
func NewHandler(hub *Hub, allowedOrigins []string, logger ports.Logger) *Handler {
	origins := make(map[string]bool, len(allowedOrigins))
	allowAll := false
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		origins[origin] = true
	}

	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowAll {
					return true
				}
				return origins[r.Header.Get("Origin")]
			},
		},
		logger: logger,
	}
}

// Serve faz o upgrade da conexão e registra o cliente no hub
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &client{
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}
