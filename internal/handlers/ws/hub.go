package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"github.com/eventra/eventra-backend/internal/domain/ports"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

// notification é o envelope serializado para os clientes conectados
type notification struct {
	Event     string    `json:"event"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// client é uma conexão WebSocket de um admin
type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub distribui notificações administrativas para as conexões ativas.
// Implementa ports.Notifier; Broadcast nunca bloqueia o chamador.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	logger     ports.Logger
}

var _ ports.Notifier = (*Hub)(nil)

// NewHub cria o hub de notificações
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, sendBufferSize),
		logger:     logger,
	}
}

// Run processa registros e broadcasts. Deve rodar em sua própria goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.logger.Debug("notification client connected", "clients", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// Cliente lento não pode atrasar os demais
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Broadcast publica um evento para todos os admins conectados
func (h *Hub) Broadcast(event string, payload any) {
	message, err := json.Marshal(notification{
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error("failed to encode notification", "event", event, "error", err)
		return
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("notification dropped, broadcast buffer full", "event", event)
	}
}

// writePump envia mensagens e pings para a conexão
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump descarta mensagens do cliente e detecta desconexão
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
