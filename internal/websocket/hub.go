// Package websocket pushes scrape task status updates to subscribed UI
// clients. The submit/poll HTTP API remains the source of truth; this
// channel only saves the frontend from tight polling loops.
package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"ismis-scheduler/internal/task"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The HTTP layer already applies the CORS policy; task statuses
	// carry no credentials.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is the wire envelope for pushed updates.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of connected clients and broadcasts task status
// updates to all of them.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *client),
		unregister: make(chan *client),
		logger:     logger,
	}
}

// Run is the hub's main loop; call it in its own goroutine.
func (hub *Hub) Run() {
	for {
		select {
		case c := <-hub.register:
			hub.clients[c] = true
			hub.logger.Info("websocket client connected", zap.Int("clients", len(hub.clients)))
		case c := <-hub.unregister:
			if _, ok := hub.clients[c]; ok {
				delete(hub.clients, c)
				close(c.send)
				hub.logger.Info("websocket client disconnected", zap.Int("clients", len(hub.clients)))
			}
		case payload := <-hub.broadcast:
			for c := range hub.clients {
				select {
				case c.send <- payload:
				default:
					delete(hub.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// PublishTaskStatus broadcasts a task status snapshot. Suitable as a
// task.Manager OnUpdate callback.
func (hub *Hub) PublishTaskStatus(status task.Status) {
	payload, err := json.Marshal(Message{Type: "task_status", Data: status})
	if err != nil {
		hub.logger.Error("cannot encode task status", zap.Error(err))
		return
	}
	select {
	case hub.broadcast <- payload:
	default:
		hub.logger.Warn("dropping task status update, broadcast queue full")
	}
}

// ServeWs upgrades an HTTP request and attaches the client to the hub.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{hub: hub, conn: conn, send: make(chan []byte, 16)}
	hub.register <- c

	go c.writePump()
	go c.readPump()
}

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
		// Clients only listen; reads exist to notice disconnects.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
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
