package events

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"clockalert/pkg/logger"
	"clockalert/pkg/protocol"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	pingPeriod = 25 * time.Second
	writeWait  = 5 * time.Second
)

type Client struct {
	ID   string
	Conn *websocket.Conn
	mu   sync.Mutex
}

func (c *Client) write(frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteMessage(websocket.TextMessage, frame)
}

// Hub fans events out to every connected UI client.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client
	upgrader websocket.Upgrader
	log      *logger.Logger
}

func NewHub(l *logger.Logger) *Hub {
	if l == nil {
		l = logger.Discard()
	}
	return &Hub{
		clients: make(map[string]*Client),
		upgrader: websocket.Upgrader{
			// the API only listens on loopback; the webview origin varies by platform
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: l,
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c.ID] = c
	h.mu.Unlock()
	h.log.Debug("events: client connected", slog.String("client", c.ID))
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c.ID]
	delete(h.clients, c.ID)
	h.mu.Unlock()
	if ok {
		_ = c.Conn.Close()
		h.log.Debug("events: client disconnected", slog.String("client", c.ID))
	}
}

// Len reports how many clients are connected.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Emit sends event with alarmID as payload to all clients. Clients whose
// write fails are dropped.
func (h *Hub) Emit(event protocol.Event, alarmID int64) {
	msg, err := protocol.NewMessage(event, alarmID)
	if err != nil {
		h.log.Error("events: build message", logger.Err(err))
		return
	}
	frame, err := msg.Encode()
	if err != nil {
		h.log.Error("events: encode message", logger.Err(err))
		return
	}

	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(frame); err != nil {
			h.log.Warn("events: write failed", slog.String("client", c.ID), logger.Err(err))
			h.Unregister(c)
		}
	}
}

// ServeWS upgrades the request and keeps the client registered until its
// read loop ends.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &Client{ID: uuid.NewString(), Conn: conn}
	h.Register(cl)

	done := make(chan struct{})
	defer close(done)

	go func() {
		t := time.NewTicker(pingPeriod)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					h.Unregister(cl)
					return
				}
			}
		}
	}()

	// clients never send anything meaningful; reading only detects close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.Unregister(cl)
			return
		}
	}
}
