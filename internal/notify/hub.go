package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

type connection struct {
	salonID uuid.UUID
	conn    *websocket.Conn
	send    chan []byte
}

// Hub pushes delivered events to every websocket open for the event's salon.
type Hub struct {
	mu    sync.RWMutex
	salon map[uuid.UUID]map[*connection]struct{}
}

func NewHub() *Hub {
	return &Hub{salon: make(map[uuid.UUID]map[*connection]struct{})}
}

func (h *Hub) Name() string { return "websocket" }

// Deliver never fails: a slow or absent client just misses the push and
// still finds the event in its in-app list.
func (h *Hub) Deliver(_ context.Context, ev models.OutboxEvent) error {
	data, err := json.Marshal(newMessage(ev))
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.salon[ev.SalonID] {
		select {
		case c.send <- data:
		default:
		}
	}
	return nil
}

func (h *Hub) Connections(salonID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.salon[salonID])
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.salon[c.salonID]
	if !ok {
		set = make(map[*connection]struct{})
		h.salon[c.salonID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.salon[c.salonID]
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.salon, c.salonID)
	}
}

// ServeWS blocks until the client disconnects.
func (h *Hub) ServeWS(conn *websocket.Conn, salonID uuid.UUID) {
	c := &connection{
		salonID: salonID,
		conn:    conn,
		send:    make(chan []byte, 64),
	}

	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

// readPump only keeps the read deadline alive; clients do not send anything useful.
func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
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

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
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
