// Package realtime pushes board change events to open pages over
// websocket so they can re-render their lists.
package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// writeWait bounds a single write to a client.
	writeWait = 5 * time.Second
	// sendBuffer is how many events may queue for one client before it is
	// dropped as too slow.
	sendBuffer = 16
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type Event struct {
	Type string `json:"type"`
	At   int64  `json:"at"`
}

type client struct {
	conn Conn
	id   string
	send chan []byte
}

// Hub owns the set of connected clients. All access to the set happens on
// the Run goroutine; each client gets its own writer goroutine so a slow
// reader never holds up the others.
type Hub struct {
	register   chan *client
	unregister chan Conn
	broadcast  chan []byte
	done       chan struct{}
	clients    map[Conn]*client
	writers    sync.WaitGroup

	log     *zap.Logger
	onCount func(int)
}

func NewHub(log *zap.Logger, onCount func(int)) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan Conn),
		broadcast:  make(chan []byte, 16),
		done:       make(chan struct{}),
		clients:    make(map[Conn]*client),
		log:        log,
		onCount:    onCount,
	}
}

// Run serves registrations and broadcasts until ctx is cancelled, then
// closes every remaining client and waits for their writers to exit.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case cl := <-h.register:
			h.clients[cl.conn] = cl
			h.writers.Add(1)
			go h.writePump(cl)
			h.log.Debug("ws client registered", zap.String("client", cl.id), zap.Int("total", len(h.clients)))
			h.count()

		case c := <-h.unregister:
			h.drop(c)

		case msg := <-h.broadcast:
			for c, cl := range h.clients {
				select {
				case cl.send <- msg:
				default:
					h.log.Info("ws client too slow, dropping", zap.String("client", cl.id))
					h.drop(c)
				}
			}

		case <-ctx.Done():
			close(h.done)
			for c := range h.clients {
				h.drop(c)
			}
			h.writers.Wait()
			return
		}
	}
}

func (h *Hub) writePump(cl *client) {
	defer h.writers.Done()

	for msg := range cl.send {
		err := cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err == nil {
			err = cl.conn.WriteMessage(websocket.TextMessage, msg)
		}
		if err != nil {
			h.log.Info("ws write failed, dropping client", zap.String("client", cl.id), zap.Error(err))
			h.Unregister(cl.conn)
			return
		}
	}
}

func (h *Hub) drop(c Conn) {
	cl, ok := h.clients[c]
	if !ok {
		return
	}
	delete(h.clients, c)
	close(cl.send)
	_ = c.Close()
	h.log.Debug("ws client unregistered", zap.String("client", cl.id), zap.Int("total", len(h.clients)))
	h.count()
}

func (h *Hub) count() {
	if h.onCount != nil {
		h.onCount(len(h.clients))
	}
}

// Register adds c and returns the id it is logged under.
func (h *Hub) Register(c Conn) string {
	cl := &client{conn: c, id: uuid.NewString(), send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- cl:
	case <-h.done:
		_ = c.Close()
	}
	return cl.id
}

func (h *Hub) Unregister(c Conn) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish queues a change event for every client without blocking; when
// the queue is full the event is dropped. It implements catalog.Publisher.
func (h *Hub) Publish(topic string) {
	msg, err := json.Marshal(Event{Type: topic, At: time.Now().UnixMilli()})
	if err != nil {
		return
	}
	select {
	case <-h.done:
	case h.broadcast <- msg:
	default:
		h.log.Warn("ws broadcast queue full, dropping event", zap.String("type", topic))
	}
}
