package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/yeswin/wingo/internal/domain"
)

// Event is the wire envelope pushed to subscribers.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type OutcomeEvent struct {
	Track    domain.Track `json:"track"`
	PeriodID int64        `json:"period_id"`
	Number   int          `json:"number"`
	Size     domain.Size  `json:"size"`
	Color    domain.Color `json:"color"`
}

type WagerEvent struct {
	ID        int64        `json:"id"`
	Track     domain.Track `json:"track"`
	PeriodID  int64        `json:"period_id"`
	Selection string       `json:"selection"`
	Amount    float64      `json:"amount"`
	Status    string       `json:"status"`
	Payout    float64      `json:"payout"`
}

// OutcomeTopic is the subscription key for a track's published results.
func OutcomeTopic(track domain.Track) string {
	return fmt.Sprintf("outcomes:%s", track)
}

// WagerTopic is the subscription key for one user's wager stream.
func WagerTopic(userID int) string {
	return fmt.Sprintf("bets:%d", userID)
}

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 16
)

type client struct {
	id    string
	topic string
	conn  *websocket.Conn
	send  chan []byte
}

type message struct {
	topic   string
	payload []byte
}

// Hub fans published outcomes and wager updates out to websocket
// subscribers, keyed by topic. Dropped messages are acceptable: the
// feeds are display streams, the stores stay authoritative.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}

	broadcast  chan message
	register   chan *client
	unregister chan *client

	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		broadcast:  make(chan message, 256),
		register:   make(chan *client),
		unregister: make(chan *client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
			zap.L().Debug("ws client connected", zap.String("clientID", c.id), zap.String("topic", c.topic))
		case c := <-h.unregister:
			h.drop(c)
		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) deliver(msg message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if c.topic != msg.topic {
			continue
		}
		select {
		case c.send <- msg.payload:
		default:
			// Slow consumer; skip rather than block the hub.
		}
	}
}

func (h *Hub) publish(topic string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("can't marshal ws event", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- message{topic: topic, payload: payload}:
	default:
		zap.L().Warn("ws broadcast buffer full, dropping event", zap.String("topic", topic))
	}
}

func (h *Hub) BroadcastOutcome(o *domain.Outcome) {
	h.publish(OutcomeTopic(o.Track), Event{
		Type: "outcome",
		Data: OutcomeEvent{
			Track:    o.Track,
			PeriodID: o.PeriodID,
			Number:   o.Number,
			Size:     o.Size,
			Color:    o.Color,
		},
	})
}

func (h *Hub) BroadcastWager(w *domain.Wager) {
	h.publish(WagerTopic(w.UserID), Event{
		Type: "wager",
		Data: WagerEvent{
			ID:        w.ID,
			Track:     w.Track,
			PeriodID:  w.PeriodID,
			Selection: w.Selection.Value(),
			Amount:    w.Amount,
			Status:    w.Status,
			Payout:    w.Payout,
		},
	})
}

// ServeWS upgrades the request and subscribes the connection to a topic.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, topic string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Error("ws upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		id:    uuid.NewString(),
		topic: topic,
		conn:  conn,
		send:  make(chan []byte, sendBufferSize),
	}
	h.register <- c

	go c.writePump()
	go c.readPump(h)
}

func (c *client) writePump() {
	defer c.conn.Close()
	for payload := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump discards inbound frames; the feeds are one-way. It exists to
// observe the close handshake.
func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
