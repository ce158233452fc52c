package sse

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mcoot/wordmove/internal/model"
)

// Buffer size for outgoing messages per subscriber
const sendBufferSize = 64

// Subscriber is one connected event stream
type Subscriber struct {
	remoteAddr  string
	send        chan []byte
	connectedAt time.Time
}

// NewSubscriber creates a subscriber for a connection from remoteAddr
func NewSubscriber(remoteAddr string) *Subscriber {
	return &Subscriber{
		remoteAddr:  remoteAddr,
		send:        make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
	}
}

// Messages delivers formatted events until the hub drops the subscriber
func (s *Subscriber) Messages() <-chan []byte {
	return s.send
}

// Hub fans events out to every subscriber of a single game
type Hub struct {
	gameID      model.GameID
	subscribers map[*Subscriber]struct{}
	mu          sync.RWMutex
	logger      *slog.Logger

	closed     bool
	unregister chan *Subscriber
	broadcast  chan []byte
	done       chan struct{}
	closeOnce  sync.Once
}

// NewHub creates a hub for a game. Run must be started for it to deliver events.
func NewHub(gameID model.GameID, logger *slog.Logger) *Hub {
	return &Hub{
		gameID:      gameID,
		subscribers: make(map[*Subscriber]struct{}),
		logger:      logger.With(slog.String("game_id", string(gameID))),
		unregister:  make(chan *Subscriber),
		broadcast:   make(chan []byte, 256),
		done:        make(chan struct{}),
	}
}

// Run is the hub's event loop. It returns once the hub is closed.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.unregister:
			h.mu.Lock()
			_, ok := h.subscribers[sub]
			if ok {
				delete(h.subscribers, sub)
				close(sub.send)
			}
			count := len(h.subscribers)
			h.mu.Unlock()
			if ok {
				h.logger.Debug("event subscriber left",
					slog.String("remote_addr", sub.remoteAddr),
					slog.Duration("connected_for", time.Since(sub.connectedAt)),
					slog.Int("subscribers", count))
			}

		case message := <-h.broadcast:
			h.deliver(message)

		case <-h.done:
			h.drain()
			h.mu.Lock()
			h.closed = true
			count := len(h.subscribers)
			for sub := range h.subscribers {
				close(sub.send)
				delete(h.subscribers, sub)
			}
			h.mu.Unlock()
			h.logger.Debug("event hub closed", slog.Int("disconnected", count))
			return
		}
	}
}

func (h *Hub) deliver(message []byte) {
	h.mu.RLock()
	dropped := 0
	for sub := range h.subscribers {
		select {
		case sub.send <- message:
		default:
			dropped++
		}
	}
	h.mu.RUnlock()
	if dropped > 0 {
		h.logger.Warn("event dropped for slow subscribers", slog.Int("dropped", dropped))
	}
}

// drain delivers events published before the hub was closed
func (h *Hub) drain() {
	for {
		select {
		case message := <-h.broadcast:
			h.deliver(message)
		default:
			return
		}
	}
}

// Register adds a subscriber. It returns false if the hub is already closed.
// The subscriber counts towards SubscriberCount as soon as Register returns.
func (h *Hub) Register(sub *Subscriber) bool {
	select {
	case <-h.done:
		return false
	default:
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false
	}
	h.subscribers[sub] = struct{}{}
	count := len(h.subscribers)
	h.mu.Unlock()

	h.logger.Debug("event subscriber joined",
		slog.String("remote_addr", sub.remoteAddr),
		slog.Int("subscribers", count))
	return true
}

// Unregister removes a subscriber. It is a no-op once the hub is closed.
func (h *Hub) Unregister(sub *Subscriber) {
	select {
	case h.unregister <- sub:
	case <-h.done:
	}
}

// Publish queues an event for every subscriber
func (h *Hub) Publish(event string, data []byte) {
	select {
	case h.broadcast <- formatEvent(event, data):
	case <-h.done:
	default:
		h.logger.Warn("event dropped, hub buffer full", slog.String("event", event))
	}
}

// Close disconnects every subscriber and stops the hub
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// SubscriberCount returns the number of connected subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// formatEvent renders a server-sent event. Every data line gets its own
// "data: " prefix.
func formatEvent(event string, data []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("event: ")
	buf.WriteString(event)
	buf.WriteByte('\n')

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	for _, line := range strings.Split(text, "\n") {
		buf.WriteString("data: ")
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}
