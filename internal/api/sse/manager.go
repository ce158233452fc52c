package sse

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/wordmove/internal/model"
)

// HubManager owns the event hubs of all games
type HubManager struct {
	hubs   map[model.GameID]*Hub
	mu     sync.Mutex
	logger *slog.Logger
}

// NewHubManager creates a new HubManager
func NewHubManager(logger *slog.Logger) *HubManager {
	return &HubManager{
		hubs:   make(map[model.GameID]*Hub),
		logger: logger.With(slog.String("component", "sse")),
	}
}

// Subscribe registers sub with the game's hub and returns that hub. The
// registration happens under the manager lock, so CleanupEmpty cannot close
// the hub between lookup and registration.
func (m *HubManager) Subscribe(gameID model.GameID, sub *Subscriber) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		hub := m.hubLocked(gameID)
		if hub.Register(sub) {
			return hub
		}
		// Closed without going through the manager
		delete(m.hubs, gameID)
	}
}

// hubLocked returns the hub for a game, starting one if needed. m.mu must be held.
func (m *HubManager) hubLocked(gameID model.GameID) *Hub {
	if hub, ok := m.hubs[gameID]; ok {
		return hub
	}

	hub := NewHub(gameID, m.logger)
	m.hubs[gameID] = hub
	go hub.Run()
	return hub
}

// Lookup returns the hub for a game, or nil if nobody has subscribed
func (m *HubManager) Lookup(gameID model.GameID) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hubs[gameID]
}

// Remove closes and forgets a game's hub
func (m *HubManager) Remove(gameID model.GameID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[gameID]; ok {
		hub.Close()
		delete(m.hubs, gameID)
	}
}

// CleanupEmpty closes hubs that have no subscribers
func (m *HubManager) CleanupEmpty() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, hub := range m.hubs {
		if hub.SubscriberCount() == 0 {
			hub.Close()
			delete(m.hubs, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Debug("empty event hubs cleaned up", slog.Int("removed", removed))
	}
	return removed
}

// RunCleanup calls CleanupEmpty every interval until ctx is done
func (m *HubManager) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.CleanupEmpty()
		case <-ctx.Done():
			return
		}
	}
}

// Close closes every hub
func (m *HubManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, hub := range m.hubs {
		hub.Close()
		delete(m.hubs, id)
	}
}
