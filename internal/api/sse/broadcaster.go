package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/wordmove/internal/api/response"
	"github.com/mcoot/wordmove/internal/model"
)

// Event names
const (
	EventMoveAccepted = "move-accepted"
	EventGameDeleted  = "game-deleted"
)

// Broadcaster publishes game changes to subscribed clients
type Broadcaster struct {
	hubs   *HubManager
	logger *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubs *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubs:   hubs,
		logger: logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// MoveAccepted publishes the updated game and the move that produced it
func (b *Broadcaster) MoveAccepted(game *model.Game, move *model.MoveRecord) {
	hub := b.hubs.Lookup(game.ID)
	if hub == nil {
		return
	}

	b.publish(hub, EventMoveAccepted, response.PlayResult{
		Game: response.GameFromModel(game),
		Move: response.MoveFromModel(move),
	})
}

// GameDeleted tells subscribers the game is gone and closes its hub
func (b *Broadcaster) GameDeleted(gameID model.GameID) {
	hub := b.hubs.Lookup(gameID)
	if hub == nil {
		return
	}

	b.publish(hub, EventGameDeleted, map[string]string{"id": string(gameID)})
	b.hubs.Remove(gameID)
}

func (b *Broadcaster) publish(hub *Hub, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("failed to encode event",
			slog.String("event", event),
			slog.String("error", err.Error()))
		return
	}
	hub.Publish(event, data)
}
