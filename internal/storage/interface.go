package storage

import (
	"context"

	"github.com/mcoot/wordmove/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Move history operations

	// RecordMove saves the updated game and appends its move in one commit
	RecordMove(ctx context.Context, game *model.Game, move *model.MoveRecord) error
	GetMoves(ctx context.Context, gameID model.GameID) ([]model.MoveRecord, error)
}
