package memory

import (
	"context"
	"sync"

	"github.com/mcoot/wordmove/internal/model"
	"github.com/mcoot/wordmove/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games map[model.GameID]model.Game
	moves map[model.GameID][]model.MoveRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]model.Game),
		moves: make(map[model.GameID][]model.MoveRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

// SaveGame stores a copy of the game, so later changes by the caller are not visible
func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = *game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	delete(s.moves, id)
	return nil
}

// Move history operations

func (s *Storage) RecordMove(ctx context.Context, game *model.Game, move *model.MoveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = *game
	s.moves[game.ID] = append(s.moves[game.ID], *move)
	return nil
}

func (s *Storage) GetMoves(ctx context.Context, gameID model.GameID) ([]model.MoveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	moves := s.moves[gameID]
	result := make([]model.MoveRecord, len(moves))
	copy(result, moves)
	return result, nil
}
