package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/wordmove/internal/dependencies/clock"
	"github.com/mcoot/wordmove/internal/dependencies/ids"
	"github.com/mcoot/wordmove/internal/model"
	"github.com/mcoot/wordmove/internal/services/engine"
	"github.com/mcoot/wordmove/internal/storage"
)

// Controller owns game boards: it feeds the stored board and a proposed board
// to the engine and persists accepted moves
type Controller struct {
	storage storage.Storage
	engine  *engine.Service
	clock   clock.Clock
	ids     ids.Generator
	logger  *slog.Logger
	locks   *gameLocks
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	engine *engine.Service,
	clock clock.Clock,
	ids ids.Generator,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		engine:  engine,
		clock:   clock,
		ids:     ids,
		logger:  logger,
		locks:   newGameLocks(),
	}
}

// MoveOutcome is the result of an accepted move
type MoveOutcome struct {
	Game   *model.Game
	Move   *model.MoveRecord
	Result *model.MoveResult
}

// CreateGame starts a new game on an empty board
func (c *Controller) CreateGame(ctx context.Context) (*model.Game, error) {
	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.ids.NewID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created", slog.String("game_id", string(game.ID)))
	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListMoves returns the accepted moves of a game, oldest first
func (c *Controller) ListMoves(ctx context.Context, gameID model.GameID) ([]model.MoveRecord, error) {
	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return nil, err
	}
	return c.storage.GetMoves(ctx, gameID)
}

// DeleteGame removes a game and its history
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	unlock := c.locks.lock(gameID)
	defer unlock()

	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// PlayTiles places tiles on the game's current board and submits the result as a move
func (c *Controller) PlayTiles(ctx context.Context, gameID model.GameID, tiles []model.Tile) (*MoveOutcome, error) {
	return c.submit(ctx, gameID, func(current model.Board) (model.Board, error) {
		return current.WithTiles(tiles)
	})
}

// SubmitBoard submits a complete proposed board as the game's next move
func (c *Controller) SubmitBoard(ctx context.Context, gameID model.GameID, proposed model.Board) (*MoveOutcome, error) {
	return c.submit(ctx, gameID, func(model.Board) (model.Board, error) {
		return proposed, nil
	})
}

// submit evaluates and persists a move while holding the game's lock, so the
// stored board cannot change between validation and the save
func (c *Controller) submit(ctx context.Context, gameID model.GameID, propose func(model.Board) (model.Board, error)) (*MoveOutcome, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	proposed, err := propose(game.Board)
	if err != nil {
		return nil, err
	}

	result, err := c.engine.Evaluate(game.Board, proposed)
	if err != nil {
		if model.IsMoveRejection(err) {
			c.logger.Warn("move rejected",
				slog.String("game_id", string(gameID)),
				slog.String("reason", err.Error()),
			)
		}
		return nil, err
	}

	firstMove := game.IsFirstMove()
	now := c.clock.Now()
	game.Board = proposed
	game.Score += result.Score
	game.MoveCount++
	game.UpdatedAt = now

	move := &model.MoveRecord{
		GameID:   gameID,
		Number:   game.MoveCount,
		Tiles:    placedTiles(proposed, result.Placements),
		Words:    result.WordScores,
		Score:    result.Score,
		PlayedAt: now,
	}

	if err := c.storage.RecordMove(ctx, game, move); err != nil {
		c.logger.Error("failed to record move",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("move accepted",
		slog.String("game_id", string(gameID)),
		slog.Int("move", move.Number),
		slog.Bool("first_move", firstMove),
		slog.Int("score", move.Score),
		slog.Any("words", result.WordTexts()),
	)

	return &MoveOutcome{Game: game, Move: move, Result: result}, nil
}

func placedTiles(b model.Board, placements []model.Position) []model.Tile {
	tiles := make([]model.Tile, len(placements))
	for i, p := range placements {
		tiles[i] = model.Tile{Position: p, Letter: b.Get(p)}
	}
	return tiles
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListMoves(ctx context.Context, gameID model.GameID) ([]model.MoveRecord, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	PlayTiles(ctx context.Context, gameID model.GameID, tiles []model.Tile) (*MoveOutcome, error)
	SubmitBoard(ctx context.Context, gameID model.GameID, proposed model.Board) (*MoveOutcome, error)
}

var _ ControllerInterface = (*Controller)(nil)
