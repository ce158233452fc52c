package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordmove/internal/model"
	"github.com/mcoot/wordmove/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	// Refresh the history TTL alongside the game so both expire together
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, gameKey(game.ID), data, s.cfg.GameTTL)
	if s.cfg.GameTTL > 0 {
		pipe.Expire(ctx, movesKey(game.ID), s.cfg.GameTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	return s.client.Del(ctx, gameKey(id), movesKey(id)).Err()
}

// Move history operations

// RecordMove writes the game and pushes the move in a single transaction,
// so history never lags the stored board
func (s *Storage) RecordMove(ctx context.Context, game *model.Game, move *model.MoveRecord) error {
	gameData, err := json.Marshal(game)
	if err != nil {
		return err
	}
	moveData, err := json.Marshal(move)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, gameKey(game.ID), gameData, s.cfg.GameTTL)
	pipe.RPush(ctx, movesKey(game.ID), moveData)
	if s.cfg.GameTTL > 0 {
		pipe.Expire(ctx, movesKey(game.ID), s.cfg.GameTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMoves(ctx context.Context, gameID model.GameID) ([]model.MoveRecord, error) {
	items, err := s.client.LRange(ctx, movesKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	moves := make([]model.MoveRecord, 0, len(items))
	for _, item := range items {
		var move model.MoveRecord
		if err := json.Unmarshal([]byte(item), &move); err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}
	return moves, nil
}
