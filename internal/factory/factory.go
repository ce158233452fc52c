package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/wordmove/internal/api/sse"
	"github.com/mcoot/wordmove/internal/dependencies/clock"
	"github.com/mcoot/wordmove/internal/dependencies/ids"
	"github.com/mcoot/wordmove/internal/services/engine"
	"github.com/mcoot/wordmove/internal/services/game"
	"github.com/mcoot/wordmove/internal/services/geometry"
	"github.com/mcoot/wordmove/internal/services/scoring"
	"github.com/mcoot/wordmove/internal/storage"
	"github.com/mcoot/wordmove/internal/storage/memory"
	redisstorage "github.com/mcoot/wordmove/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage     storage.Storage
	StorageType string

	// External dependencies
	Clock clock.Clock
	IDs   ids.Generator

	// Services
	GeometryService *geometry.Service
	ScoringService  *scoring.Service
	Engine          *engine.Service
	GameController  *game.Controller

	// Event streaming
	HubManager *sse.HubManager
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), ids.New(), logger)
	app.StorageType = storageType
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, idGen ids.Generator, logger *slog.Logger) *App {
	geometryService := geometry.New()
	scoringService := scoring.New()
	eng := engine.New(geometryService, scoringService)
	gameController := game.NewController(store, eng, clk, idGen, logger)

	return &App{
		Storage:         store,
		StorageType:     StorageTypeMemory,
		Clock:           clk,
		IDs:             idGen,
		GeometryService: geometryService,
		ScoringService:  scoringService,
		Engine:          eng,
		GameController:  gameController,
		HubManager:      sse.NewHubManager(logger),
	}
}
