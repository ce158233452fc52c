package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordmove/internal/api/handler"
	"github.com/mcoot/wordmove/internal/api/middleware"
	"github.com/mcoot/wordmove/internal/api/response"
	"github.com/mcoot/wordmove/internal/api/sse"
	"github.com/mcoot/wordmove/internal/services/engine"
	"github.com/mcoot/wordmove/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	Engine         *engine.Service
	GameController *game.Controller
	HubManager     *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	moveHandler := handler.NewMoveHandler(cfg.Engine)
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.HubManager, cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Stateless evaluation
	api.HandleFunc("/moves/evaluate", moveHandler.Evaluate).Methods(http.MethodPost)

	// Game routes
	games := api.PathPrefix("/games").Subrouter()
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("/{id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	games.HandleFunc("/{id}/moves", gameHandler.Play).Methods(http.MethodPost)
	games.HandleFunc("/{id}/moves", gameHandler.ListMoves).Methods(http.MethodGet)
	games.HandleFunc("/{id}/events", gameHandler.Events).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
