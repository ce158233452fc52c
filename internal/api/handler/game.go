package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordmove/internal/api/request"
	"github.com/mcoot/wordmove/internal/api/response"
	"github.com/mcoot/wordmove/internal/api/sse"
	"github.com/mcoot/wordmove/internal/model"
	"github.com/mcoot/wordmove/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	hubs           *sse.HubManager
	broadcaster    *sse.Broadcaster
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, hubs *sse.HubManager, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		hubs:           hubs,
		broadcaster:    sse.NewBroadcaster(hubs, logger),
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.CreateGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.gameController.DeleteGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	h.broadcaster.GameDeleted(id)

	response.NoContent(w)
}

// Play handles POST /api/v1/games/{id}/moves
func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var (
		outcome *game.MoveOutcome
		err     error
	)
	switch {
	case len(req.Tiles) > 0 && len(req.Board) > 0:
		WriteError(w, NewInvalidRequestError("provide either tiles or board, not both"))
		return
	case len(req.Board) > 0:
		proposed, parseErr := model.ParseBoard(req.Board)
		if parseErr != nil {
			WriteError(w, parseErr)
			return
		}
		outcome, err = h.gameController.SubmitBoard(r.Context(), id, proposed)
	default:
		tiles, convErr := request.ToModelTiles(req.Tiles)
		if convErr != nil {
			WriteError(w, convErr)
			return
		}
		outcome, err = h.gameController.PlayTiles(r.Context(), id, tiles)
	}
	if err != nil {
		WriteError(w, err)
		return
	}
	h.broadcaster.MoveAccepted(outcome.Game, outcome.Move)

	response.JSON(w, http.StatusCreated, response.PlayResult{
		Game: response.GameFromModel(outcome.Game),
		Move: response.MoveFromModel(outcome.Move),
	})
}

// ListMoves handles GET /api/v1/games/{id}/moves
func (h *GameHandler) ListMoves(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	moves, err := h.gameController.ListMoves(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MovesFromModel(moves))
}

// Events handles GET /api/v1/games/{id}/events
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if _, err := h.gameController.GetGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	sse.Serve(w, r, h.hubs, id)
}
