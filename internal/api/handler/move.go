package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/wordmove/internal/api/request"
	"github.com/mcoot/wordmove/internal/api/response"
	"github.com/mcoot/wordmove/internal/model"
	"github.com/mcoot/wordmove/internal/services/engine"
)

// MoveHandler evaluates moves that are not tied to a stored game
type MoveHandler struct {
	engine *engine.Service
}

// NewMoveHandler creates a new move handler
func NewMoveHandler(engine *engine.Service) *MoveHandler {
	return &MoveHandler{engine: engine}
}

// Evaluate handles POST /api/v1/moves/evaluate
func (h *MoveHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req request.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var previous model.Board
	if len(req.Previous) > 0 {
		parsed, err := model.ParseBoard(req.Previous)
		if err != nil {
			WriteError(w, err)
			return
		}
		previous = parsed
	}

	proposed, err := model.ParseBoard(req.Proposed)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.engine.Evaluate(previous, proposed)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EvaluationFromModel(result))
}
