package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordmove/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest             = "INVALID_REQUEST"
	CodeInvalidBoard               = "INVALID_BOARD"
	CodeInvalidLetter              = "INVALID_LETTER"
	CodeInvalidPosition            = "INVALID_POSITION"
	CodeCellOccupied               = "CELL_OCCUPIED"
	CodeGameNotFound               = "GAME_NOT_FOUND"
	CodeNoTilesPlaced              = "NO_TILES_PLACED"
	CodeNotInStraightLine          = "NOT_IN_STRAIGHT_LINE"
	CodeFirstMoveMustCoverCenter   = "FIRST_MOVE_MUST_COVER_CENTER"
	CodeTilesNotConnected          = "TILES_NOT_CONNECTED"
	CodeTilesMustConnectToExisting = "TILES_MUST_CONNECT_TO_EXISTING"
	CodeExistingTileChanged        = "EXISTING_TILE_CHANGED"
	CodeInternalError              = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// moveRejection builds a 422 carrying the engine's own message
func moveRejection(code string, err error) *httpError {
	return &httpError{http.StatusUnprocessableEntity, APIError{code, err.Error()}}
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Move rejections
	case errors.Is(err, model.ErrNoTilesPlaced):
		return moveRejection(CodeNoTilesPlaced, err)
	case errors.Is(err, model.ErrNotInStraightLine):
		return moveRejection(CodeNotInStraightLine, err)
	case errors.Is(err, model.ErrFirstMoveMustCoverCenter):
		return moveRejection(CodeFirstMoveMustCoverCenter, err)
	case errors.Is(err, model.ErrTilesNotConnected):
		return moveRejection(CodeTilesNotConnected, err)
	case errors.Is(err, model.ErrTilesMustConnectToExisting):
		return moveRejection(CodeTilesMustConnectToExisting, err)
	case errors.Is(err, model.ErrExistingTileChanged):
		return moveRejection(CodeExistingTileChanged, err)

	// Board errors
	case errors.Is(err, model.ErrInvalidBoard):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBoard, err.Error()}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Letter must be A-Z"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, err.Error()}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusConflict, APIError{CodeCellOccupied, err.Error()}}

	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
