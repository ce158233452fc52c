package model

import "errors"

// Common errors used across the application
var (
	// Move rejections
	ErrNoTilesPlaced              = errors.New("no tiles were placed")
	ErrNotInStraightLine          = errors.New("placed tiles must share a single row or column")
	ErrFirstMoveMustCoverCenter   = errors.New("first move must cover the center cell")
	ErrTilesNotConnected          = errors.New("every placed tile must touch another tile")
	ErrTilesMustConnectToExisting = errors.New("placed tiles must touch a tile already on the board")
	ErrExistingTileChanged        = errors.New("tiles already on the board cannot be removed or changed")

	// Board errors
	ErrInvalidBoard    = errors.New("invalid board")
	ErrInvalidLetter   = errors.New("invalid letter")
	ErrInvalidPosition = errors.New("invalid board position")
	ErrCellOccupied    = errors.New("cell is already occupied")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
)

var moveRejections = []error{
	ErrNoTilesPlaced,
	ErrNotInStraightLine,
	ErrFirstMoveMustCoverCenter,
	ErrTilesNotConnected,
	ErrTilesMustConnectToExisting,
	ErrExistingTileChanged,
}

// IsMoveRejection reports whether err is a geometric rejection of a proposed move
func IsMoveRejection(err error) bool {
	for _, target := range moveRejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
