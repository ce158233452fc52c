package request

import (
	"fmt"

	"github.com/mcoot/wordmove/internal/model"
)

// Tile is a single letter to place
type Tile struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

// PlayRequest is the request body for playing a move.
// Exactly one of Tiles or Board must be set.
type PlayRequest struct {
	Tiles []Tile   `json:"tiles,omitempty"`
	Board []string `json:"board,omitempty"`
}

// EvaluateRequest is the request body for scoring a move without a game.
// An omitted previous board means an empty board.
type EvaluateRequest struct {
	Previous []string `json:"previous,omitempty"`
	Proposed []string `json:"proposed"`
}

// ToModelTiles converts request tiles to model tiles
func ToModelTiles(tiles []Tile) ([]model.Tile, error) {
	result := make([]model.Tile, 0, len(tiles))
	for _, t := range tiles {
		letters := []rune(t.Letter)
		if len(letters) != 1 {
			return nil, fmt.Errorf("%w: %q must be a single letter", model.ErrInvalidLetter, t.Letter)
		}
		result = append(result, model.Tile{
			Position: model.Position{Row: t.Row, Col: t.Col},
			Letter:   letters[0],
		})
	}
	return result, nil
}
