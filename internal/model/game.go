package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Game is the authoritative board state of a single game along with its
// running total. The board only ever changes through accepted moves.
type Game struct {
	ID        GameID
	Board     Board
	Score     int // Sum of every accepted move's score
	MoveCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFirstMove returns true if no tiles have been placed yet
func (g *Game) IsFirstMove() bool {
	return g.Board.IsEmptyBoard()
}

// MoveRecord is the persisted history entry for an accepted move
type MoveRecord struct {
	GameID   GameID
	Number   int // 1-indexed
	Tiles    []Tile
	Words    []WordScore
	Score    int
	PlayedAt time.Time
}

// WordScore is a formed word with the points it contributed
type WordScore struct {
	Word  string
	Start Position
	Axis  Axis
	Score int
}

// MoveResult is the outcome of evaluating a proposed board against the previous one
type MoveResult struct {
	Placements []Position
	Words      []Word
	WordScores []WordScore
	Score      int
}

// WordTexts returns the formed words as plain strings, main word first
func (r *MoveResult) WordTexts() []string {
	result := make([]string, len(r.Words))
	for i, w := range r.Words {
		result[i] = w.Text
	}
	return result
}
