package response

import (
	"time"

	"github.com/mcoot/wordmove/internal/model"
)

// Position is a board cell
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionFromModel converts a model.Position
func PositionFromModel(p model.Position) Position {
	return Position{Row: p.Row, Col: p.Col}
}

// Game represents a game in API responses
type Game struct {
	ID        string    `json:"id"`
	Board     []string  `json:"board"`
	Score     int       `json:"score"`
	MoveCount int       `json:"move_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	return Game{
		ID:        string(g.ID),
		Board:     g.Board.Rows(),
		Score:     g.Score,
		MoveCount: g.MoveCount,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// WordScore is a formed word with its points
type WordScore struct {
	Word  string   `json:"word"`
	Start Position `json:"start"`
	Axis  string   `json:"axis"`
	Score int      `json:"score"`
}

// WordScoresFromModel converts a word breakdown
func WordScoresFromModel(scores []model.WordScore) []WordScore {
	result := make([]WordScore, len(scores))
	for i, ws := range scores {
		result[i] = WordScore{
			Word:  ws.Word,
			Start: PositionFromModel(ws.Start),
			Axis:  ws.Axis.String(),
			Score: ws.Score,
		}
	}
	return result
}

// Tile is a placed letter
type Tile struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

// Move represents an accepted move
type Move struct {
	Number   int         `json:"number"`
	Tiles    []Tile      `json:"tiles"`
	Words    []WordScore `json:"words"`
	Score    int         `json:"score"`
	PlayedAt time.Time   `json:"played_at"`
}

// MoveFromModel converts a model.MoveRecord
func MoveFromModel(m *model.MoveRecord) Move {
	tiles := make([]Tile, len(m.Tiles))
	for i, t := range m.Tiles {
		tiles[i] = Tile{Row: t.Position.Row, Col: t.Position.Col, Letter: string(t.Letter)}
	}
	return Move{
		Number:   m.Number,
		Tiles:    tiles,
		Words:    WordScoresFromModel(m.Words),
		Score:    m.Score,
		PlayedAt: m.PlayedAt,
	}
}

// MovesFromModel converts a move history
func MovesFromModel(moves []model.MoveRecord) []Move {
	result := make([]Move, len(moves))
	for i := range moves {
		result[i] = MoveFromModel(&moves[i])
	}
	return result
}

// PlayResult is the response for an accepted move
type PlayResult struct {
	Game Game `json:"game"`
	Move Move `json:"move"`
}

// Evaluation is the response for a stateless move evaluation
type Evaluation struct {
	Placements []Position  `json:"placements"`
	Words      []string    `json:"words"`
	Breakdown  []WordScore `json:"breakdown"`
	Score      int         `json:"score"`
}

// EvaluationFromModel converts a model.MoveResult
func EvaluationFromModel(r *model.MoveResult) Evaluation {
	placements := make([]Position, len(r.Placements))
	for i, p := range r.Placements {
		placements[i] = PositionFromModel(p)
	}
	return Evaluation{
		Placements: placements,
		Words:      r.WordTexts(),
		Breakdown:  WordScoresFromModel(r.WordScores),
		Score:      r.Score,
	}
}

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}
