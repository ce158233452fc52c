package engine

import (
	"github.com/mcoot/wordmove/internal/model"
	"github.com/mcoot/wordmove/internal/services/geometry"
	"github.com/mcoot/wordmove/internal/services/scoring"
)

// Service runs the validate-then-score pipeline for a single move
type Service struct {
	geometry *geometry.Service
	scoring  *scoring.Service
}

// New creates a new engine Service
func New(geometry *geometry.Service, scoring *scoring.Service) *Service {
	return &Service{
		geometry: geometry,
		scoring:  scoring,
	}
}

// Evaluate validates the move from previous to proposed and scores it.
// Either the full result is returned or a move rejection error; there is no partial result.
func (s *Service) Evaluate(previous, proposed model.Board) (*model.MoveResult, error) {
	analysis, err := s.geometry.Analyze(previous, proposed)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(analysis.Words))
	for i, w := range analysis.Words {
		texts[i] = w.Text
	}

	wordScores := s.scoring.ScoreWords(proposed, analysis.Placements, texts)
	total := 0
	for _, ws := range wordScores {
		total += ws.Score
	}

	return &model.MoveResult{
		Placements: analysis.Placements,
		Words:      analysis.Words,
		WordScores: wordScores,
		Score:      total,
	}, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Evaluate(previous, proposed model.Board) (*model.MoveResult, error)
}

var _ ServiceInterface = (*Service)(nil)
