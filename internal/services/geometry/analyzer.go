package geometry

import (
	"fmt"

	"github.com/mcoot/wordmove/internal/model"
)

// Service checks the geometry of a proposed move and extracts the words it forms.
// It holds no state and is safe for concurrent use.
type Service struct{}

// New creates a new geometry Service
func New() *Service {
	return &Service{}
}

// Analysis is the result of a successfully validated move
type Analysis struct {
	Placements []model.Position // row-major order
	Axis       model.Axis       // axis shared by all placements
	Words      []model.Word     // main word first, then perpendicular words in placement order
}

// FindPlacements returns every position that is empty in previous and filled
// in proposed, scanning row by row.
func FindPlacements(previous, proposed model.Board) []model.Position {
	var result []model.Position
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			if previous.Cells[row][col] == 0 && proposed.Cells[row][col] != 0 {
				result = append(result, model.Position{Row: row, Col: col})
			}
		}
	}
	return result
}

// FindPlacements returns the newly filled positions of proposed
func (s *Service) FindPlacements(previous, proposed model.Board) []model.Position {
	return FindPlacements(previous, proposed)
}

// ValidateAndExtractWords validates the move and returns the formed words as text
func (s *Service) ValidateAndExtractWords(previous, proposed model.Board) ([]string, error) {
	analysis, err := s.Analyze(previous, proposed)
	if err != nil {
		return nil, err
	}
	words := make([]string, len(analysis.Words))
	for i, w := range analysis.Words {
		words[i] = w.Text
	}
	return words, nil
}

// Analyze validates the move from previous to proposed and extracts the formed words
func (s *Service) Analyze(previous, proposed model.Board) (*Analysis, error) {
	if err := checkSuperset(previous, proposed); err != nil {
		return nil, err
	}

	placements := FindPlacements(previous, proposed)
	if len(placements) == 0 {
		return nil, model.ErrNoTilesPlaced
	}

	axis, err := placementAxis(placements)
	if err != nil {
		return nil, err
	}

	if previous.IsEmptyBoard() {
		if !covers(placements, model.Center) {
			return nil, fmt.Errorf("%w %s", model.ErrFirstMoveMustCoverCenter, model.Center)
		}
	} else {
		if err := checkConnected(proposed, placements); err != nil {
			return nil, err
		}
		if err := checkAnchored(previous, placements); err != nil {
			return nil, err
		}
	}

	return &Analysis{
		Placements: placements,
		Axis:       axis,
		Words:      extractWords(proposed, placements, axis),
	}, nil
}

func checkSuperset(previous, proposed model.Board) error {
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			before := previous.Cells[row][col]
			if before != 0 && proposed.Cells[row][col] != before {
				return fmt.Errorf("%w: cell (%d,%d)", model.ErrExistingTileChanged, row, col)
			}
		}
	}
	return nil
}

// placementAxis returns the axis shared by every placement.
// A single tile counts as horizontal.
func placementAxis(placements []model.Position) (model.Axis, error) {
	first := placements[0]
	sameRow, sameCol := true, true
	for _, p := range placements[1:] {
		if p.Row != first.Row {
			sameRow = false
		}
		if p.Col != first.Col {
			sameCol = false
		}
	}
	switch {
	case sameRow:
		return model.Horizontal, nil
	case sameCol:
		return model.Vertical, nil
	default:
		return model.Horizontal, model.ErrNotInStraightLine
	}
}

func covers(placements []model.Position, target model.Position) bool {
	for _, p := range placements {
		if p == target {
			return true
		}
	}
	return false
}

// checkConnected requires every placed tile to touch some filled cell of proposed
func checkConnected(proposed model.Board, placements []model.Position) error {
	for _, p := range placements {
		if !touchesFilled(proposed, p) {
			return fmt.Errorf("%w: tile at %s is isolated", model.ErrTilesNotConnected, p)
		}
	}
	return nil
}

// checkAnchored requires at least one placed tile to touch a tile of previous
func checkAnchored(previous model.Board, placements []model.Position) error {
	for _, p := range placements {
		if touchesFilled(previous, p) {
			return nil
		}
	}
	return model.ErrTilesMustConnectToExisting
}

func touchesFilled(b model.Board, pos model.Position) bool {
	for _, n := range pos.Neighbors() {
		if !b.IsEmpty(n) {
			return true
		}
	}
	return false
}

func extractWords(proposed model.Board, placements []model.Position, axis model.Axis) []model.Word {
	var words []model.Word
	if main := WordAt(proposed, placements[0], axis); len(main.Text) > 1 {
		words = append(words, main)
	}
	cross := axis.Perpendicular()
	for _, p := range placements {
		if w := WordAt(proposed, p, cross); len(w.Text) > 1 {
			words = append(words, w)
		}
	}
	return words
}

// WordAt returns the run of letters through pos along axis. The run is
// found by walking back to its first letter and then reading forward until
// an empty cell or the board edge. An empty pos yields an empty word.
func WordAt(b model.Board, pos model.Position, axis model.Axis) model.Word {
	start := RunStart(b, pos, axis)
	dRow, dCol := axis.Step()

	var letters []rune
	for cur := start; !b.IsEmpty(cur); cur = cur.Add(dRow, dCol) {
		letters = append(letters, b.Get(cur))
	}
	return model.Word{Text: string(letters), Start: start, Axis: axis}
}

// RunStart walks backward from pos along axis to the first letter of its run
func RunStart(b model.Board, pos model.Position, axis model.Axis) model.Position {
	dRow, dCol := axis.Step()
	start := pos
	for prev := start.Add(-dRow, -dCol); !b.IsEmpty(prev); prev = prev.Add(-dRow, -dCol) {
		start = prev
	}
	return start
}

// Interface for dependency injection
type ServiceInterface interface {
	FindPlacements(previous, proposed model.Board) []model.Position
	ValidateAndExtractWords(previous, proposed model.Board) ([]string, error)
	Analyze(previous, proposed model.Board) (*Analysis, error)
}

var _ ServiceInterface = (*Service)(nil)
