package testutil

import "github.com/mcoot/wordmove/internal/model"

// Placed is a word laid on a board for test setup
type Placed struct {
	Start model.Position
	Axis  model.Axis
	Text  string
}

// H lays text left-to-right starting at (row, col)
func H(row, col int, text string) Placed {
	return Placed{Start: model.Position{Row: row, Col: col}, Axis: model.Horizontal, Text: text}
}

// V lays text top-to-bottom starting at (row, col)
func V(row, col int, text string) Placed {
	return Placed{Start: model.Position{Row: row, Col: col}, Axis: model.Vertical, Text: text}
}

// BuildBoard returns a board with the given words laid on it.
// Later words overwrite earlier ones where they cross.
func BuildBoard(words ...Placed) model.Board {
	var b model.Board
	return Extend(b, words...)
}

// Extend returns a copy of b with the given words laid on it
func Extend(b model.Board, words ...Placed) model.Board {
	for _, w := range words {
		dRow, dCol := w.Axis.Step()
		for i, letter := range w.Text {
			b.Set(w.Start.Add(i*dRow, i*dCol), letter)
		}
	}
	return b
}
