package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BoardSize is the grid dimension of every board
const BoardSize = 15

// Center is the cell the first move must cover
var Center = Position{Row: BoardSize / 2, Col: BoardSize / 2}

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// InBounds returns true if the position is on the board
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Add offsets the position by the given row and column deltas
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Neighbors returns the in-bounds cells above, below, left and right of p
func (p Position) Neighbors() []Position {
	candidates := [4]Position{p.Add(-1, 0), p.Add(1, 0), p.Add(0, -1), p.Add(0, 1)}
	result := make([]Position, 0, 4)
	for _, n := range candidates {
		if n.InBounds() {
			result = append(result, n)
		}
	}
	return result
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Axis is the direction a word runs in
type Axis int

const (
	Horizontal Axis = iota // left-to-right along a row
	Vertical               // top-to-bottom along a column
)

// Step returns the row and column delta for one cell forward along the axis
func (a Axis) Step() (int, int) {
	if a == Vertical {
		return 1, 0
	}
	return 0, 1
}

// Perpendicular returns the crossing axis
func (a Axis) Perpendicular() Axis {
	if a == Vertical {
		return Horizontal
	}
	return Vertical
}

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MarshalText encodes the axis by name
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an axis name
func (a *Axis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "horizontal":
		*a = Horizontal
	case "vertical":
		*a = Vertical
	default:
		return fmt.Errorf("unknown axis %q", string(text))
	}
	return nil
}

// Board is a snapshot of the grid. It is a value type: copying a Board
// copies every cell, so snapshots never alias each other.
type Board struct {
	Cells [BoardSize][BoardSize]rune // Row-major: Cells[row][col], 0 means empty
}

// emptyMarker is used when rendering boards as text rows
const emptyMarker = '.'

// ParseBoard builds a board from BoardSize rows of BoardSize characters.
// '.', '_' and ' ' denote empty cells; letters are upper-cased.
func ParseBoard(rows []string) (Board, error) {
	var b Board
	if len(rows) != BoardSize {
		return b, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, BoardSize, len(rows))
	}
	for row, line := range rows {
		cells := []rune(line)
		if len(cells) != BoardSize {
			return b, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidBoard, row, len(cells), BoardSize)
		}
		for col, c := range cells {
			switch c {
			case emptyMarker, '_', ' ':
				continue
			}
			upper, ok := NormalizeLetter(c)
			if !ok {
				return b, fmt.Errorf("%w: invalid character %q at (%d,%d)", ErrInvalidBoard, c, row, col)
			}
			b.Cells[row][col] = upper
		}
	}
	return b, nil
}

// Rows renders the board as text rows, using '.' for empty cells
func (b Board) Rows() []string {
	rows := make([]string, BoardSize)
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.Reset()
		for col := 0; col < BoardSize; col++ {
			if c := b.Cells[row][col]; c != 0 {
				sb.WriteRune(c)
			} else {
				sb.WriteRune(emptyMarker)
			}
		}
		rows[row] = sb.String()
	}
	return rows
}

func (b Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

// MarshalJSON encodes the board as its text rows
func (b Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Rows())
}

// UnmarshalJSON decodes a board from text rows
func (b *Board) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	parsed, err := ParseBoard(rows)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Get returns the letter at the given position, or 0 if empty or out of bounds
func (b Board) Get(pos Position) rune {
	if !pos.InBounds() {
		return 0
	}
	return b.Cells[pos.Row][pos.Col]
}

// Set places a letter at the given position
func (b *Board) Set(pos Position, letter rune) {
	if pos.InBounds() {
		b.Cells[pos.Row][pos.Col] = letter
	}
}

// IsEmpty returns true if the cell at the given position is empty.
// Out-of-bounds positions count as empty.
func (b Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == 0
}

// IsEmptyBoard returns true if no cell holds a letter
func (b Board) IsEmptyBoard() bool {
	return b.TileCount() == 0
}

// TileCount returns the number of filled cells
func (b Board) TileCount() int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Cells[row][col] != 0 {
				count++
			}
		}
	}
	return count
}

// NormalizeLetter upper-cases an ASCII letter. Anything outside a-z and A-Z
// is rejected, including runes whose Unicode upper case is ASCII.
func NormalizeLetter(r rune) (rune, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return r, true
	case r >= 'a' && r <= 'z':
		return r - 'a' + 'A', true
	}
	return r, false
}

// Tile is a single letter placed at a position
type Tile struct {
	Position Position
	Letter   rune
}

// WithTiles returns a copy of the board with the tiles placed on it.
// Each tile must be in bounds, on an empty cell, an A-Z letter, and
// no two tiles may share a position.
func (b Board) WithTiles(tiles []Tile) (Board, error) {
	result := b
	seen := make(map[Position]struct{}, len(tiles))
	for _, t := range tiles {
		if !t.Position.InBounds() {
			return b, fmt.Errorf("%w: %s", ErrInvalidPosition, t.Position)
		}
		if _, dup := seen[t.Position]; dup {
			return b, fmt.Errorf("%w: %s placed twice", ErrInvalidPosition, t.Position)
		}
		seen[t.Position] = struct{}{}
		if !b.IsEmpty(t.Position) {
			return b, fmt.Errorf("%w: %s", ErrCellOccupied, t.Position)
		}
		letter, ok := NormalizeLetter(t.Letter)
		if !ok {
			return b, fmt.Errorf("%w: %q", ErrInvalidLetter, t.Letter)
		}
		result.Set(t.Position, letter)
	}
	return result, nil
}

// Word is a maximal run of letters along one axis
type Word struct {
	Text  string
	Start Position
	Axis  Axis
}

// Positions returns every cell the word covers, in reading order
func (w Word) Positions() []Position {
	dRow, dCol := w.Axis.Step()
	n := len([]rune(w.Text))
	result := make([]Position, n)
	for i := 0; i < n; i++ {
		result[i] = w.Start.Add(i*dRow, i*dCol)
	}
	return result
}
