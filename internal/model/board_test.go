package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordmove/internal/model"
)

func emptyRows() []string {
	rows := make([]string, model.BoardSize)
	for i := range rows {
		rows[i] = strings.Repeat(".", model.BoardSize)
	}
	return rows
}

func TestParseBoardRoundTrip(t *testing.T) {
	rows := emptyRows()
	rows[7] = ".......hello..."

	b, err := model.ParseBoard(rows)
	require.NoError(t, err)

	assert.Equal(t, 'H', b.Get(model.Position{Row: 7, Col: 7}))
	assert.Equal(t, 5, b.TileCount())
	rows[7] = ".......HELLO..."
	assert.Equal(t, rows, b.Rows())
}

func TestParseBoardAcceptsAlternateEmptyMarkers(t *testing.T) {
	rows := emptyRows()
	rows[0] = "A_ B..........."

	b, err := model.ParseBoard(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, b.TileCount())
}

func TestParseBoardRejectsBadInput(t *testing.T) {
	_, err := model.ParseBoard(emptyRows()[:14])
	assert.ErrorIs(t, err, model.ErrInvalidBoard)

	rows := emptyRows()
	rows[3] = "...."
	_, err = model.ParseBoard(rows)
	assert.ErrorIs(t, err, model.ErrInvalidBoard)

	rows = emptyRows()
	rows[3] = "...1..........."
	_, err = model.ParseBoard(rows)
	assert.ErrorIs(t, err, model.ErrInvalidBoard)

	// Upper-cases to 'S' under Unicode rules, but is not a board letter
	rows = emptyRows()
	rows[3] = "...ſ..........."
	_, err = model.ParseBoard(rows)
	assert.ErrorIs(t, err, model.ErrInvalidBoard)
}

func TestNormalizeLetter(t *testing.T) {
	tests := []struct {
		in       rune
		expected rune
		ok       bool
	}{
		{'a', 'A', true},
		{'z', 'Z', true},
		{'Q', 'Q', true},
		{'ſ', 'ſ', false}, // long s
		{'ı', 'ı', false}, // dotless i
		{'é', 'é', false},
		{'1', '1', false},
		{'@', '@', false},
		{'[', '[', false},
	}

	for _, tt := range tests {
		got, ok := model.NormalizeLetter(tt.in)
		assert.Equal(t, tt.ok, ok, "%q", tt.in)
		assert.Equal(t, tt.expected, got, "%q", tt.in)
	}
}

func TestBoardJSON(t *testing.T) {
	var b model.Board
	b.Set(model.Center, 'Z')

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var decoded model.Board
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, b, decoded)
}

func TestBoardGetOutOfBounds(t *testing.T) {
	var b model.Board
	assert.Equal(t, rune(0), b.Get(model.Position{Row: -1, Col: 0}))
	assert.Equal(t, rune(0), b.Get(model.Position{Row: 0, Col: model.BoardSize}))
	assert.True(t, b.IsEmpty(model.Position{Row: 15, Col: 15}))
}

func TestBoardIsValueType(t *testing.T) {
	var original model.Board
	snapshot := original
	snapshot.Set(model.Center, 'A')

	assert.True(t, original.IsEmptyBoard())
	assert.False(t, snapshot.IsEmptyBoard())
}

func TestWithTiles(t *testing.T) {
	var b model.Board
	result, err := b.WithTiles([]model.Tile{
		{Position: model.Position{Row: 7, Col: 7}, Letter: 'h'},
		{Position: model.Position{Row: 7, Col: 8}, Letter: 'I'},
	})
	require.NoError(t, err)

	assert.Equal(t, 'H', result.Get(model.Position{Row: 7, Col: 7}))
	assert.Equal(t, 'I', result.Get(model.Position{Row: 7, Col: 8}))
	assert.True(t, b.IsEmptyBoard())
}

func TestWithTilesRejections(t *testing.T) {
	var b model.Board
	b.Set(model.Center, 'A')

	_, err := b.WithTiles([]model.Tile{{Position: model.Position{Row: 15, Col: 0}, Letter: 'A'}})
	assert.ErrorIs(t, err, model.ErrInvalidPosition)

	_, err = b.WithTiles([]model.Tile{{Position: model.Center, Letter: 'B'}})
	assert.ErrorIs(t, err, model.ErrCellOccupied)

	_, err = b.WithTiles([]model.Tile{{Position: model.Position{Row: 0, Col: 0}, Letter: '3'}})
	assert.ErrorIs(t, err, model.ErrInvalidLetter)

	_, err = b.WithTiles([]model.Tile{{Position: model.Position{Row: 0, Col: 0}, Letter: 'ı'}})
	assert.ErrorIs(t, err, model.ErrInvalidLetter)

	_, err = b.WithTiles([]model.Tile{
		{Position: model.Position{Row: 0, Col: 0}, Letter: 'A'},
		{Position: model.Position{Row: 0, Col: 0}, Letter: 'B'},
	})
	assert.ErrorIs(t, err, model.ErrInvalidPosition)
}

func TestPositionNeighbors(t *testing.T) {
	assert.Len(t, model.Position{Row: 0, Col: 0}.Neighbors(), 2)
	assert.Len(t, model.Position{Row: 0, Col: 7}.Neighbors(), 3)
	assert.Len(t, model.Center.Neighbors(), 4)
	assert.Len(t, model.Position{Row: 14, Col: 14}.Neighbors(), 2)
}

func TestWordPositions(t *testing.T) {
	w := model.Word{Text: "CAT", Start: model.Position{Row: 7, Col: 7}, Axis: model.Vertical}
	assert.Equal(t, []model.Position{{Row: 7, Col: 7}, {Row: 8, Col: 7}, {Row: 9, Col: 7}}, w.Positions())
}

func TestAxisText(t *testing.T) {
	data, err := json.Marshal(model.Vertical)
	require.NoError(t, err)
	assert.Equal(t, `"vertical"`, string(data))

	var a model.Axis
	require.NoError(t, json.Unmarshal([]byte(`"horizontal"`), &a))
	assert.Equal(t, model.Horizontal, a)
	assert.Error(t, json.Unmarshal([]byte(`"diagonal"`), &a))
}
