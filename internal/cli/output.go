package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/wordmove/internal/api/response"
)

// Response types (shared with the API)
type (
	Game         = response.Game
	Move         = response.Move
	WordScore    = response.WordScore
	PlayResult   = response.PlayResult
	Evaluation   = response.Evaluation
	HealthResult = response.Health
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case []Move:
		o.printMoves(v)
	case PlayResult:
		o.printPlayResult(v)
	case Evaluation:
		o.printEvaluation(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printGame(g Game) {
	o.printf("Game: %s\n", g.ID)
	o.printf("Score: %d\n", g.Score)
	o.printf("Moves: %d\n", g.MoveCount)
	o.printf("\n")
	o.printBoard(g.Board)
}

func (o *Output) printMoves(moves []Move) {
	if len(moves) == 0 {
		o.printf("No moves played\n")
		return
	}
	for _, m := range moves {
		o.printf("#%d  %d points  %s\n", m.Number, m.Score, wordList(m.Words))
	}
}

func (o *Output) printPlayResult(p PlayResult) {
	o.printf("Move %d accepted: %d points\n", p.Move.Number, p.Move.Score)
	o.printWordScores(p.Move.Words)
	o.printf("Total score: %d\n\n", p.Game.Score)
	o.printBoard(p.Game.Board)
}

func (o *Output) printEvaluation(e Evaluation) {
	o.printf("Words: %s\n", strings.Join(e.Words, ", "))
	o.printWordScores(e.Breakdown)
	o.printf("Score: %d\n", e.Score)
}

func (o *Output) printWordScores(words []WordScore) {
	for _, w := range words {
		o.printf("  %-15s %3d  (%d,%d %s)\n", w.Word, w.Score, w.Start.Row, w.Start.Col, w.Axis)
	}
}

func (o *Output) printBoard(rows []string) {
	if len(rows) == 0 {
		return
	}

	// Column headers
	o.printf("    ")
	for col := range len(rows[0]) {
		o.printf("%2d ", col)
	}
	o.printf("\n")

	for row, line := range rows {
		o.printf("%2d  ", row)
		for _, cell := range line {
			o.printf(" %c ", cell)
		}
		o.printf("\n")
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	o.printf("Status: %s\n", h.Status)
}

func wordList(words []WordScore) string {
	names := make([]string, len(words))
	for i, w := range words {
		names[i] = w.Word
	}
	return strings.Join(names, ", ")
}
