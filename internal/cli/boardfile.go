package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mcoot/wordmove/internal/model"
)

// readBoardFile loads a board from a text file of BoardSize lines.
// Short lines are padded with empty cells and blank lines past the last row
// are ignored.
func readBoardFile(path string) (model.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Board{}, fmt.Errorf("failed to read board file: %w", err)
	}
	return parseBoardText(string(data))
}

func parseBoardText(text string) (model.Board, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > model.BoardSize && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		if n := len([]rune(line)); n < model.BoardSize {
			lines[i] = line + strings.Repeat(".", model.BoardSize-n)
		}
	}

	return model.ParseBoard(lines)
}
