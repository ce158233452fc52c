package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordmove/internal/api/request"
	"github.com/mcoot/wordmove/internal/model"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGamePlayCmd())
	cmd.AddCommand(newGameHistoryCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new game on an empty board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post("/api/v1/games", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a game's board and score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGamePlayCmd() *cobra.Command {
	var boardPath string

	cmd := &cobra.Command{
		Use:   "play <id> [<row> <col> <across|down> <letters>]",
		Short: "Play a move",
		Long: `Play a move in a game, either by laying letters from a starting cell or
by submitting a whole proposed board with --board.

Letters are laid one cell apart in the given direction; a '.' skips a cell
that already holds a tile.`,
		Example: `  wordmove game play <id> 7 7 across HELLO
  wordmove game play <id> 7 7 down .ELP
  wordmove game play <id> --board next.txt`,
		Args: func(cmd *cobra.Command, args []string) error {
			if boardPath != "" {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(5)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var req request.PlayRequest
			if boardPath != "" {
				proposed, err := readBoardFile(boardPath)
				if err != nil {
					return err
				}
				req.Board = proposed.Rows()
			} else {
				tiles, err := parseTiles(args[1], args[2], args[3], args[4])
				if err != nil {
					return err
				}
				req.Tiles = tiles
			}

			var result PlayResult
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&boardPath, "board", "", "Submit a whole proposed board from a file")

	return cmd
}

// parseTiles lays letters from (row, col) along a direction, skipping '.' cells
func parseTiles(rowArg, colArg, dirArg, letters string) ([]request.Tile, error) {
	row, err := strconv.Atoi(rowArg)
	if err != nil {
		return nil, fmt.Errorf("invalid row: %w", err)
	}

	col, err := strconv.Atoi(colArg)
	if err != nil {
		return nil, fmt.Errorf("invalid col: %w", err)
	}

	var dRow, dCol int
	switch strings.ToLower(dirArg) {
	case "across", "h", "horizontal":
		dCol = 1
	case "down", "v", "vertical":
		dRow = 1
	default:
		return nil, fmt.Errorf("direction must be across or down, got %q", dirArg)
	}

	var tiles []request.Tile
	for i, letter := range []rune(letters) {
		if letter == '.' {
			continue
		}
		// Non-letters pass through for the server to reject
		if upper, ok := model.NormalizeLetter(letter); ok {
			letter = upper
		}
		tiles = append(tiles, request.Tile{
			Row:    row + i*dRow,
			Col:    col + i*dCol,
			Letter: string(letter),
		})
	}
	if len(tiles) == 0 {
		return nil, fmt.Errorf("no letters to place")
	}
	return tiles, nil
}

func newGameHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "List a game's accepted moves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Move

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/moves", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}
