package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/wordmove/internal/api/response"
	"github.com/mcoot/wordmove/internal/model"
	"github.com/mcoot/wordmove/internal/services/engine"
	"github.com/mcoot/wordmove/internal/services/geometry"
	"github.com/mcoot/wordmove/internal/services/scoring"
)

func newEvaluateCmd() *cobra.Command {
	var (
		previousPath string
		proposedPath string
		remote       bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Validate and score a move from two board files",
		Long: `Validate and score the move that turns the previous board into the
proposed board. Each file holds 15 lines of 15 cells, with '.' for an
empty cell. Without --previous the previous board is empty.

The engine runs locally unless --remote is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var previous model.Board
			if previousPath != "" {
				b, err := readBoardFile(previousPath)
				if err != nil {
					return err
				}
				previous = b
			}

			proposed, err := readBoardFile(proposedPath)
			if err != nil {
				return err
			}

			var result Evaluation
			if remote {
				req := map[string][]string{
					"previous": previous.Rows(),
					"proposed": proposed.Rows(),
				}
				if err := client.Post("/api/v1/moves/evaluate", req, &result); err != nil {
					return err
				}
			} else {
				eng := engine.New(geometry.New(), scoring.New())
				evaluated, err := eng.Evaluate(previous, proposed)
				if err != nil {
					return err
				}
				result = response.EvaluationFromModel(evaluated)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&previousPath, "previous", "", "Previous board file (default: empty board)")
	cmd.Flags().StringVar(&proposedPath, "proposed", "", "Proposed board file")
	cmd.Flags().BoolVar(&remote, "remote", false, "Evaluate on the server instead of locally")
	_ = cmd.MarkFlagRequired("proposed")

	return cmd
}
