package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tileboard/internal/board"
)

// save <letters>: submit the word and its score.
func saveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <letters>",
		Short: "Submit a word and its score to the scoring service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := board.FromLetters(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			if b.Score() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Score is 0, nothing saved")
				return nil
			}
			if _, err := appCtx.Session.SaveNow(cmd.Context(), b); err != nil {
				return fmt.Errorf("saving %q: %w", b.Word(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d points)\n", b.Word(), b.Score())
			return nil
		},
	}
}
