package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tileboard/internal/board"
	"tileboard/internal/scoring"
)

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <letters>",
		Short: "Print the value of each letter and the total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := board.FromLetters(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			for _, t := range b.Tiles() {
				if t == "" {
					continue
				}
				fmt.Fprintf(out, "%s %d\n", t, scoring.PointValue(t))
			}
			fmt.Fprintf(out, "Score: %d\n", b.Score())
			return nil
		},
	}
}
