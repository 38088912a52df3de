package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tileboard/internal/session"
)

func topCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Print the leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := appCtx.Session.FetchNow(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching top scores: %w", err)
			}
			st := session.Apply(session.State{}, u)
			if len(st.Leaderboard) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No top scores yet")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Word\tScore")
			for _, row := range st.Leaderboard {
				fmt.Fprintf(w, "%s\t%d\n", row.Word, row.Score)
			}
			return w.Flush()
		},
	}
}
