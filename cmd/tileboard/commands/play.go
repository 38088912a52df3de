package commands

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"tileboard/internal/tui"
)

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the interactive scoring form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			m := tui.NewModel(cmd.Context(), appCtx.Session)
			return tui.Run(cmd.Context(), screen, m)
		},
	}
}
