package commands

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tileboard/internal/app"
)

var (
	apiURL  string
	logPath string
	appCtx  *app.App
	logFile *os.File
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tileboard",
		Short:        "Score word-tile words and keep a leaderboard",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := openLog(cmd)
			if err != nil {
				return err
			}
			a, err := app.New(app.Config{APIURL: apiURL, Log: logger})
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile == nil {
				return nil
			}
			err := logFile.Close()
			logFile = nil
			return err
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api", app.DefaultAPIURL, "scoring service base URL")
	root.PersistentFlags().StringVar(&logPath, "log", "", "diagnostic log file (default stderr, discarded for play)")

	root.AddCommand(playCmd(), scoreCmd(), saveCmd(), topCmd())
	return root
}

// openLog picks the diagnostic channel for cmd.
func openLog(cmd *cobra.Command) (*log.Logger, error) {
	const flags = log.LstdFlags
	const prefix = "tileboard: "
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, err
		}
		logFile = f
		return log.New(f, prefix, flags), nil
	}
	if cmd.Name() == "play" {
		return log.New(io.Discard, prefix, flags), nil
	}
	return log.New(cmd.ErrOrStderr(), prefix, flags), nil
}
