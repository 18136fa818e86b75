package cmd

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"counter/internal/adapters/in/console"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "counter",
		Short:         "Track food counter orders from the terminal",
		Long:          "Counter tracks a food counter's orders: take new orders, print a report, and move fulfilled orders to a separate log. State lives in two flat JSON files in the working directory.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()

			root, err := NewCompositionRoot(cmd.Context(), getConfig(), logger)
			if err != nil {
				return err
			}

			session := console.NewConsole(
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
				root.CreateAddOrderCommandHandler(),
				root.CreateFulfillOrderCommandHandler(),
				root.CreateGetPendingOrdersQueryHandler(),
				root.CreateGetFulfilledOrdersQueryHandler(),
				logger,
			)
			return session.Run(cmd.Context())
		},
	}
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// newLogger builds the session logger. Logs go to stderr so they never mix
// with the interactive dialogue; the level stays at warn unless LOG_LEVEL
// asks for debug. Every record carries a session id for correlating one run.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("session_id", uuid.NewString())
}

func Execute() error {
	return newRootCmd().Execute()
}
