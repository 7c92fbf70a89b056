package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Execute runs the CLI. SIGINT and SIGTERM cancel the command context
// so in-flight submission runs wind down and still print their summary.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mega",
		Short:         "Megaverse CLI (mega): reconcile goal grids against the megaverse service",
		Long:          "mega turns a declarative goal grid into create and delete calls against the megaverse service, with bounded retries, rate-limit aware backoff, and a per-object outcome report.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newApplyCmd(app),
		newPatternCmd(app),
		newClearCmd(app),
		newGoalCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
