package cmd

import (
	"time"

	"github.com/bnema/megaverse-cli/internal/application"
	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newApplyCmd(app *app) *cobra.Command {
	var (
		dryRun  bool
		workers int
		pace    time.Duration
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create every object the goal grid names",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// the goal fetch needs the candidate even on a dry run
			if err := app.cfg.RequireCandidateID(); err != nil {
				return err
			}

			opts := application.RunOptions{DryRun: dryRun, Workers: workers, Pace: pace}
			return runSubmission(cmd, asJSON, "Submitting goal objects...", opts, func(opts application.RunOptions) (domain.BatchResult, error) {
				return app.service.ApplyGoal(cmd.Context(), opts)
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Submit against the in-memory endpoint instead of the remote service")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent submission workers (defaults to config)")
	cmd.Flags().DurationVar(&pace, "pace", 0, "Spacing between submission starts (defaults to config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the batch result as JSON")

	return cmd
}
