package cmd

import (
	"github.com/bnema/megaverse-cli/internal/application"
	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPatternCmd(app *app) *cobra.Command {
	var (
		dryRun bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Submit the built-in 11x11 polyanet cross",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !dryRun {
				if err := app.cfg.RequireCandidateID(); err != nil {
					return err
				}
			}

			opts := application.RunOptions{DryRun: dryRun}
			return runSubmission(cmd, asJSON, "Submitting cross pattern...", opts, func(opts application.RunOptions) (domain.BatchResult, error) {
				return app.service.ApplyPattern(cmd.Context(), opts)
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Submit against the in-memory endpoint instead of the remote service")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the batch result as JSON")

	return cmd
}
