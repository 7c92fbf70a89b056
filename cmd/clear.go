package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/megaverse-cli/internal/application"
	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newClearCmd(app *app) *cobra.Command {
	var (
		dryRun bool
		yes    bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every object the goal grid names",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.cfg.RequireCandidateID(); err != nil {
				return err
			}

			if !dryRun && !yes {
				confirmed, err := confirmClear(cmd)
				if err != nil {
					return err
				}
				if !confirmed {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			opts := application.RunOptions{DryRun: dryRun}
			return runSubmission(cmd, asJSON, "Deleting goal objects...", opts, func(opts application.RunOptions) (domain.BatchResult, error) {
				return app.service.ClearGoal(cmd.Context(), opts)
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Submit against the in-memory endpoint instead of the remote service")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the batch result as JSON")

	return cmd
}

func confirmClear(cmd *cobra.Command) (bool, error) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), "Delete every goal object from the megaverse? [y/N]: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(input))
	return answer == "y" || answer == "yes", nil
}
