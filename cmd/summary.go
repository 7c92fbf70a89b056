package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/megaverse-cli/internal/adapters/render/grid"
	"github.com/bnema/megaverse-cli/internal/application"
	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/spf13/cobra"
)

// runSubmission drives a submission run and prints its batch summary. The
// summary is written even when the run errors out, as long as the run started
// at all, so an interrupted command still reports what it managed to submit.
func runSubmission(cmd *cobra.Command, asJSON bool, label string, opts application.RunOptions, run func(application.RunOptions) (domain.BatchResult, error)) error {
	var (
		result domain.BatchResult
		runErr error
	)

	if asJSON {
		result, runErr = run(opts)
	} else {
		result, runErr = runWithProgress(cmd, label, opts, run)
	}

	// A zero RunID means the run never reached the orchestrator, for
	// example when the goal fetch failed. There is nothing to summarize.
	if result.RunID != "" {
		if err := writeBatchOutput(cmd, asJSON, result); err != nil {
			return err
		}
	}

	if runErr != nil {
		return runErr
	}

	return submissionStatusErr(result)
}

func writeBatchOutput(cmd *cobra.Command, asJSON bool, result domain.BatchResult) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	out, err := grid.RenderBatch(result)
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func submissionStatusErr(result domain.BatchResult) error {
	if result.FullySuccessful() {
		return nil
	}
	return fmt.Errorf("%d of %d submissions failed", result.Failed, result.Total)
}
