package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/megaverse-cli/internal/adapters/render/grid"
	"github.com/bnema/megaverse-cli/internal/application"
	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/spf13/cobra"
)

type goalOutput struct {
	Goal     domain.GoalGrid          `json:"goal"`
	Analysis application.GoalAnalysis `json:"analysis"`
}

func newGoalCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Fetch the goal grid and show its composition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.cfg.RequireCandidateID(); err != nil {
				return err
			}

			goal, analysis, err := app.service.DescribeGoal(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(goalOutput{Goal: goal, Analysis: analysis})
			}

			out, err := grid.RenderGoal(goal, analysis)
			if err != nil {
				return fmt.Errorf("render goal: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the goal grid and analysis as JSON")

	return cmd
}
