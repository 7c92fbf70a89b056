package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/bnema/megaverse-cli/internal/ports"
	"github.com/rs/zerolog"
)

type Service struct {
	api        ports.MegaverseAPI
	sandbox    ports.MegaverseAPI
	clock      ports.Clock
	logger     zerolog.Logger
	tuning     Tuning
	translator *Translator
}

// NewService wires the pipeline. api is the live endpoint; sandbox
// receives submissions on dry runs so nothing remote changes.
func NewService(api ports.MegaverseAPI, sandbox ports.MegaverseAPI, clock ports.Clock, logger zerolog.Logger, tuning Tuning) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	tuning.applyDefaults()

	return &Service{
		api:        api,
		sandbox:    sandbox,
		clock:      clock,
		logger:     logger,
		tuning:     tuning,
		translator: NewTranslator(logger),
	}
}

// ApplyGoal fetches the goal grid and creates every object it names.
func (s *Service) ApplyGoal(ctx context.Context, opts RunOptions) (domain.BatchResult, error) {
	set, err := s.goalObjects(ctx)
	if err != nil {
		return domain.BatchResult{}, err
	}

	return s.orchestrator(opts, s.tuning.Pace).Run(ctx, set)
}

// ApplyPattern submits the built-in cross pattern. The pattern needs no
// goal fetch, so a dry run touches the network not at all.
func (s *Service) ApplyPattern(ctx context.Context, opts RunOptions) (domain.BatchResult, error) {
	set, err := s.translator.Translate(domain.CrossPattern())
	if err != nil {
		return domain.BatchResult{}, err
	}

	return s.orchestrator(opts, s.tuning.PatternPace).Run(ctx, set)
}

// ClearGoal deletes every object the goal grid names.
func (s *Service) ClearGoal(ctx context.Context, opts RunOptions) (domain.BatchResult, error) {
	set, err := s.goalObjects(ctx)
	if err != nil {
		return domain.BatchResult{}, err
	}

	return s.orchestrator(opts, s.tuning.Pace).Clear(ctx, set)
}

// DescribeGoal fetches the goal and reports its composition without
// submitting anything.
func (s *Service) DescribeGoal(ctx context.Context) (domain.GoalGrid, GoalAnalysis, error) {
	grid, err := s.api.FetchGoal(ctx)
	if err != nil {
		return nil, GoalAnalysis{}, fmt.Errorf("fetch goal: %w", err)
	}

	analysis, err := s.translator.Analyze(grid)
	if err != nil {
		return nil, GoalAnalysis{}, err
	}

	return grid, analysis, nil
}

func (s *Service) goalObjects(ctx context.Context) (domain.TargetObjectSet, error) {
	grid, err := s.api.FetchGoal(ctx)
	if err != nil {
		return domain.TargetObjectSet{}, fmt.Errorf("fetch goal: %w", err)
	}

	return s.translator.Translate(grid)
}

func (s *Service) orchestrator(opts RunOptions, defaultPace time.Duration) *Orchestrator {
	endpoint := s.api
	if opts.DryRun && s.sandbox != nil {
		endpoint = s.sandbox
	}

	workers := opts.Workers
	if workers < 1 {
		workers = s.tuning.Workers
	}
	pace := opts.Pace
	if pace <= 0 {
		pace = defaultPace
	}

	submitter := NewSubmitter(endpoint, s.logger, SubmitterOptions{
		Retries:        s.tuning.Retries,
		BaseDelay:      s.tuning.BaseDelay,
		RateLimitDelay: s.tuning.RateLimitDelay,
	})

	return NewOrchestrator(submitter, s.clock, s.logger, OrchestratorOptions{
		Pace:      pace,
		Workers:   workers,
		OnOutcome: opts.OnOutcome,
	})
}
