package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/bnema/megaverse-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type OrchestratorOptions struct {
	Pace      time.Duration
	Workers   int
	OnOutcome func(domain.SubmissionOutcome)
}

type Orchestrator struct {
	submitter *Submitter
	clock     ports.Clock
	logger    zerolog.Logger
	pace      time.Duration
	workers   int
	onOutcome func(domain.SubmissionOutcome)
}

func NewOrchestrator(submitter *Submitter, clock ports.Clock, logger zerolog.Logger, opts OrchestratorOptions) *Orchestrator {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	pace := opts.Pace
	if pace < 0 {
		pace = 0
	}

	return &Orchestrator{
		submitter: submitter,
		clock:     clock,
		logger:    logger,
		pace:      pace,
		workers:   workers,
		onOutcome: opts.OnOutcome,
	}
}

// Run creates every object in the set, one kind group at a time.
func (o *Orchestrator) Run(ctx context.Context, set domain.TargetObjectSet) (domain.BatchResult, error) {
	return o.execute(ctx, set.Groups(), domain.OpCreate)
}

// Clear deletes every object in the set. Groups run in reverse kind
// order so dependent soloons and comeths go before their polyanets.
func (o *Orchestrator) Clear(ctx context.Context, set domain.TargetObjectSet) (domain.BatchResult, error) {
	groups := set.Groups()
	reversed := make([][]domain.PlacementObject, 0, len(groups))
	for i := len(groups) - 1; i >= 0; i-- {
		reversed = append(reversed, groups[i])
	}

	return o.execute(ctx, reversed, domain.OpDelete)
}

// execute runs the kind groups sequentially, each group fanned out over
// the worker pool. Waiting on the group before starting the next one is
// the ordering barrier: no soloon or cometh is submitted while polyanet
// submissions are still in flight. On cancellation no new submissions
// start, but dispatched ones finish and the partial result is returned.
func (o *Orchestrator) execute(ctx context.Context, groups [][]domain.PlacementObject, op domain.Operation) (domain.BatchResult, error) {
	runID := shortRunID()
	log := o.logger.With().Str("run_id", runID).Str("op", string(op)).Logger()
	started := o.clock.Now()

	total := 0
	for _, group := range groups {
		total += len(group)
	}
	log.Info().Int("objects", total).Int("workers", o.workers).Msg("starting batch")

	pace := newPacer(o.pace)
	outcomes := make([]domain.SubmissionOutcome, 0, total)
	var runErr error

	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		log.Debug().Str("kind", string(group[0].Kind)).Int("objects", len(group)).Msg("submitting kind group")

		groupOutcomes := make([]domain.SubmissionOutcome, len(group))
		var g errgroup.Group
		g.SetLimit(o.workers)

		dispatched := 0
		for i, obj := range group {
			if err := ctx.Err(); err != nil {
				runErr = err
				break
			}

			dispatched++
			i, obj := i, obj
			g.Go(func() error {
				groupOutcomes[i] = o.submitOne(ctx, pace, obj, op)
				return nil
			})
		}

		_ = g.Wait()
		outcomes = append(outcomes, groupOutcomes[:dispatched]...)

		if runErr != nil {
			break
		}
	}

	result := Aggregate(outcomes)
	result.RunID = runID
	result.Started = started
	result.Finished = o.clock.Now()

	log.Info().
		Int("total", result.Total).
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Dur("elapsed", result.Finished.Sub(result.Started)).
		Msg("batch finished")

	return result, runErr
}

func (o *Orchestrator) submitOne(ctx context.Context, pace *pacer, obj domain.PlacementObject, op domain.Operation) domain.SubmissionOutcome {
	if err := pace.Wait(ctx); err != nil {
		outcome := domain.SubmissionOutcome{
			Position: obj.Position,
			Kind:     obj.Kind,
			Op:       op,
			Error:    fmt.Sprintf("submission aborted: %v", err),
		}
		o.notify(outcome)
		return outcome
	}

	outcome := o.submitter.Submit(ctx, obj, op)
	o.notify(outcome)
	return outcome
}

func (o *Orchestrator) notify(outcome domain.SubmissionOutcome) {
	if o.onOutcome == nil {
		return
	}
	o.onOutcome(outcome)
}

func shortRunID() string {
	return uuid.New().String()[:8]
}
