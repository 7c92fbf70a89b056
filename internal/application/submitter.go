package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/bnema/megaverse-cli/internal/ports"
	"github.com/rs/zerolog"
)

const (
	DefaultRetries        = 3
	DefaultBaseDelay      = time.Second
	DefaultRateLimitDelay = 2 * time.Second
)

type SubmitterOptions struct {
	Retries        int
	BaseDelay      time.Duration
	RateLimitDelay time.Duration
}

type Submitter struct {
	api            ports.MegaverseAPI
	retries        int
	baseDelay      time.Duration
	rateLimitDelay time.Duration
	logger         zerolog.Logger
}

func NewSubmitter(api ports.MegaverseAPI, logger zerolog.Logger, opts SubmitterOptions) *Submitter {
	retries := opts.Retries
	if retries <= 0 {
		retries = DefaultRetries
	}
	baseDelay := opts.BaseDelay
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}
	rateLimitDelay := opts.RateLimitDelay
	if rateLimitDelay <= 0 {
		rateLimitDelay = DefaultRateLimitDelay
	}

	return &Submitter{
		api:            api,
		retries:        retries,
		baseDelay:      baseDelay,
		rateLimitDelay: rateLimitDelay,
		logger:         logger,
	}
}

// Submit performs one operation with bounded retries. The backoff grows
// linearly with the attempt number, and throttled attempts wait on the
// longer rate-limit delay instead. The outcome always reports how many
// calls were actually made; a failed outcome never escapes as an error.
func (s *Submitter) Submit(ctx context.Context, obj domain.PlacementObject, op domain.Operation) domain.SubmissionOutcome {
	outcome := domain.SubmissionOutcome{
		Position: obj.Position,
		Kind:     obj.Kind,
		Op:       op,
	}

	var lastErr error
	for outcome.Attempts < s.retries {
		outcome.Attempts++

		err := s.call(ctx, obj, op)
		if err == nil {
			outcome.Success = true
			return outcome
		}
		lastErr = err

		if outcome.Attempts == s.retries {
			break
		}

		rateLimited := domain.IsRateLimit(err)
		delay := s.baseDelay * time.Duration(outcome.Attempts)
		if rateLimited {
			delay = s.rateLimitDelay * time.Duration(outcome.Attempts)
		}

		s.logger.Warn().
			Str("object", obj.String()).
			Str("op", string(op)).
			Int("attempt", outcome.Attempts).
			Bool("rate_limited", rateLimited).
			Dur("backoff", delay).
			Err(err).
			Msg("submission attempt failed")

		if waitErr := s.wait(ctx, delay); waitErr != nil {
			lastErr = waitErr
			break
		}
	}

	outcome.Error = fmt.Sprintf("Failed after %d attempts. Last error: %v", outcome.Attempts, lastErr)

	s.logger.Error().
		Str("object", obj.String()).
		Str("op", string(op)).
		Int("attempts", outcome.Attempts).
		Msg("submission gave up")

	return outcome
}

func (s *Submitter) call(ctx context.Context, obj domain.PlacementObject, op domain.Operation) error {
	if op == domain.OpDelete {
		return s.api.DeleteObject(ctx, obj.Kind, obj.Position)
	}

	return s.api.CreateObject(ctx, obj)
}

func (s *Submitter) wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
