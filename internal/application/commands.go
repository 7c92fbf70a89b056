package application

import (
	"time"

	"github.com/bnema/megaverse-cli/internal/domain"
)

const (
	// DefaultPace spaces goal submissions one second apart.
	DefaultPace = time.Second
	// DefaultPatternPace spaces pattern submissions half a second apart.
	DefaultPatternPace = 500 * time.Millisecond
)

// Tuning carries the submission knobs shared by every run.
type Tuning struct {
	Retries        int
	BaseDelay      time.Duration
	RateLimitDelay time.Duration
	Pace           time.Duration
	PatternPace    time.Duration
	Workers        int
}

func (t *Tuning) applyDefaults() {
	if t.Retries <= 0 {
		t.Retries = DefaultRetries
	}
	if t.BaseDelay <= 0 {
		t.BaseDelay = DefaultBaseDelay
	}
	if t.RateLimitDelay <= 0 {
		t.RateLimitDelay = DefaultRateLimitDelay
	}
	if t.Pace <= 0 {
		t.Pace = DefaultPace
	}
	if t.PatternPace <= 0 {
		t.PatternPace = DefaultPatternPace
	}
	if t.Workers < 1 {
		t.Workers = 1
	}
}

// RunOptions adjusts a single run without touching the shared tuning.
type RunOptions struct {
	// DryRun routes submissions to the sandbox endpoint.
	DryRun bool
	// Workers overrides the configured parallelism when positive.
	Workers int
	// Pace overrides the default inter-submission spacing when positive.
	Pace time.Duration
	// OnOutcome, when set, observes each outcome as it lands.
	OnOutcome func(domain.SubmissionOutcome)
}
