package application

import "github.com/bnema/megaverse-cli/internal/domain"

// Aggregate folds outcomes into a batch summary in a single pass.
func Aggregate(outcomes []domain.SubmissionOutcome) domain.BatchResult {
	result := domain.BatchResult{
		Total:    len(outcomes),
		ByKind:   make(map[domain.ObjectKind]int, 3),
		Outcomes: append([]domain.SubmissionOutcome(nil), outcomes...),
	}

	for _, outcome := range outcomes {
		if outcome.Success {
			result.Succeeded++
		} else {
			result.Failed++
		}
		result.ByKind[outcome.Kind]++
	}

	return result
}

// Accumulator builds the same summary incrementally for callers that
// consume outcomes as a stream. Result may be called at any point and
// must agree with Aggregate over the outcomes seen so far.
type Accumulator struct {
	outcomes  []domain.SubmissionOutcome
	succeeded int
	failed    int
	byKind    map[domain.ObjectKind]int
}

func (a *Accumulator) Add(outcome domain.SubmissionOutcome) {
	if a.byKind == nil {
		a.byKind = make(map[domain.ObjectKind]int, 3)
	}

	a.outcomes = append(a.outcomes, outcome)
	if outcome.Success {
		a.succeeded++
	} else {
		a.failed++
	}
	a.byKind[outcome.Kind]++
}

// Counts reports the running success and failure totals without copying
// the accumulated outcomes.
func (a *Accumulator) Counts() (succeeded, failed int) {
	return a.succeeded, a.failed
}

func (a *Accumulator) Result() domain.BatchResult {
	byKind := make(map[domain.ObjectKind]int, 3)
	for kind, count := range a.byKind {
		byKind[kind] = count
	}

	return domain.BatchResult{
		Total:     len(a.outcomes),
		Succeeded: a.succeeded,
		Failed:    a.failed,
		ByKind:    byKind,
		Outcomes:  append([]domain.SubmissionOutcome(nil), a.outcomes...),
	}
}
