package domain

import "time"

type Operation string

const (
	OpCreate Operation = "create"
	OpDelete Operation = "delete"
)

type SubmissionOutcome struct {
	Position Position   `json:"position"`
	Kind     ObjectKind `json:"kind"`
	Op       Operation  `json:"op"`
	Success  bool       `json:"success"`
	Attempts int        `json:"attempts"`
	Error    string     `json:"error,omitempty"`
}

type BatchResult struct {
	RunID     string             `json:"run_id,omitempty"`
	Started   time.Time          `json:"started"`
	Finished  time.Time          `json:"finished"`
	Total     int                `json:"total"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
	ByKind    map[ObjectKind]int `json:"by_kind,omitempty"`

	Outcomes []SubmissionOutcome `json:"outcomes"`
}

// FullySuccessful distinguishes a clean batch from a partial one. An
// empty batch counts as fully successful.
func (r BatchResult) FullySuccessful() bool {
	return r.Failed == 0
}

func (r BatchResult) Failures() []SubmissionOutcome {
	failures := make([]SubmissionOutcome, 0, r.Failed)
	for _, outcome := range r.Outcomes {
		if !outcome.Success {
			failures = append(failures, outcome)
		}
	}

	return failures
}

func (r BatchResult) Duration() time.Duration {
	if r.Started.IsZero() || r.Finished.IsZero() {
		return 0
	}

	return r.Finished.Sub(r.Started)
}
