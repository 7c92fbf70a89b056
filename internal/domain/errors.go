package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrInvalidGoal = errors.New("invalid goal grid")
	ErrRateLimited = errors.New("rate limited")
)

type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("status %d", e.Status)
	}

	return fmt.Sprintf("status %d: %s", e.Status, body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrRateLimited && e.Status == http.StatusTooManyRequests
}

// IsRateLimit recognizes throttling both from the status code and from
// error text, since some endpoints report 429 conditions inside other
// status responses.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "too many requests")
}
