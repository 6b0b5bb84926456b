package github

import (
	"fmt"
	"time"
)

// RateLimitError is returned for a 403 from the search API. Reset is zero
// when the response carried no usable X-RateLimit-Reset header.
type RateLimitError struct {
	Reset time.Time
}

func (e *RateLimitError) Error() string {
	if e.Reset.IsZero() {
		return "github: rate limit exceeded"
	}
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.Reset.Format(time.RFC3339))
}

// APIError is any other non-2xx answer. Message is empty when the body had
// no "message" field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github: status %d", e.StatusCode)
	}
	return fmt.Sprintf("github: status %d: %s", e.StatusCode, e.Message)
}
