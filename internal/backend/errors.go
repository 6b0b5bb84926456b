package backend

import "fmt"

// APIError is returned when the backend answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error %d: %s", e.StatusCode, e.Message)
}

// NetworkError wraps transport failures (connection refused, reset, canceled).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
