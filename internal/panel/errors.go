package panel

import (
	"errors"
	"fmt"
)

// ErrMissingInput is returned when a required field is blank. No request is
// made in that case.
var ErrMissingInput = errors.New("missing required input")

// ActionError is a backend answer with success=false.
type ActionError struct {
	Action  string
	Message string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, e.Message)
}
