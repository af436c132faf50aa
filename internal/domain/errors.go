package domain

import (
	"errors"
	"fmt"
)

// ErrDeviceNotFound is returned by status lookups for identifiers outside
// the fixed device set.
var ErrDeviceNotFound = errors.New("device not found")

// ErrInvalidCommand is returned when execution is requested for a command
// that still carries a sentinel device or action.
var ErrInvalidCommand = errors.New("invalid command")

// InterpretationError reports that an utterance did not resolve into a
// valid command. Hint carries a user-facing suggestion chosen by the
// smalltalk classifier; it never reaches logs as an error condition.
type InterpretationError struct {
	Device string
	Action string
	Hint   string
}

func (e *InterpretationError) Error() string {
	return fmt.Sprintf("invalid command: device=%s, action=%s", e.Device, e.Action)
}
