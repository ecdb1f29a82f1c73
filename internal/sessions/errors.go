package sessions

import "errors"

// ErrNotFound is returned when a profile has no recorded sessions.
var ErrNotFound = errors.New("sessions: not found")
