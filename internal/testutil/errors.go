package testutil

import "errors"

// ErrSimulated is a sentinel error for exercising failing collaborators in tests.
var ErrSimulated = errors.New("simulated error for testing")
