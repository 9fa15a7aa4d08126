package observer

import "errors"

// Sentinel errors for observer operations.
var (
	ErrObserverPanic   = errors.New("observer panic")
	ErrInvalidObserver = errors.New("invalid observer")
)
