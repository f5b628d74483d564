package driver

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadySorted rejects a start on a sequence that finished sorting.
	ErrAlreadySorted = errors.New("driver: sequence is already sorted")

	// ErrFeatureUnavailable rejects an algorithm that is not enabled.
	ErrFeatureUnavailable = errors.New("driver: feature not available")

	// ErrSortInProgress rejects any state change while a run is active.
	ErrSortInProgress = errors.New("driver: a sort is already running")

	// ErrNoSequence rejects a start before anything was generated.
	ErrNoSequence = errors.New("driver: no sequence generated")

	// ErrNotSorted means an algorithm finished without ordering the sequence.
	ErrNotSorted = errors.New("driver: sequence not sorted after run")
)

// ConfigError reports a rejected setting and the value it was reset to.
type ConfigError struct {
	Setting string
	Value   string
	Reset   string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q (reset to %s): %v", e.Setting, e.Value, e.Reset, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
