package engine

import (
	"errors"
	"fmt"
)

// Configuration errors raised at engine construction. All of them are
// fatal: the simulation does not start.
var (
	// ErrBadTimestep indicates a non-positive dt.
	ErrBadTimestep = errors.New("engine: timestep must be positive")

	// ErrBadSubsteps indicates a non-positive substep count.
	ErrBadSubsteps = errors.New("engine: substeps must be positive")

	// ErrBadBody indicates a body violating its invariants.
	ErrBadBody = errors.New("engine: invalid body")

	// ErrBadGraph indicates an interaction graph referencing invalid indices.
	ErrBadGraph = errors.New("engine: invalid interaction graph")

	// ErrBadArena indicates degenerate arena bounds.
	ErrBadArena = errors.New("engine: arena min must be below max on both axes")

	// ErrCollisionConflict indicates a penalty collision law registered
	// while the impulse resolver is active over body pairs, which would
	// double-count the collision response.
	ErrCollisionConflict = errors.New("engine: soft-collision law conflicts with impulse resolver")

	// ErrBodyCountChanged indicates a Reset with a different number of
	// bodies than the engine was built with.
	ErrBodyCountChanged = errors.New("engine: reset must supply the same number of bodies")
)

// ConfigError wraps a configuration failure with the component it
// came from.
type ConfigError struct {
	Component string
	Wrapped   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Component, e.Wrapped)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}

func configErr(component string, err error) error {
	return &ConfigError{Component: component, Wrapped: err}
}
