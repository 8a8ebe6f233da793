package incline

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrUnknownPreset indicates a preset index outside the height table.
	ErrUnknownPreset = errors.New("incline: unknown height preset")

	// ErrInvalidPresets indicates an empty or inconsistent preset table.
	ErrInvalidPresets = errors.New("incline: invalid preset table")

	// ErrDegenerateData indicates regression input that cannot be fitted.
	ErrDegenerateData = errors.New("incline: degenerate regression data")

	// ErrNoConvergence indicates the nonlinear solver did not converge.
	ErrNoConvergence = errors.New("incline: fit did not converge")
)

// FitError wraps an error with the regression stage that produced it.
type FitError struct {
	Stage   string
	Wrapped error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("%s fit: %v", e.Stage, e.Wrapped)
}

func (e *FitError) Unwrap() error {
	return e.Wrapped
}
