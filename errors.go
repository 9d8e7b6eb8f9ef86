package chronos

import (
	"errors"
	"fmt"
)

// ErrUnknownEquinox is returned when the equinox selector is not one of the
// provided Equinox values.
var ErrUnknownEquinox = errors.New("chronos: unknown equinox selector")

// ErrUnknownSolstice is returned when the solstice selector is not one of
// the provided Solstice values.
var ErrUnknownSolstice = errors.New("chronos: unknown solstice selector")

// ErrUnknownPlanet is returned when a planet value is not one of the
// provided Planet constants.
var ErrUnknownPlanet = errors.New("chronos: unknown planet")

// InvalidDateError is returned by NewDate when the calendar date fails the
// validity checks of Date.IsValid.
type InvalidDateError struct {
	Date Date
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("chronos: invalid calendar date %v %d, %d", e.Date.Day, e.Date.Month, e.Date.Year)
}

// ConvergenceError is returned when one of the fixed-point solvers
// (light-time correction, equinox/solstice search) fails to reach the
// required precision within its iteration bound.
type ConvergenceError struct {
	Op         string  // solver that failed, e.g. "light-time"
	Iterations int     // iteration bound that was exhausted
	Residual   float64 // last correction magnitude, in the solver's units
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("chronos: %s iteration did not converge after %d steps (residual %.3e)", e.Op, e.Iterations, e.Residual)
}
