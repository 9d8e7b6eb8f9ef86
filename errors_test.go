package chronos

import (
	"errors"
	"strings"
	"testing"
)

func TestInvalidDateError(t *testing.T) {
	_, err := NewDate(10, October, 1582)
	if err == nil {
		t.Fatal("expected an error for a date removed by the Gregorian reform")
	}

	var ide *InvalidDateError
	if !errors.As(err, &ide) {
		t.Fatalf("error type = %T, want *InvalidDateError", err)
	}
	if ide.Date.Month != October || ide.Date.Year != 1582 {
		t.Errorf("error carries the wrong date: %+v", ide.Date)
	}
	if msg := err.Error(); !strings.Contains(msg, "invalid calendar date") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestConvergenceErrorMessage(t *testing.T) {
	err := &ConvergenceError{Op: "light-time", Iterations: 20, Residual: 3e-5}
	msg := err.Error()
	for _, want := range []string{"light-time", "20", "3.000e-05"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q does not mention %q", msg, want)
		}
	}
}

func TestSentinelErrors(t *testing.T) {
	for _, err := range []error{ErrUnknownEquinox, ErrUnknownSolstice, ErrUnknownPlanet} {
		if err.Error() == "" {
			t.Error("sentinel error with an empty message")
		}
		if !strings.HasPrefix(err.Error(), "chronos: ") {
			t.Errorf("sentinel message %q does not carry the package prefix", err.Error())
		}
	}
}
