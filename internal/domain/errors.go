package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOutOfStock       = errors.New("quantity exceeds available stock")
	ErrEmptyCart        = errors.New("cart is empty")
)

// ValidationError rejects a checkout before any simulated latency. Field is
// empty when the error is not tied to a single input (empty cart).
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Reason
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// SimulationFailure is the catch-all for anything that goes wrong while an order
// is being built. The checkout can be resubmitted.
type SimulationFailure struct {
	Err error
}

func (e *SimulationFailure) Error() string {
	return "order simulation failed: " + e.Err.Error()
}

func (e *SimulationFailure) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsSimulationFailure(err error) bool {
	var f *SimulationFailure
	return errors.As(err, &f)
}
