package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrOrderAlreadyPaid rejects settlement of an order that is already
	// paid, before any gateway call is made.
	ErrOrderAlreadyPaid = errors.New("order already paid")
)

// ReferenceNotFoundError reports which reference of an order-creation
// request could not be resolved. Field is one of "cart", "shipping", "tax".
type ReferenceNotFoundError struct {
	Field string
	ID    string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s does not exist", e.Field, e.ID)
}

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// GatewayError wraps a payment-gateway failure together with the settlement
// step it aborted at.
type GatewayError struct {
	Step string
	Err  error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Step, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
