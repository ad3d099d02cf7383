package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is matched by every amount rejected by the validator.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMalformedInput means raw text could not be turned into a decimal amount.
	ErrMalformedInput = errors.New("malformed input")
	// ErrQuit is returned by readers when the user asks to leave.
	ErrQuit = errors.New("quit requested")
)

// Rejection reasons reported by InvalidAmountError.
const (
	ReasonNegative  = "amount is negative"
	ReasonPrecision = "more than two fractional digits"
	ReasonTooLarge  = "amount is not less than one quadrillion"
)

// InvalidAmountError describes why an amount was rejected.
type InvalidAmountError struct {
	Input  string
	Reason string
}

func newInvalidAmountError(input, reason string) *InvalidAmountError {
	return &InvalidAmountError{Input: input, Reason: reason}
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %s: %s", e.Input, e.Reason)
}

func (e *InvalidAmountError) Unwrap() error {
	return ErrInvalidAmount
}
