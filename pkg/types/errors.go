package types

import (
	"errors"
	"fmt"
)

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
)

// Record operation errors raised by the store.
// ErrConflict wraps ErrConstraint, so a uniqueness failure satisfies
// errors.Is for both values.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConstraint = errors.New("constraint violated")
	ErrConflict   = fmt.Errorf("duplicate value: %w", ErrConstraint)
)

// Validation errors raised by the catalog before any write.
// The specific values wrap ErrValidation.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNoPredicate = fmt.Errorf("at least one of title or author must be provided: %w", ErrValidation)
	ErrMinAge      = fmt.Errorf("user must be at least 15 years old: %w", ErrValidation)
)

// Business-rule errors raised by the loan ledger.
var (
	ErrLoanLimit   = errors.New("user already holds the maximum number of loans")
	ErrUnavailable = errors.New("no copies available")
)
