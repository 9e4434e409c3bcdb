package planner

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrProfileMissing is returned when an operation needs a profile
	// and none exists yet. Users have to complete onboarding first.
	ErrProfileMissing = errors.New("no profile exists yet, complete onboarding first")

	// ErrGoalNotFound is returned when the referenced goal does not exist.
	ErrGoalNotFound = errors.New("there is no goal matching your query")

	// ErrCapacityExceeded is returned when a goal's monthly contribution,
	// combined with all other goals, would exceed the profile's monthly
	// investment capacity. Use errors.As with CapacityError for the
	// amounts.
	ErrCapacityExceeded = errors.New("this would exceed your monthly investment capacity")

	// ErrInvalidInput is returned for requests that fail validation.
	// It is always wrapped with a description of the offending field.
	ErrInvalidInput = errors.New("invalid input")
)

// CapacityError is the rejection of a goal create or update by the
// capacity check. It carries the computed contribution and the remaining
// capacity so that callers can explain the shortfall precisely.
type CapacityError struct {
	Contribution decimal.Decimal // Monthly contribution the rejected goal requires
	Remaining    decimal.Decimal // Monthly capacity still unallocated
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("%v: the goal requires a monthly contribution of %s, but only %s of your monthly capacity is unallocated", ErrCapacityExceeded, e.Contribution, e.Remaining)
}

func (e CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
