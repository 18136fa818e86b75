package order

import (
	"fmt"

	"counter/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single allowed transition to ensure
// orders follow the correct counter workflow.
//
// State transitions:
//
//	Pending ──> Fulfilled
//
// Fulfilled is a final state with no further transitions. Status is a value
// object that validates state transitions and provides string representations
// for display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is accepted at the counter.
	// Orders in this status are waiting to be fulfilled.
	Pending

	// Fulfilled indicates the order has been handed over to the customer.
	// This is a final state with no further transitions allowed.
	Fulfilled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Fulfilled: "Fulfilled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Fulfilled: "Fulfilled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Fulfilled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., persisted files) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Pending" or "Fulfilled" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Fulfill transitions the status to Fulfilled.
//
// Valid transitions:
//   - Pending -> Fulfilled (order handed over)
//
// Invalid transitions:
//   - Fulfilled -> Fulfilled (already fulfilled)
//   - Unknown -> Fulfilled (invalid initial state)
//
// Returns:
//   - (Fulfilled, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.Fulfill() to enforce the state machine.
func (s Status) Fulfill() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fulfill", s.String()),
		)
	}

	return Fulfilled, nil
}
