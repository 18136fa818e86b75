package kernel

import (
	"strings"

	"counter/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly
// initialized through NewOrderID. This error is returned when validating a
// zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID")

// OrderID is a value object that represents an operator-supplied order
// identifier. Identifiers are case-insensitive: the raw input is normalized
// to upper case on construction, so "a1" and "A1" denote the same order.
//
// The zero value of OrderID is invalid and must be constructed via NewOrderID.
//
// Example usage:
//
//	id, err := kernel.NewOrderID("a1")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id.String()) // "A1"
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from raw operator input.
// Surrounding whitespace is stripped and the identifier is normalized to
// upper case. An identifier that is empty after trimming is rejected.
//
// Returns:
//   - OrderID: the normalized identifier if validation passes
//   - error: a ValueIsRequiredError if the input is empty
func NewOrderID(raw string) (OrderID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}
	return OrderID{value: normalized}, nil
}

// String returns the normalized (upper-case) identifier.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
// Both sides are already normalized, so this is a plain string comparison.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks if the OrderID is properly constructed.
// Returns ErrOrderIDIsNotConstructed for a zero-value OrderID.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
