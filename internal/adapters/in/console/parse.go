package console

import (
	"errors"
	"strconv"
	"strings"
)

// Input validation errors surfaced to the operator. Each maps to one
// re-prompt message; the prompt loop lives in the Console, keeping these
// functions pure and testable without any input/output.
var (
	ErrPriceNotInteger     = errors.New("price must be an integer")
	ErrPriceNegative       = errors.New("price must be non-negative")
	ErrQuantityNotInteger  = errors.New("quantity must be an integer")
	ErrQuantityNotPositive = errors.New("quantity must be a positive integer")
	ErrSelectionInvalid    = errors.New("please enter a valid number")
)

// ParsePrice validates a raw price entry. Prices are whole currency units,
// zero allowed.
func ParsePrice(raw string) (int, error) {
	price, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrPriceNotInteger
	}
	if price < 0 {
		return 0, ErrPriceNegative
	}
	return price, nil
}

// ParseQuantity validates a raw quantity entry. Quantities are whole units,
// at least one.
func ParseQuantity(raw string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrQuantityNotInteger
	}
	if quantity <= 0 {
		return 0, ErrQuantityNotPositive
	}
	return quantity, nil
}

// ParseSelection validates a raw fulfillment selection against the current
// pending count. The empty string is not handled here: cancellation is
// decided by the caller before parsing.
func ParseSelection(raw string, count int) (int, error) {
	selection, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrSelectionInvalid
	}
	if selection < 1 || selection > count {
		return 0, ErrSelectionInvalid
	}
	return selection, nil
}
