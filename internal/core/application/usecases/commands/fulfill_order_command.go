package commands

import (
	"errors"
	"fmt"

	"counter/internal/pkg/errs"
	"counter/internal/pkg/guard"
)

var ErrFulfillOrderCommandIsNotConstructed = errors.New(
	"FulfillOrderCommand must be created via NewFulfillOrderCommand constructor",
)

// FulfillOrderCommand represents a request to fulfill the pending order at a
// 1-based position in the pending list. Cancellation is not a command: the
// interactive boundary simply never constructs one.
//
// Example:
//
//	cmd, err := NewFulfillOrderCommand(1)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewFulfillOrderCommandHandler(tracker, pendingStore, fulfilledStore)
//	fulfilled, err := handler.Handle(ctx, cmd)
type FulfillOrderCommand struct { //nolint:recvcheck //using for validation
	selection int

	guard guard.ConstructorGuard
}

// NewFulfillOrderCommand creates a command to fulfill the order at the given
// 1-based position. Positions below 1 are rejected here; the upper bound is
// only known to the tracker and is checked by the handler.
func NewFulfillOrderCommand(selection int) (FulfillOrderCommand, error) {
	fulfillCommand := FulfillOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := fulfillCommand.setSelection(selection); err != nil {
		return FulfillOrderCommand{}, err
	}

	return fulfillCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFulfillOrderCommandIsNotConstructed if validation fails.
func (c FulfillOrderCommand) Validate() error {
	return c.guard.Validate(ErrFulfillOrderCommandIsNotConstructed)
}

// Selection returns the 1-based position of the order to fulfill.
func (c FulfillOrderCommand) Selection() int {
	return c.selection
}

func (c *FulfillOrderCommand) setSelection(selection int) error {
	if selection < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"selection",
			fmt.Errorf("%d is not a valid position", selection),
		)
	}

	c.selection = selection
	return nil
}
