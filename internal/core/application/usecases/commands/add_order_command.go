// Package commands contains write operations that mutate system state.
// Each command is a constructor-validated request object paired with a
// handler that applies it to the domain and persists the result.
package commands

import (
	"errors"

	"counter/internal/core/domain/model/kernel"
	"counter/internal/core/domain/model/order"
	"counter/internal/pkg/guard"
)

var (
	ErrAddOrderCommandIsNotConstructed = errors.New(
		"AddOrderCommand must be created via NewAddOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("order must contain at least one item")
)

// AddOrderCommand represents a request to accept a new order at the counter.
// Encapsulates the order identifier, the customer name, and the product lines.
//
// The item list is validated here, before any mutation: a command with no
// items cannot be constructed, so an empty order can never reach the pending
// collection.
//
// Example:
//
//	id, _ := kernel.NewOrderID("a1")
//	burger, _ := order.NewItem("Burger", 100, 2)
//	cmd, err := NewAddOrderCommand(id, "Tom", []order.Item{burger})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewAddOrderCommandHandler(tracker, pendingStore)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add order: %w", err)
//	}
type AddOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	customer string
	items    []order.Item

	guard guard.ConstructorGuard
}

// NewAddOrderCommand creates a command to accept a new order.
// Validates that the order id is constructed and that at least one valid
// item is supplied. The customer name is free text and not validated.
// Returns an error if any validation fails.
func NewAddOrderCommand(orderID kernel.OrderID, customer string, items []order.Item) (AddOrderCommand, error) {
	addCommand := AddOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setOrderID(orderID),
		addCommand.setItems(items),
	); err != nil {
		return AddOrderCommand{}, err
	}

	addCommand.customer = customer
	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrderCommandIsNotConstructed if validation fails.
func (c AddOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommandIsNotConstructed)
}

// OrderID returns the case-normalized order identifier.
func (c AddOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Customer returns the customer name.
func (c AddOrderCommand) Customer() string {
	return c.customer
}

// Items returns the product lines for the new order.
func (c AddOrderCommand) Items() []order.Item {
	return c.items
}

func (c *AddOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
