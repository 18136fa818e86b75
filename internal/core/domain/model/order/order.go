package order

import (
	"errors"

	"counter/internal/core/domain/model/kernel"
	"counter/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a customer order taken at the counter. It is the aggregate
// root that manages the order lifecycle from acceptance to fulfillment.
//
// Order follows these invariants:
//   - Must have a valid, case-normalized identifier
//   - Must contain at least one item
//   - Every item satisfies the Item invariants
//   - Status transitions follow the Pending -> Fulfilled state machine
//   - Can only be created through NewOrder or RestoreOrder
//
// The order total is always derived from the items and never stored.
type Order struct {
	// id is the operator-supplied, upper-cased identifier
	id kernel.OrderID

	// customer is free text with no validation rules
	customer string

	// items is the ordered, non-empty list of product lines
	items []Item

	// status is the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new pending Order with validation. This is the only way
// to create a fresh Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Case-normalized order identifier
//   - customer: Customer name (free text, may be empty)
//   - items: Product lines (must contain at least one valid item)
//
// Returns:
//   - *Order: the created order in Pending status if all validations pass
//   - error: validation error if any parameter is invalid
//
// Example:
//
//	id, _ := kernel.NewOrderID("a1")
//	burger, _ := order.NewItem("Burger", 100, 2)
//	o, err := order.NewOrder(id, "Tom", []order.Item{burger})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.OrderID, customer string, items []Item) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.customer = customer
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit status.
// It applies the same invariants as NewOrder plus status validation, so a
// structurally corrupt file cannot produce an invalid aggregate.
func RestoreOrder(id kernel.OrderID, customer string, items []Item, status Status) (*Order, error) {
	o, err := NewOrder(id, customer, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
//
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
// Orders are considered equal if they have the same (case-normalized) ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns the customer name.
func (o *Order) Customer() string {
	return o.customer
}

// Items returns a copy of the order's product lines.
// The copy preserves insertion order and keeps the aggregate immutable
// from the outside.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the derived order total: the sum of price multiplied by
// quantity over all items. The total is never stored.
func (o *Order) Total() int {
	total := 0
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// Fulfill marks the order as fulfilled (handed over to the customer).
//
// This method enforces the following business rules:
//   - The order must be in Pending status
//   - Fulfilled is a final state with no further transitions
//
// Returns:
//   - nil on successful fulfillment
//   - error if the order is not in Pending status
func (o *Order) Fulfill() error {
	newStatus, err := o.status.Fulfill()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setItems validates and sets the order's product lines.
// The list must not be empty and every item must be properly constructed.
// This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
