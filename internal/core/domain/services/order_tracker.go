package services

import (
	"counter/internal/core/domain/model/order"
	"counter/internal/pkg/errs"
)

// OrderTracker is a domain service that owns the two in-memory order
// collections for one running session: the pending orders awaiting
// fulfillment and the append-only log of fulfilled orders.
//
// Key responsibilities:
//   - Enforcing order id uniqueness across the pending collection
//   - Preserving insertion order (report numbering and fulfillment
//     selection both index by position)
//   - Moving orders atomically from pending to fulfilled
//
// Business rules:
//   - A pending order id may appear only once (case-insensitive)
//   - Fulfillment selection is a 1-based position into the pending list
//   - The fulfilled collection is append-only
//
// The tracker is deliberately persistence-free; the application layer loads
// the initial collections and saves after each successful mutation.
//
// Example usage:
//
//	tracker, _ := services.NewOrderTracker(pending, fulfilled)
//	if err := tracker.Add(o); err != nil {
//	    // duplicate order id
//	}
//	fulfilled, err := tracker.FulfillAt(1)
type OrderTracker struct {
	pending   []*order.Order
	fulfilled []*order.Order
}

// NewOrderTracker creates a tracker from two previously loaded collections.
// Every order must be properly constructed and the pending collection must
// not contain duplicate ids; a violation means the backing files are
// structurally corrupt and is reported as an error rather than repaired.
func NewOrderTracker(pending, fulfilled []*order.Order) (*OrderTracker, error) {
	tracker := &OrderTracker{
		pending:   make([]*order.Order, 0, len(pending)),
		fulfilled: make([]*order.Order, 0, len(fulfilled)),
	}

	for _, o := range pending {
		if err := tracker.Add(o); err != nil {
			return nil, err
		}
	}

	for _, o := range fulfilled {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		tracker.fulfilled = append(tracker.fulfilled, o)
	}

	return tracker, nil
}

// Add appends an order to the end of the pending collection.
//
// Returns an ObjectAlreadyExistsError naming the id if a pending order with
// the same (case-normalized) id already exists. On error no mutation occurs.
func (t *OrderTracker) Add(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	for _, existing := range t.pending {
		if existing.IsEqual(o) {
			return errs.NewObjectAlreadyExistsError("order", o.ID().String())
		}
	}

	t.pending = append(t.pending, o)
	return nil
}

// FulfillAt removes the pending order at the given 1-based position, marks it
// fulfilled, and appends it to the fulfilled collection.
//
// Returns a ValueIsOutOfRangeError if the position is outside [1, PendingCount()].
// On error both collections are left unchanged.
func (t *OrderTracker) FulfillAt(position int) (*order.Order, error) {
	if position < 1 || position > len(t.pending) {
		return nil, errs.NewValueIsOutOfRangeError("selection", position, 1, len(t.pending))
	}

	o := t.pending[position-1]
	if err := o.Fulfill(); err != nil {
		return nil, err
	}

	t.pending = append(t.pending[:position-1], t.pending[position:]...)
	t.fulfilled = append(t.fulfilled, o)
	return o, nil
}

// Pending returns a copy of the pending collection in insertion order.
func (t *OrderTracker) Pending() []*order.Order {
	pending := make([]*order.Order, len(t.pending))
	copy(pending, t.pending)
	return pending
}

// Fulfilled returns a copy of the fulfilled collection in fulfillment order.
func (t *OrderTracker) Fulfilled() []*order.Order {
	fulfilled := make([]*order.Order, len(t.fulfilled))
	copy(fulfilled, t.fulfilled)
	return fulfilled
}

// PendingCount returns the number of orders awaiting fulfillment.
func (t *OrderTracker) PendingCount() int {
	return len(t.pending)
}
