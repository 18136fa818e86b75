package commands

import (
	"context"

	"counter/internal/core/domain/model/order"
	"counter/internal/core/domain/services"
	"counter/internal/core/ports"
)

// AddOrderCommandHandler handles the business logic for accepting an order.
// Builds the aggregate, appends it to the pending collection, and rewrites
// the pending store so the new order survives a restart.
//
// Example:
//
//	handler := NewAddOrderCommandHandler(tracker, pendingStore)
//	cmd, _ := NewAddOrderCommand(id, "Tom", items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order was not accepted: %w", err)
//	}
//	// Order is now pending and persisted
type AddOrderCommandHandler struct {
	tracker      *services.OrderTracker
	pendingStore ports.OrderStore
}

// NewAddOrderCommandHandler creates a handler for order acceptance.
// Requires the session tracker and the pending order store.
func NewAddOrderCommandHandler(tracker *services.OrderTracker, pendingStore ports.OrderStore) AddOrderCommandHandler {
	return AddOrderCommandHandler{
		tracker:      tracker,
		pendingStore: pendingStore,
	}
}

// Handle processes the add order command.
// A duplicate order id aborts the operation before any mutation, so nothing
// is persisted in that case. On success the pending store holds the full
// updated collection.
func (h AddOrderCommandHandler) Handle(ctx context.Context, cmd AddOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), cmd.Items())
	if err != nil {
		return err
	}

	if err = h.tracker.Add(o); err != nil {
		return err
	}

	return h.pendingStore.Save(ctx, h.tracker.Pending())
}
