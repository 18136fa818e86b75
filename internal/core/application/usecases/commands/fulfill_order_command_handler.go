package commands

import (
	"context"

	"counter/internal/core/domain/model/order"
	"counter/internal/core/domain/services"
	"counter/internal/core/ports"
)

// FulfillOrderCommandHandler handles the business logic for fulfilling an
// order: the selected order moves from the pending collection to the
// fulfilled log and both stores are rewritten.
//
// Example:
//
//	handler := NewFulfillOrderCommandHandler(tracker, pendingStore, fulfilledStore)
//	cmd, _ := NewFulfillOrderCommand(1)
//
//	fulfilled, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrValueIsOutOfRange) {
//	    // selection does not name a pending order; ask again
//	}
type FulfillOrderCommandHandler struct {
	tracker        *services.OrderTracker
	pendingStore   ports.OrderStore
	fulfilledStore ports.OrderStore
}

// NewFulfillOrderCommandHandler creates a handler for order fulfillment.
// Requires the session tracker and both order stores.
func NewFulfillOrderCommandHandler(
	tracker *services.OrderTracker,
	pendingStore ports.OrderStore,
	fulfilledStore ports.OrderStore,
) FulfillOrderCommandHandler {
	return FulfillOrderCommandHandler{
		tracker:        tracker,
		pendingStore:   pendingStore,
		fulfilledStore: fulfilledStore,
	}
}

// Handle processes the fulfill order command and returns the fulfilled order.
// An out-of-range selection aborts before any mutation; the caller may ask
// the operator for another selection. On success both backing files reflect
// the move.
func (h FulfillOrderCommandHandler) Handle(ctx context.Context, cmd FulfillOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	fulfilled, err := h.tracker.FulfillAt(cmd.Selection())
	if err != nil {
		return nil, err
	}

	if err = h.pendingStore.Save(ctx, h.tracker.Pending()); err != nil {
		return nil, err
	}

	if err = h.fulfilledStore.Save(ctx, h.tracker.Fulfilled()); err != nil {
		return nil, err
	}

	return fulfilled, nil
}
