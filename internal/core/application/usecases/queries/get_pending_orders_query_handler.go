package queries

import (
	"context"

	"counter/internal/core/domain/model/order"
	"counter/internal/core/domain/services"
)

// GetPendingOrdersQueryHandler builds the pending-orders read model from the
// session tracker. Insertion order is preserved because report numbering and
// fulfillment selection both index by position.
type GetPendingOrdersQueryHandler struct {
	tracker *services.OrderTracker
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
func NewGetPendingOrdersQueryHandler(tracker *services.OrderTracker) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{tracker: tracker}
}

// Handle executes the query and returns one response per pending order.
func (h GetPendingOrdersQueryHandler) Handle(
	_ context.Context,
	query GetPendingOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return toOrderResponses(h.tracker.Pending()), nil
}

// toOrderResponses maps domain aggregates to the shared report read model.
func toOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		items := make([]ItemResponse, 0, len(o.Items()))
		for _, item := range o.Items() {
			items = append(items, ItemResponse{
				Name:     item.Name(),
				Price:    item.Price(),
				Quantity: item.Quantity(),
				Subtotal: item.Subtotal(),
			})
		}

		responses = append(responses, OrderResponse{
			ID:       o.ID().String(),
			Customer: o.Customer(),
			Items:    items,
			Total:    o.Total(),
		})
	}

	return responses
}
