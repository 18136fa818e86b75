package queries

import (
	"context"

	"counter/internal/core/domain/services"
)

// GetFulfilledOrdersQueryHandler builds the fulfilled-orders read model from
// the session tracker.
type GetFulfilledOrdersQueryHandler struct {
	tracker *services.OrderTracker
}

// NewGetFulfilledOrdersQueryHandler creates a handler for fulfilled order queries.
func NewGetFulfilledOrdersQueryHandler(tracker *services.OrderTracker) GetFulfilledOrdersQueryHandler {
	return GetFulfilledOrdersQueryHandler{tracker: tracker}
}

// Handle executes the query and returns one response per fulfilled order,
// oldest first.
func (h GetFulfilledOrdersQueryHandler) Handle(
	_ context.Context,
	query GetFulfilledOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return toOrderResponses(h.tracker.Fulfilled()), nil
}
