package queries

import (
	"errors"

	"counter/internal/pkg/guard"
)

var ErrGetFulfilledOrdersQueryIsNotConstructed = errors.New(
	"GetFulfilledOrdersQuery must be created via NewGetFulfilledOrdersQuery constructor",
)

// GetFulfilledOrdersQuery retrieves the historical log of fulfilled orders
// in fulfillment order.
//
// Example:
//
//	query := NewGetFulfilledOrdersQuery()
//	handler := NewGetFulfilledOrdersQueryHandler(tracker)
//
//	orders, err := handler.Handle(ctx, query)
type GetFulfilledOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFulfilledOrdersQuery creates a query to retrieve the fulfilled log.
func NewGetFulfilledOrdersQuery() GetFulfilledOrdersQuery {
	return GetFulfilledOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFulfilledOrdersQueryIsNotConstructed if validation fails.
func (q GetFulfilledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetFulfilledOrdersQueryIsNotConstructed)
}
