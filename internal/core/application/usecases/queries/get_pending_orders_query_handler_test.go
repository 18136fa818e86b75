package queries_test

import (
	"context"
	"testing"

	"counter/internal/core/application/usecases/queries"
	"counter/internal/core/domain/model/kernel"
	"counter/internal/core/domain/model/order"
	"counter/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T, id, customer string, items ...order.Item) *order.Order {
	t.Helper()
	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	o, err := order.NewOrder(orderID, customer, items)
	require.NoError(t, err)
	return o
}

func buildItem(t *testing.T, name string, price, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(name, price, quantity)
	require.NoError(t, err)
	return item
}

func TestGetPendingOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("returns empty read model for empty tracker", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)
		h := queries.NewGetPendingOrdersQueryHandler(tracker)

		responses, err := h.Handle(context.Background(), queries.NewGetPendingOrdersQuery())

		require.NoError(t, err)
		assert.Empty(t, responses)
	})

	t.Run("maps orders with derived totals", func(t *testing.T) {
		pending := []*order.Order{
			buildOrder(t, "A1", "Tom",
				buildItem(t, "Burger", 100, 2),
				buildItem(t, "Fries", 45, 3),
			),
			buildOrder(t, "A2", "Jerry", buildItem(t, "Cola", 30, 1)),
		}
		tracker, err := services.NewOrderTracker(pending, nil)
		require.NoError(t, err)
		h := queries.NewGetPendingOrdersQueryHandler(tracker)

		responses, err := h.Handle(context.Background(), queries.NewGetPendingOrdersQuery())

		require.NoError(t, err)
		require.Len(t, responses, 2)

		first := responses[0]
		assert.Equal(t, "A1", first.ID)
		assert.Equal(t, "Tom", first.Customer)
		require.Len(t, first.Items, 2)
		assert.Equal(t, queries.ItemResponse{Name: "Burger", Price: 100, Quantity: 2, Subtotal: 200}, first.Items[0])
		assert.Equal(t, queries.ItemResponse{Name: "Fries", Price: 45, Quantity: 3, Subtotal: 135}, first.Items[1])
		assert.Equal(t, 335, first.Total)

		second := responses[1]
		assert.Equal(t, "A2", second.ID)
		assert.Equal(t, 30, second.Total)
	})

	t.Run("rejects zero value query", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)
		h := queries.NewGetPendingOrdersQueryHandler(tracker)

		_, err := h.Handle(context.Background(), queries.GetPendingOrdersQuery{})

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetPendingOrdersQueryIsNotConstructed, err)
	})
}

func TestGetFulfilledOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("returns fulfilled orders oldest first", func(t *testing.T) {
		fulfilled := []*order.Order{
			buildOrder(t, "B1", "Spike", buildItem(t, "Hotdog", 60, 1)),
			buildOrder(t, "B2", "Tyke", buildItem(t, "Shake", 80, 2)),
		}
		tracker, err := services.NewOrderTracker(nil, fulfilled)
		require.NoError(t, err)
		h := queries.NewGetFulfilledOrdersQueryHandler(tracker)

		responses, err := h.Handle(context.Background(), queries.NewGetFulfilledOrdersQuery())

		require.NoError(t, err)
		require.Len(t, responses, 2)
		assert.Equal(t, "B1", responses[0].ID)
		assert.Equal(t, "B2", responses[1].ID)
		assert.Equal(t, 160, responses[1].Total)
	})

	t.Run("rejects zero value query", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)
		h := queries.NewGetFulfilledOrdersQueryHandler(tracker)

		_, err := h.Handle(context.Background(), queries.GetFulfilledOrdersQuery{})

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetFulfilledOrdersQueryIsNotConstructed, err)
	})
}
