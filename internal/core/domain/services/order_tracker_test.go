package services_test

import (
	"testing"

	"counter/internal/core/domain/model/kernel"
	"counter/internal/core/domain/model/order"
	"counter/internal/core/domain/services"
	"counter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, id, customer string) *order.Order {
	t.Helper()
	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	item, err := order.NewItem("Burger", 100, 2)
	require.NoError(t, err)
	o, err := order.NewOrder(orderID, customer, []order.Item{item})
	require.NoError(t, err)
	return o
}

func TestNewOrderTracker(t *testing.T) {
	t.Run("creates empty tracker", func(t *testing.T) {
		tracker, err := services.NewOrderTracker(nil, nil)

		require.NoError(t, err)
		assert.Empty(t, tracker.Pending())
		assert.Empty(t, tracker.Fulfilled())
	})

	t.Run("loads both collections", func(t *testing.T) {
		pending := []*order.Order{newPendingOrder(t, "A1", "Tom")}
		fulfilled := []*order.Order{newPendingOrder(t, "B1", "Jerry")}

		tracker, err := services.NewOrderTracker(pending, fulfilled)

		require.NoError(t, err)
		assert.Len(t, tracker.Pending(), 1)
		assert.Len(t, tracker.Fulfilled(), 1)
	})

	t.Run("rejects duplicate ids in loaded pending collection", func(t *testing.T) {
		pending := []*order.Order{
			newPendingOrder(t, "A1", "Tom"),
			newPendingOrder(t, "a1", "Jerry"),
		}

		_, err := services.NewOrderTracker(pending, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	})

	t.Run("rejects zero value order in fulfilled collection", func(t *testing.T) {
		_, err := services.NewOrderTracker(nil, []*order.Order{{}})

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrderTracker_Add(t *testing.T) {
	t.Run("appends to the pending collection", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)

		err := tracker.Add(newPendingOrder(t, "A1", "Tom"))

		require.NoError(t, err)
		require.Equal(t, 1, tracker.PendingCount())
		assert.Equal(t, "A1", tracker.Pending()[0].ID().String())
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)
		require.NoError(t, tracker.Add(newPendingOrder(t, "A1", "Tom")))
		require.NoError(t, tracker.Add(newPendingOrder(t, "A2", "Jerry")))
		require.NoError(t, tracker.Add(newPendingOrder(t, "A3", "Spike")))

		pending := tracker.Pending()

		assert.Equal(t, "A1", pending[0].ID().String())
		assert.Equal(t, "A2", pending[1].ID().String())
		assert.Equal(t, "A3", pending[2].ID().String())
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)
		require.NoError(t, tracker.Add(newPendingOrder(t, "A1", "Tom")))

		err := tracker.Add(newPendingOrder(t, "A1", "Jerry"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		assert.Contains(t, err.Error(), "A1")
		assert.Equal(t, 1, tracker.PendingCount())
	})

	t.Run("duplicate check is case-insensitive", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)
		require.NoError(t, tracker.Add(newPendingOrder(t, "A1", "Tom")))

		err := tracker.Add(newPendingOrder(t, "a1", "Jerry"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	})

	t.Run("rejects zero value order", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)

		err := tracker.Add(&order.Order{})

		require.Error(t, err)
		assert.Equal(t, 0, tracker.PendingCount())
	})
}

func TestOrderTracker_FulfillAt(t *testing.T) {
	t.Run("moves the selected order", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)
		require.NoError(t, tracker.Add(newPendingOrder(t, "A1", "Tom")))

		fulfilled, err := tracker.FulfillAt(1)

		require.NoError(t, err)
		assert.Equal(t, "A1", fulfilled.ID().String())
		assert.Equal(t, order.Fulfilled, fulfilled.Status())
		assert.Equal(t, 0, tracker.PendingCount())
		require.Len(t, tracker.Fulfilled(), 1)
		assert.Same(t, fulfilled, tracker.Fulfilled()[0])
	})

	t.Run("shifts later orders down", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)
		require.NoError(t, tracker.Add(newPendingOrder(t, "A1", "Tom")))
		require.NoError(t, tracker.Add(newPendingOrder(t, "A2", "Jerry")))
		require.NoError(t, tracker.Add(newPendingOrder(t, "A3", "Spike")))

		_, err := tracker.FulfillAt(2)

		require.NoError(t, err)
		pending := tracker.Pending()
		require.Len(t, pending, 2)
		assert.Equal(t, "A1", pending[0].ID().String())
		assert.Equal(t, "A3", pending[1].ID().String())
	})

	t.Run("conserves orders across the move", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)
		require.NoError(t, tracker.Add(newPendingOrder(t, "A1", "Tom")))
		require.NoError(t, tracker.Add(newPendingOrder(t, "A2", "Jerry")))
		pendingBefore, fulfilledBefore := tracker.PendingCount(), len(tracker.Fulfilled())

		_, err := tracker.FulfillAt(1)

		require.NoError(t, err)
		assert.Equal(t, pendingBefore-1, tracker.PendingCount())
		assert.Len(t, tracker.Fulfilled(), fulfilledBefore+1)
	})

	t.Run("rejects selection below range", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)
		require.NoError(t, tracker.Add(newPendingOrder(t, "A1", "Tom")))

		_, err := tracker.FulfillAt(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 1, tracker.PendingCount())
	})

	t.Run("rejects selection above range", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)
		require.NoError(t, tracker.Add(newPendingOrder(t, "A1", "Tom")))

		_, err := tracker.FulfillAt(2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects any selection when pending is empty", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)

		_, err := tracker.FulfillAt(1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrderTracker_Snapshots(t *testing.T) {
	t.Run("mutating a snapshot does not touch the tracker", func(t *testing.T) {
		tracker, _ := services.NewOrderTracker(nil, nil)
		require.NoError(t, tracker.Add(newPendingOrder(t, "A1", "Tom")))

		snapshot := tracker.Pending()
		snapshot[0] = newPendingOrder(t, "ZZ", "Nobody")

		assert.Equal(t, "A1", tracker.Pending()[0].ID().String())
	})
}
