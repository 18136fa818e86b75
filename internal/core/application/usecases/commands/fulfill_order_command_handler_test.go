package commands_test

import (
	"context"
	"errors"
	"testing"

	"counter/internal/core/application/usecases/commands"
	"counter/internal/core/domain/model/order"
	"counter/internal/core/domain/services"
	"counter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLoadedTracker(t *testing.T, ids ...string) *services.OrderTracker {
	t.Helper()
	tracker, err := services.NewOrderTracker(nil, nil)
	require.NoError(t, err)

	store := new(MockOrderStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)
	h := commands.NewAddOrderCommandHandler(tracker, store)
	for _, id := range ids {
		require.NoError(t, h.Handle(context.Background(), newAddCommand(t, id, "Tom")))
	}
	return tracker
}

func TestFulfillOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	tracker := newLoadedTracker(t, "A1", "A2")

	pendingStore := new(MockOrderStore)
	fulfilledStore := new(MockOrderStore)
	pendingStore.On("Save", ctx, mock.Anything).Return(nil).Once()
	fulfilledStore.On("Save", ctx, mock.Anything).Return(nil).Once()

	cmd, _ := commands.NewFulfillOrderCommand(1)
	h := commands.NewFulfillOrderCommandHandler(tracker, pendingStore, fulfilledStore)
	fulfilled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, fulfilled)
	assert.Equal(t, "A1", fulfilled.ID().String())
	assert.Equal(t, order.Fulfilled, fulfilled.Status())
	assert.Equal(t, 1, tracker.PendingCount())
	assert.Len(t, tracker.Fulfilled(), 1)
	pendingStore.AssertExpectations(t)
	fulfilledStore.AssertExpectations(t)

	savedPending := pendingStore.Calls[0].Arguments.Get(1).([]*order.Order)
	require.Len(t, savedPending, 1)
	assert.Equal(t, "A2", savedPending[0].ID().String())

	savedFulfilled := fulfilledStore.Calls[0].Arguments.Get(1).([]*order.Order)
	require.Len(t, savedFulfilled, 1)
	assert.Same(t, fulfilled, savedFulfilled[0])
}

func TestFulfillOrderCommandHandler_Handle_OutOfRange(t *testing.T) {
	ctx := context.Background()
	tracker := newLoadedTracker(t, "A1")

	pendingStore := new(MockOrderStore)
	fulfilledStore := new(MockOrderStore)

	cmd, _ := commands.NewFulfillOrderCommand(5)
	h := commands.NewFulfillOrderCommandHandler(tracker, pendingStore, fulfilledStore)
	fulfilled, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Nil(t, fulfilled)
	assert.Equal(t, 1, tracker.PendingCount())
	assert.Empty(t, tracker.Fulfilled())
	pendingStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	fulfilledStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFulfillOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	tracker := newLoadedTracker(t, "A1")

	h := commands.NewFulfillOrderCommandHandler(tracker, new(MockOrderStore), new(MockOrderStore))
	_, err := h.Handle(ctx, commands.FulfillOrderCommand{}) // not constructed properly

	require.Error(t, err)
	assert.Equal(t, commands.ErrFulfillOrderCommandIsNotConstructed, err)
}

func TestFulfillOrderCommandHandler_Handle_PendingSaveError(t *testing.T) {
	ctx := context.Background()
	tracker := newLoadedTracker(t, "A1")

	pendingStore := new(MockOrderStore)
	fulfilledStore := new(MockOrderStore)
	pendingStore.On("Save", ctx, mock.Anything).Return(errors.New("disk full")).Once()

	cmd, _ := commands.NewFulfillOrderCommand(1)
	h := commands.NewFulfillOrderCommandHandler(tracker, pendingStore, fulfilledStore)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	fulfilledStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
