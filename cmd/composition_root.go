package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"counter/internal/adapters/out/jsonfile"
	"counter/internal/core/application/usecases/commands"
	"counter/internal/core/application/usecases/queries"
	"counter/internal/core/domain/model/order"
	"counter/internal/core/domain/services"
)

// CompositionRoot wires the object graph for one session: both file stores,
// the tracker restored from them, and factories for every use case handler.
type CompositionRoot struct {
	tracker        *services.OrderTracker
	pendingStore   *jsonfile.Store
	fulfilledStore *jsonfile.Store
}

// NewCompositionRoot builds the stores from the configured paths and restores
// the tracker from whatever the files hold. Missing files restore as empty
// collections; corrupt files abort startup rather than risk overwriting them.
func NewCompositionRoot(ctx context.Context, configs Config, logger *slog.Logger) (CompositionRoot, error) {
	pendingStore, err := jsonfile.NewStore(configs.PendingOrdersFile, order.Pending, logger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create pending order store: %w", err)
	}

	fulfilledStore, err := jsonfile.NewStore(configs.FulfilledOrdersFile, order.Fulfilled, logger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create fulfilled order store: %w", err)
	}

	pending, err := pendingStore.Load(ctx)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("load pending orders: %w", err)
	}

	fulfilled, err := fulfilledStore.Load(ctx)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("load fulfilled orders: %w", err)
	}

	tracker, err := services.NewOrderTracker(pending, fulfilled)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("restore order tracker: %w", err)
	}

	return CompositionRoot{
		tracker:        tracker,
		pendingStore:   pendingStore,
		fulfilledStore: fulfilledStore,
	}, nil
}

func (c *CompositionRoot) CreateAddOrderCommandHandler() commands.AddOrderCommandHandler {
	return commands.NewAddOrderCommandHandler(c.tracker, c.pendingStore)
}

func (c *CompositionRoot) CreateFulfillOrderCommandHandler() commands.FulfillOrderCommandHandler {
	return commands.NewFulfillOrderCommandHandler(c.tracker, c.pendingStore, c.fulfilledStore)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.tracker)
}

func (c *CompositionRoot) CreateGetFulfilledOrdersQueryHandler() queries.GetFulfilledOrdersQueryHandler {
	return queries.NewGetFulfilledOrdersQueryHandler(c.tracker)
}
