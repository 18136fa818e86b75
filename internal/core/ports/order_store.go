// Package ports defines the contracts between the application core and its
// outbound adapters.
package ports

import (
	"context"

	"counter/internal/core/domain/model/order"
)

// OrderStore defines the persistence contract for one named collection of
// orders (the pending file or the fulfilled file). The full sequence is
// loaded at startup and rewritten after each successful mutation; there is
// no partial update.
type OrderStore interface {
	// Load reads the complete order sequence from the backing location.
	// A location that does not exist yet is not an error: it yields an
	// empty sequence. Structurally invalid content is reported as an error
	// and never silently discarded.
	Load(ctx context.Context) ([]*order.Order, error)

	// Save serializes the full sequence to the backing location,
	// replacing any prior content.
	Save(ctx context.Context, orders []*order.Order) error
}
