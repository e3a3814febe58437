package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order aggregate.
// The aggregate spans three tables (orders, customers, pizza_items); every
// write method touches all of them as one unit so the aggregate is never
// partially persisted.
type OrderRepository interface {
	// Add persists a new order aggregate: the order row, its customer row,
	// and one row per line item.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order row's mutable fields (status, updated_at).
	// Line items are not touched; use ReplaceItems for those.
	Update(ctx context.Context, aggregate *order.Order) error

	// ReplaceItems deletes every stored line item of the order and inserts
	// the aggregate's current item set. Full replacement, never a merge.
	ReplaceItems(ctx context.Context, aggregate *order.Order) error

	// Get retrieves the complete aggregate (order, customer, line items)
	// by order id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order together with its customer and line items.
	// Ownership is explicit: the children are deleted here, not by a
	// database-level cascade alone.
	Delete(ctx context.Context, id kernel.UUID) error
}
