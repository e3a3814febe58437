package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
)

// PizzaRepository defines the persistence contract for the pizza catalog.
type PizzaRepository interface {
	// Add persists a new catalog entry. The pizzas table carries a unique
	// index on name; a duplicate insert surfaces as a store error.
	Add(ctx context.Context, aggregate *pizza.Pizza) error

	// Get retrieves a catalog entry by id. Returns an ObjectNotFoundError
	// when no entry exists; the lifecycle engine relies on that to reject
	// invalid pizza selections.
	Get(ctx context.Context, id kernel.UUID) (*pizza.Pizza, error)

	// GetByName retrieves a catalog entry by its unique name.
	GetByName(ctx context.Context, name string) (*pizza.Pizza, error)
}
