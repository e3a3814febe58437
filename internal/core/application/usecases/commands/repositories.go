// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pizzeria/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PizzaRepoFactory provides access to the catalog repository within a transaction.
	PizzaRepoFactory interface {
		PizzaRepository() ports.PizzaRepository
	}

	// PizzaUoW manages transactions for catalog-only operations.
	PizzaUoW interface {
		TxManager
		PizzaRepoFactory
	}

	// PizzaUoWFactory creates new catalog unit of work instances.
	PizzaUoWFactory interface {
		Create() PizzaUoW
	}

	// UoW manages transactions for operations spanning the order aggregate
	// and the catalog. The order lifecycle handlers validate pizza
	// selections against the catalog before opening the transaction, then
	// write the aggregate inside it.
	UoW interface {
		TxManager
		OrderRepoFactory
		PizzaRepoFactory
	}

	// UoWFactory creates new unit of work instances for order lifecycle operations.
	UoWFactory interface {
		Create() UoW
	}
)
