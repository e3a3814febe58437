package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control for the repositories it hands out.
// Client code must explicitly manage the transaction lifecycle: Begin at
// the start of the mutation, Commit on the one success path, Rollback on
// every failure path.
//
// Repositories obtained before Begin run against the plain connection;
// after Begin they are bound to the open transaction. Catalog validation
// reads therefore happen outside the write transaction, and only the
// persistence step runs inside it.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction if one is active.
	OrderRepository() OrderRepository

	// PizzaRepository returns a PizzaRepository bound to the current
	// transaction if one is active.
	PizzaRepository() PizzaRepository
}
