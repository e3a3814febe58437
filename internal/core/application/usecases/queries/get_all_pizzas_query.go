package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetAllPizzasQueryIsNotConstructed = errors.New(
		"GetAllPizzasQuery must be created via NewGetAllPizzasQuery constructor",
	)
)

// GetAllPizzasQuery retrieves the pizza catalog, newest first.
type GetAllPizzasQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPizzasQuery creates a query to retrieve all catalog entries.
// This is a parameterless query.
func NewGetAllPizzasQuery() GetAllPizzasQuery {
	return GetAllPizzasQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllPizzasQueryIsNotConstructed if validation fails.
func (q GetAllPizzasQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPizzasQueryIsNotConstructed)
}

// GetAllPizzasQueryResponse represents one catalog entry.
type GetAllPizzasQueryResponse struct {
	ID        kernel.UUID
	Name      string
	CreatedAt time.Time
}
