package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllPizzasQueryHandler retrieves the pizza catalog from the database.
type GetAllPizzasQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPizzasQueryHandler creates a handler for catalog listing.
// Requires a GORM database connection for query execution.
func NewGetAllPizzasQueryHandler(db *gorm.DB) GetAllPizzasQueryHandler {
	return GetAllPizzasQueryHandler{db: db}
}

// Handle executes the query to retrieve all catalog entries, newest first.
func (h GetAllPizzasQueryHandler) Handle(
	ctx context.Context,
	query GetAllPizzasQuery,
) ([]GetAllPizzasQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pizzas := make([]GetAllPizzasQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			created_at
		FROM pizzas
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pizza GetAllPizzasQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&pizza.Name,
			&pizza.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		pizzaID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		pizza.ID = pizzaID
		pizzas = append(pizzas, pizza)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pizzas, nil
}
