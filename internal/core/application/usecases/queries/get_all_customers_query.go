package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetAllCustomersQueryIsNotConstructed = errors.New(
		"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
	)
)

// GetAllCustomersQuery retrieves every customer record, newest first.
type GetAllCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCustomersQuery creates a query to retrieve all customers.
// This is a parameterless query.
func NewGetAllCustomersQuery() GetAllCustomersQuery {
	return GetAllCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllCustomersQueryIsNotConstructed if validation fails.
func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

// CustomerResponse represents customer contact information as stored.
// Address fields are optional and come back empty when absent.
type CustomerResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	StreetAddress string
	City          string
	Province      string
	PostalCode    string
	CreatedAt     time.Time
}
