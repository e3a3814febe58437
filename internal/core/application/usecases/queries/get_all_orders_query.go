package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves orders with their customer records, newest
// first. Both filters are optional: a status narrows to exact matches and
// a customer id narrows to that customer's order.
type GetAllOrdersQuery struct {
	status     *order.Status
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve orders. Nil filter
// arguments mean "no filtering" on that dimension.
func NewGetAllOrdersQuery(status *order.Status, customerID *kernel.UUID) (GetAllOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}

	return GetAllOrdersQuery{
		status:     status,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// HasStatus reports whether a status filter was supplied.
func (q GetAllOrdersQuery) HasStatus() bool {
	return q.status != nil
}

// Status returns the status filter. Only meaningful when HasStatus.
func (q GetAllOrdersQuery) Status() order.Status {
	if q.status == nil {
		return order.Unknown
	}
	return *q.status
}

// HasCustomerID reports whether a customer filter was supplied.
func (q GetAllOrdersQuery) HasCustomerID() bool {
	return q.customerID != nil
}

// CustomerID returns the customer filter. Only meaningful when HasCustomerID.
func (q GetAllOrdersQuery) CustomerID() kernel.UUID {
	if q.customerID == nil {
		return kernel.UUID{}
	}
	return *q.customerID
}

// GetAllOrdersQueryResponse represents one order in a listing. Line items
// are not part of the listing view; fetch a single order for those.
type GetAllOrdersQueryResponse struct {
	ID        kernel.UUID
	Status    string
	Delivery  bool
	Customer  CustomerResponse
	CreatedAt time.Time
}
