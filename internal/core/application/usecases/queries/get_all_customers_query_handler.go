package queries

import (
	"context"
	"database/sql"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCustomersQueryHandler retrieves customer records from the database.
// Uses direct SQL for read performance, bypassing the aggregate repositories.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for customer listing.
// Requires a GORM database connection for query execution.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the query to retrieve all customers, newest first.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]CustomerResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			first_name,
			last_name,
			email,
			phone,
			street_address,
			city,
			province,
			postal_code,
			created_at
		FROM customers
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		customer, scanErr := scanCustomer(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

// scanCustomer maps one customers row onto a CustomerResponse. The column
// order must match the SELECT lists that use it.
func scanCustomer(rows *sql.Rows) (CustomerResponse, error) {
	var customer CustomerResponse
	var id, orderID uuid.UUID
	var street, city, province, postalCode sql.NullString

	err := rows.Scan(
		&id,
		&orderID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Phone,
		&street,
		&city,
		&province,
		&postalCode,
		&customer.CreatedAt,
	)
	if err != nil {
		return CustomerResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CustomerResponse{}, err
	}
	customer.ID = customerID

	customerOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return CustomerResponse{}, err
	}
	customer.OrderID = customerOrderID

	customer.StreetAddress = street.String
	customer.City = city.String
	customer.Province = province.String
	customer.PostalCode = postalCode.String

	return customer, nil
}
