package queries

import (
	"context"
	"database/sql"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves order listings from the database.
// Each row joins the order with its customer record so listings carry the
// contact details without a second round trip.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders, newest first, applying the
// optional status and customer filters.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	stmt := `
		SELECT
			o.id,
			o.status,
			o.delivery,
			o.created_at,
			c.id,
			c.order_id,
			c.first_name,
			c.last_name,
			c.email,
			c.phone,
			c.street_address,
			c.city,
			c.province,
			c.postal_code,
			c.created_at
		FROM orders o
		JOIN customers c ON c.order_id = o.id
	`

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if query.HasStatus() {
		conditions = append(conditions, "o.status = ?")
		args = append(args, query.Status().String())
	}
	if query.HasCustomerID() {
		conditions = append(conditions, "c.id = ?")
		args = append(args, query.CustomerID().Bytes())
	}
	if len(conditions) > 0 {
		stmt += " WHERE " + strings.Join(conditions, " AND ")
	}
	stmt += " ORDER BY o.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		orderResp, scanErr := scanOrderListing(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderListing(rows *sql.Rows) (GetAllOrdersQueryResponse, error) {
	var orderResp GetAllOrdersQueryResponse
	var orderID, customerID, customerOrderID uuid.UUID
	var street, city, province, postalCode sql.NullString

	err := rows.Scan(
		&orderID,
		&orderResp.Status,
		&orderResp.Delivery,
		&orderResp.CreatedAt,
		&customerID,
		&customerOrderID,
		&orderResp.Customer.FirstName,
		&orderResp.Customer.LastName,
		&orderResp.Customer.Email,
		&orderResp.Customer.Phone,
		&street,
		&city,
		&province,
		&postalCode,
		&orderResp.Customer.CreatedAt,
	)
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}
	orderResp.ID = id

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}
	orderResp.Customer.ID = custID

	custOrderID, err := kernel.UUIDFromBytes(customerOrderID[:])
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}
	orderResp.Customer.OrderID = custOrderID

	orderResp.Customer.StreetAddress = street.String
	orderResp.Customer.City = city.String
	orderResp.Customer.Province = province.String
	orderResp.Customer.PostalCode = postalCode.String

	return orderResp, nil
}
