package queries

import (
	"context"
	"database/sql"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order view from the database.
// The order row is fetched first; a missing order short-circuits with a
// not-found error before any item lookup happens.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its customer and
// line items. Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderResp, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.fetchItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	orderResp.Items = items

	return orderResp, nil
}

func (h GetOrderQueryHandler) fetchOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE o.id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}

	listing, err := scanOrderListing(rows)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:        listing.ID,
		Status:    listing.Status,
		Delivery:  listing.Delivery,
		Customer:  listing.Customer,
		CreatedAt: listing.CreatedAt,
	}, nil
}

func (h GetOrderQueryHandler) fetchItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.pizza_type_id,
			p.name,
			i.quantity,
			i.size
		FROM pizza_items i
		JOIN pizzas p ON p.id = i.pizza_type_id
		WHERE i.order_id = ?
		ORDER BY i.created_at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item, scanErr := scanOrderItem(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanOrderItem(rows *sql.Rows) (OrderItemResponse, error) {
	var item OrderItemResponse
	var id, pizzaTypeID uuid.UUID

	err := rows.Scan(
		&id,
		&pizzaTypeID,
		&item.PizzaName,
		&item.Quantity,
		&item.Size,
	)
	if err != nil {
		return OrderItemResponse{}, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderItemResponse{}, err
	}
	item.ID = itemID

	typeID, err := kernel.UUIDFromBytes(pizzaTypeID[:])
	if err != nil {
		return OrderItemResponse{}, err
	}
	item.PizzaTypeID = typeID

	return item, nil
}
