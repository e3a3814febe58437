// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate spans three tables (orders,
// customers, pizza_items); this package owns the conversion between the
// domain aggregate and those rows.
package orderrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for the order root row.
// Status is stored as its string form so the table reads naturally.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status    string    `gorm:"type:varchar(16);not null;index"`
	Delivery  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order root rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the customer record attached to an order.
// Each order has exactly one customer record; the unique index on order_id
// enforces that at the storage level. Address fields are nullable.
type CustomerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	FirstName     string    `gorm:"not null"`
	LastName      string    `gorm:"not null"`
	Email         string    `gorm:"not null"`
	Phone         string    `gorm:"not null"`
	StreetAddress *string
	City          *string
	Province      *string
	PostalCode    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for customer records.
func (CustomerDTO) TableName() string {
	return "customers"
}

// PizzaItemDTO represents one line item row of an order.
type PizzaItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PizzaTypeID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity    int       `gorm:"not null"`
	Size        string    `gorm:"type:varchar(8);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for line item rows.
func (PizzaItemDTO) TableName() string {
	return "pizza_items"
}

// fromDomain converts an order aggregate to its three-table representation.
func fromDomain(aggregate *order.Order) (OrderDTO, CustomerDTO, []PizzaItemDTO) {
	orderDTO := OrderDTO{
		ID:       aggregate.ID().Bytes(),
		Status:   aggregate.Status().String(),
		Delivery: aggregate.Delivery(),
	}

	cust := aggregate.Customer()
	address := cust.Address()
	customerDTO := CustomerDTO{
		ID:            cust.ID().Bytes(),
		OrderID:       aggregate.ID().Bytes(),
		FirstName:     cust.FirstName(),
		LastName:      cust.LastName(),
		Email:         cust.Email(),
		Phone:         cust.Phone(),
		StreetAddress: nullable(address.Street),
		City:          nullable(address.City),
		Province:      nullable(address.Province),
		PostalCode:    nullable(address.PostalCode),
	}

	items := itemsFromDomain(aggregate)

	return orderDTO, customerDTO, items
}

// itemsFromDomain converts only the aggregate's line items.
func itemsFromDomain(aggregate *order.Order) []PizzaItemDTO {
	domainItems := aggregate.Items()
	items := make([]PizzaItemDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, PizzaItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			PizzaTypeID: item.PizzaTypeID().Bytes(),
			Quantity:    item.Quantity(),
			Size:        item.Size().String(),
		})
	}
	return items
}

// toDomain reconstructs the aggregate from its three-table representation.
func toDomain(orderDTO OrderDTO, customerDTO CustomerDTO, itemDTOs []PizzaItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(orderDTO.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(orderDTO.Status)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(customerDTO.ID[:])
	if err != nil {
		return nil, err
	}

	cust, err := customer.RestoreCustomer(
		customerID,
		customerDTO.FirstName,
		customerDTO.LastName,
		customerDTO.Email,
		customerDTO.Phone,
		customer.Address{
			Street:     stringValue(customerDTO.StreetAddress),
			City:       stringValue(customerDTO.City),
			Province:   stringValue(customerDTO.Province),
			PostalCode: stringValue(customerDTO.PostalCode),
		},
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(itemDTOs))
	for _, dto := range itemDTOs {
		item, itemErr := itemToDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, cust, items, orderDTO.Delivery, status)
}

func itemToDomain(dto PizzaItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	pizzaTypeID, err := kernel.UUIDFromBytes(dto.PizzaTypeID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	size, err := order.SizeFromString(dto.Size)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.RestoreLineItem(id, pizzaTypeID, dto.Quantity, size)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
