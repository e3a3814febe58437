package http

import (
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error payload for every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CustomerRequest carries the customer contact details on order creation.
// Address fields are optional.
type CustomerRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postalCode"`
}

// PizzaItemRequest carries one pizza selection. Quantity is deliberately
// unconstrained here: non-positive quantities pass validation and are
// silently dropped by the order lifecycle.
type PizzaItemRequest struct {
	PizzaTypeID string `json:"pizzaTypeId" validate:"required,uuid"`
	Quantity    int    `json:"quantity"`
	Size        string `json:"size" validate:"required,oneof=SMALL MEDIUM LARGE"`
}

// CreateOrderRequest is the POST /orders payload.
type CreateOrderRequest struct {
	Delivery   bool               `json:"delivery"`
	PizzaItems []PizzaItemRequest `json:"pizzaItems" validate:"dive"`
	Customer   CustomerRequest    `json:"customer" validate:"required"`
}

// UpdateOrderRequest is the PATCH /orders/:id payload. A missing field means
// "leave that part alone"; an empty pizzaItems array is a replacement
// request that the lifecycle rejects.
type UpdateOrderRequest struct {
	Status     *string            `json:"status" validate:"omitempty,oneof=NEW PREPARING DELIVERING DELIVERED"`
	PizzaItems []PizzaItemRequest `json:"pizzaItems" validate:"omitempty,dive"`
}

// CreatePizzaRequest is the POST /pizzas payload.
type CreatePizzaRequest struct {
	Name string `json:"name" validate:"required"`
}

// CustomerResponse mirrors the stored customer record.
type CustomerResponse struct {
	ID            string `json:"id"`
	OrderID       string `json:"orderId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	StreetAddress string `json:"streetAddress,omitempty"`
	City          string `json:"city,omitempty"`
	Province      string `json:"province,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
}

// OrderResponse is the listing/creation view of an order: the order row with
// its customer embedded, line items omitted.
type OrderResponse struct {
	ID        string           `json:"id"`
	Status    string           `json:"status"`
	Delivery  bool             `json:"delivery"`
	Customer  CustomerResponse `json:"customer"`
	CreatedAt *time.Time       `json:"createdAt,omitempty"`
}

// PizzaItemResponse is one line item in the single-order view.
type PizzaItemResponse struct {
	ID          string `json:"id"`
	PizzaTypeID string `json:"pizzaTypeId"`
	PizzaName   string `json:"pizzaName,omitempty"`
	Quantity    int    `json:"quantity"`
	Size        string `json:"size"`
}

// OrderDetailsResponse is the single-order view: the order with its customer
// and every line item.
type OrderDetailsResponse struct {
	OrderResponse
	PizzaItems []PizzaItemResponse `json:"pizzaItems"`
}

// PizzaResponse is the POST /pizzas result.
type PizzaResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// selectionsFromRequest maps request items onto pizza selections. A nil
// input stays nil so "absent" survives the mapping; an empty array maps to
// an empty, non-nil slice.
func selectionsFromRequest(items []PizzaItemRequest) ([]commands.PizzaSelection, error) {
	if items == nil {
		return nil, nil
	}

	selections := make([]commands.PizzaSelection, 0, len(items))
	for _, item := range items {
		pizzaTypeID, err := kernel.UUIDFromString(item.PizzaTypeID)
		if err != nil {
			return nil, err
		}

		size, err := order.SizeFromString(item.Size)
		if err != nil {
			return nil, err
		}

		selection, err := commands.NewPizzaSelection(pizzaTypeID, item.Quantity, size)
		if err != nil {
			return nil, err
		}
		selections = append(selections, selection)
	}

	return selections, nil
}

func customerFromRequest(req CustomerRequest) (customer.Customer, error) {
	return customer.NewCustomer(
		kernel.NewUUID(),
		req.FirstName,
		req.LastName,
		req.Email,
		req.Phone,
		customer.Address{
			Street:     req.StreetAddress,
			City:       req.City,
			Province:   req.Province,
			PostalCode: req.PostalCode,
		},
	)
}

// orderResponseFromAggregate builds the creation/update view from a freshly
// written aggregate.
func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	cust := aggregate.Customer()
	address := cust.Address()

	return OrderResponse{
		ID:       aggregate.ID().String(),
		Status:   aggregate.Status().String(),
		Delivery: aggregate.Delivery(),
		Customer: CustomerResponse{
			ID:            cust.ID().String(),
			OrderID:       aggregate.ID().String(),
			FirstName:     cust.FirstName(),
			LastName:      cust.LastName(),
			Email:         cust.Email(),
			Phone:         cust.Phone(),
			StreetAddress: address.Street,
			City:          address.City,
			Province:      address.Province,
			PostalCode:    address.PostalCode,
		},
	}
}

func customerResponseFromQuery(cust queries.CustomerResponse) CustomerResponse {
	return CustomerResponse{
		ID:            cust.ID.String(),
		OrderID:       cust.OrderID.String(),
		FirstName:     cust.FirstName,
		LastName:      cust.LastName,
		Email:         cust.Email,
		Phone:         cust.Phone,
		StreetAddress: cust.StreetAddress,
		City:          cust.City,
		Province:      cust.Province,
		PostalCode:    cust.PostalCode,
	}
}

func orderResponseFromQuery(o queries.GetAllOrdersQueryResponse) OrderResponse {
	createdAt := o.CreatedAt
	return OrderResponse{
		ID:        o.ID.String(),
		Status:    o.Status,
		Delivery:  o.Delivery,
		Customer:  customerResponseFromQuery(o.Customer),
		CreatedAt: &createdAt,
	}
}

func orderDetailsFromQuery(o queries.GetOrderQueryResponse) OrderDetailsResponse {
	createdAt := o.CreatedAt
	items := make([]PizzaItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, PizzaItemResponse{
			ID:          item.ID.String(),
			PizzaTypeID: item.PizzaTypeID.String(),
			PizzaName:   item.PizzaName,
			Quantity:    item.Quantity,
			Size:        item.Size,
		})
	}

	return OrderDetailsResponse{
		OrderResponse: OrderResponse{
			ID:        o.ID.String(),
			Status:    o.Status,
			Delivery:  o.Delivery,
			Customer:  customerResponseFromQuery(o.Customer),
			CreatedAt: &createdAt,
		},
		PizzaItems: items,
	}
}
