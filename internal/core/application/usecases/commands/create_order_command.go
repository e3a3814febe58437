package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new pizza order:
// the customer placing it, the raw pizza selections, and whether the order
// is for delivery.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), cust, selections, true)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	aggregate, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customer   customer.Customer
	selections []PizzaSelection
	delivery   bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The customer must be a constructed customer.Customer and every selection a
// constructed PizzaSelection; the selections' quantities stay unvalidated
// because the handler filters them.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	cust customer.Customer,
	selections []PizzaSelection,
	delivery bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		delivery: delivery,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(cust),
		cmd.setSelections(selections),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the customer placing the order.
func (c CreateOrderCommand) Customer() customer.Customer {
	return c.customer
}

// PizzaItems returns the raw pizza selections as supplied by the caller.
func (c CreateOrderCommand) PizzaItems() []PizzaSelection {
	return c.selections
}

// Delivery reports whether the order is for delivery rather than pickup.
func (c CreateOrderCommand) Delivery() bool {
	return c.delivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(cust customer.Customer) error {
	if err := cust.Validate(); err != nil {
		return err
	}
	c.customer = cust
	return nil
}

func (c *CreateOrderCommand) setSelections(selections []PizzaSelection) error {
	for _, selection := range selections {
		if err := selection.Validate(); err != nil {
			return err
		}
	}
	c.selections = selections
	return nil
}
