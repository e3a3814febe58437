package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)

	// ErrNoUpdateData is returned when an update supplies neither a status
	// nor a replacement set of pizza selections.
	ErrNoUpdateData = errors.New("no update data found")
)

// UpdateOrderCommand represents a request to change an existing order:
// a new status, a full replacement of the pizza selections, or both.
// Either part may be absent, but not both.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	status     *order.Status
	selections []PizzaSelection

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order.
// A nil status means "leave the status alone"; a nil selections slice means
// "leave the line items alone". An empty non-nil selections slice is kept
// as supplied -- the handler rejects it after quantity filtering, matching
// the create path.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	status *order.Status,
	selections []PizzaSelection,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setSelections(selections),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// HasStatus reports whether a status change was supplied.
func (c UpdateOrderCommand) HasStatus() bool {
	return c.status != nil
}

// Status returns the requested status. Only meaningful when HasStatus.
func (c UpdateOrderCommand) Status() order.Status {
	if c.status == nil {
		return order.Unknown
	}
	return *c.status
}

// HasPizzaItems reports whether a replacement selection set was supplied.
func (c UpdateOrderCommand) HasPizzaItems() bool {
	return c.selections != nil
}

// PizzaItems returns the raw replacement selections as supplied by the caller.
func (c UpdateOrderCommand) PizzaItems() []PizzaSelection {
	return c.selections
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setSelections(selections []PizzaSelection) error {
	for _, selection := range selections {
		if err := selection.Validate(); err != nil {
			return err
		}
	}
	c.selections = selections
	return nil
}
