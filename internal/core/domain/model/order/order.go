package order

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsDelivered is returned when a mutation is attempted on an order
	// whose status is Delivered.
	ErrOrderIsDelivered = errors.New("order has already been delivered and cannot be updated")
)

// Order is the aggregate root of the ordering domain. It owns exactly one
// Customer and at least one LineItem, and the three are treated as one
// consistency unit: they are persisted together or not at all.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier
//   - Must own exactly one valid customer
//   - Must own at least one line item, each with quantity >= 1
//   - Status starts at New and follows the permissive state machine in
//     Status.ChangeTo; Delivered is terminal
//   - Once Delivered, neither the status nor the line items may change
type Order struct {
	id       kernel.UUID
	status   Status
	delivery bool
	customer customer.Customer
	items    []LineItem

	isConstructed bool
}

// NewOrder creates a new order in New status owning the given customer and
// line items. The items must already be filtered to valid selections;
// an empty set is rejected because an order without a single selection
// must never exist.
func NewOrder(id kernel.UUID, cust customer.Customer, items []LineItem, delivery bool) (*Order, error) {
	o := &Order{
		status:        New,
		delivery:      delivery,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(cust),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence with its
// stored status. Unlike NewOrder it accepts any valid status, including
// Delivered.
func RestoreOrder(
	id kernel.UUID,
	cust customer.Customer,
	items []LineItem,
	delivery bool,
	status Status,
) (*Order, error) {
	o, err := NewOrder(id, cust, items, delivery)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the order's current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Delivery reports whether the order is for delivery rather than pickup.
func (o *Order) Delivery() bool {
	return o.delivery
}

// Customer returns the customer who placed the order.
func (o *Order) Customer() customer.Customer {
	return o.customer
}

// Items returns the order's line items. The returned slice is a copy;
// mutating it does not affect the aggregate.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// IsDelivered reports whether the order has reached its terminal status.
func (o *Order) IsDelivered() bool {
	return o.status.IsTerminal()
}

// ChangeStatus moves the order to the given status. Any move between
// non-terminal statuses is permitted; a delivered order refuses the change.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.ChangeTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReplaceItems swaps the order's entire line item set for the given one.
// This is a full replacement, never a merge: after the call the order owns
// exactly the new items. A delivered order refuses the change, and the
// replacement set must not be empty.
func (o *Order) ReplaceItems(items []LineItem) error {
	if o.IsDelivered() {
		return ErrOrderIsDelivered
	}

	return o.setItems(items)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(cust customer.Customer) error {
	if err := cust.Validate(); err != nil {
		return err
	}
	o.customer = cust
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("pizzaItems")
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"pizzaItems",
				fmt.Errorf("item %d: %w", i, err),
			)
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
