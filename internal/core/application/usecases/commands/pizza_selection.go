package commands

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrPizzaSelectionIsNotConstructed = errors.New(
		"PizzaSelection must be created via NewPizzaSelection constructor",
	)

	// ErrInvalidPizzaSelection is returned when any selection references a
	// pizza type that does not exist in the catalog. The whole operation
	// fails before any write, including for selections that were valid.
	ErrInvalidPizzaSelection = errors.New("one or more pizza selections were invalid")

	// ErrNoPizzaSelections is returned when, after dropping selections with
	// non-positive quantity, nothing is left to order.
	ErrNoPizzaSelections = errors.New("no pizza selections were made")
)

// PizzaSelection is one requested pizza line as it arrives from the caller:
// a catalog reference, a size, and a raw quantity. The quantity is
// deliberately not validated here; selections with quantity <= 0 are
// silently dropped by the lifecycle engine rather than rejected.
type PizzaSelection struct { //nolint:recvcheck //using for validation
	pizzaTypeID kernel.UUID
	quantity    int
	size        order.Size

	guard guard.ConstructorGuard
}

// NewPizzaSelection creates a selection with a validated catalog reference
// and size.
func NewPizzaSelection(pizzaTypeID kernel.UUID, quantity int, size order.Size) (PizzaSelection, error) {
	selection := PizzaSelection{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		selection.setPizzaTypeID(pizzaTypeID),
		selection.setSize(size),
	); err != nil {
		return PizzaSelection{}, err
	}

	return selection, nil
}

// Validate ensures the selection was created through the constructor.
func (s PizzaSelection) Validate() error {
	return s.guard.Validate(ErrPizzaSelectionIsNotConstructed)
}

// PizzaTypeID returns the referenced catalog entry id.
func (s PizzaSelection) PizzaTypeID() kernel.UUID {
	return s.pizzaTypeID
}

// Quantity returns the raw requested quantity. May be zero or negative.
func (s PizzaSelection) Quantity() int {
	return s.quantity
}

// Size returns the requested pizza size.
func (s PizzaSelection) Size() order.Size {
	return s.size
}

func (s *PizzaSelection) setPizzaTypeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.pizzaTypeID = id
	return nil
}

func (s *PizzaSelection) setSize(size order.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	s.size = size
	return nil
}

// buildLineItems turns raw selections into the line items an order may own.
//
// Every selection's pizza type is resolved against the catalog first, in
// order, with the loop short-circuiting on the first unknown reference --
// the whole operation fails before anything is written, even if other
// selections were valid. Surviving the referential check, selections with
// non-positive quantity are dropped; an empty result fails with
// ErrNoPizzaSelections so no order ever exists without a selection.
func buildLineItems(
	ctx context.Context,
	catalog ports.PizzaRepository,
	selections []PizzaSelection,
) ([]order.LineItem, error) {
	for _, selection := range selections {
		if _, err := catalog.Get(ctx, selection.PizzaTypeID()); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, ErrInvalidPizzaSelection
			}
			return nil, err
		}
	}

	items := make([]order.LineItem, 0, len(selections))
	for _, selection := range selections {
		if selection.Quantity() <= 0 {
			continue
		}

		item, err := order.NewLineItem(
			kernel.NewUUID(),
			selection.PizzaTypeID(),
			selection.Quantity(),
			selection.Size(),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, ErrNoPizzaSelections
	}

	return items, nil
}
