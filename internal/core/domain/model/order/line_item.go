package order

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// Size represents the size of one pizza selection.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	SizeUnknown Size = iota

	Small
	Medium
	Large
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown: "UNKNOWN",
		Small:       "SMALL",
		Medium:      "MEDIUM",
		Large:       "LARGE",
	}
}

func getValidSizeStrings() map[Size]string {
	//nolint:exhaustive // SizeUnknown is intentionally excluded as it's invalid
	return map[Size]string{
		Small:  "SMALL",
		Medium: "MEDIUM",
		Large:  "LARGE",
	}
}

// SizeFromString parses the storage/wire representation of a size.
func SizeFromString(s string) (Size, error) {
	for size, str := range getValidSizeStrings() {
		if str == s {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"size is invalid",
		fmt.Errorf("%q is not a valid size", s),
	)
}

// Validate checks that the Size is one of SMALL, MEDIUM, LARGE.
func (s Size) Validate() error {
	if _, ok := getValidSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"size is invalid",
			fmt.Errorf("%d is not a valid size", s),
		)
	}
	return nil
}

// String returns the storage/wire name of the size.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// LineItem is one pizza selection belonging to an order: which pizza type,
// what size, and how many. Line items are owned exclusively by their order
// and are replaced wholesale when the order's selections are updated.
type LineItem struct {
	id          kernel.UUID
	pizzaTypeID kernel.UUID
	quantity    int
	size        Size

	isConstructed bool
}

// NewLineItem creates a line item with a positive quantity and a valid size.
// The pizzaTypeID must identify an existing catalog entry; that referential
// check belongs to the lifecycle engine, which resolves it against the
// catalog before any write.
func NewLineItem(id kernel.UUID, pizzaTypeID kernel.UUID, quantity int, size Size) (LineItem, error) {
	item := LineItem{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setPizzaTypeID(pizzaTypeID),
		item.setQuantity(quantity),
		item.setSize(size),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a line item from persistence.
func RestoreLineItem(id kernel.UUID, pizzaTypeID kernel.UUID, quantity int, size Size) (LineItem, error) {
	return NewLineItem(id, pizzaTypeID, quantity, size)
}

// Validate ensures the LineItem was created via NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (li LineItem) ID() kernel.UUID {
	return li.id
}

// PizzaTypeID returns the catalog entry this selection references.
func (li LineItem) PizzaTypeID() kernel.UUID {
	return li.pizzaTypeID
}

// Quantity returns the number of pizzas selected. Always >= 1.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Size returns the selected pizza size.
func (li LineItem) Size() Size {
	return li.size
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setPizzaTypeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.pizzaTypeID = id
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	li.size = size
	return nil
}
