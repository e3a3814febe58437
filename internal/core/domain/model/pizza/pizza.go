package pizza

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// ErrPizzaIsNotConstructed is returned when a Pizza instance was not created
// through the NewPizza factory method.
var ErrPizzaIsNotConstructed = errors.New("Pizza must be created via NewPizza constructor")

// Pizza is a catalog entry: a kind of pizza the shop makes. Its name is
// unique across the catalog. A pizza is never deleted in normal flow because
// order line items keep referencing it.
type Pizza struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewPizza creates a catalog entry with a validated identity and a non-empty
// name. Name uniqueness is enforced by the command handler and the unique
// index on the pizzas table, not here.
func NewPizza(id kernel.UUID, name string) (*Pizza, error) {
	p := &Pizza{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePizza reconstructs a catalog entry from persistence.
func RestorePizza(id kernel.UUID, name string) (*Pizza, error) {
	return NewPizza(id, name)
}

// Validate ensures the Pizza was created via NewPizza.
func (p *Pizza) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPizzaIsNotConstructed
	}
	return nil
}

// ID returns the catalog entry's unique identifier.
func (p *Pizza) ID() kernel.UUID {
	return p.id
}

// Name returns the pizza's display name.
func (p *Pizza) Name() string {
	return p.name
}

// IsEqual compares two catalog entries by identity.
func (p *Pizza) IsEqual(other *Pizza) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Pizza) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pizza) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
