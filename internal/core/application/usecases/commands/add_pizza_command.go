package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrAddPizzaCommandIsNotConstructed = errors.New(
		"AddPizzaCommand must be created via NewAddPizzaCommand constructor",
	)

	// ErrPizzaAlreadyExists is returned when a catalog entry with the same
	// name is already present.
	ErrPizzaAlreadyExists = errors.New("identical pizza already exists")
)

// AddPizzaCommand represents a request to add a new pizza type to the catalog.
type AddPizzaCommand struct { //nolint:recvcheck //using for validation
	pizzaID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewAddPizzaCommand creates a command to add a catalog entry with a
// non-empty name.
func NewAddPizzaCommand(pizzaID kernel.UUID, name string) (AddPizzaCommand, error) {
	cmd := AddPizzaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPizzaID(pizzaID),
		cmd.setName(name),
	); err != nil {
		return AddPizzaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPizzaCommand) Validate() error {
	return c.guard.Validate(ErrAddPizzaCommandIsNotConstructed)
}

// PizzaID returns the identifier assigned to the new catalog entry.
func (c AddPizzaCommand) PizzaID() kernel.UUID {
	return c.pizzaID
}

// Name returns the new pizza's name.
func (c AddPizzaCommand) Name() string {
	return c.name
}

func (c *AddPizzaCommand) setPizzaID(pizzaID kernel.UUID) error {
	if err := pizzaID.Validate(); err != nil {
		return err
	}
	c.pizzaID = pizzaID
	return nil
}

func (c *AddPizzaCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
