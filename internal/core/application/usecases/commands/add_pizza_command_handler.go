package commands

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"
)

// AddPizzaCommandHandler handles adding a new pizza type to the catalog.
// Name uniqueness is checked before the transaction opens; the unique index
// on the pizzas table backs the check up against concurrent inserts.
type AddPizzaCommandHandler struct {
	uowFactory PizzaUoWFactory
}

// NewAddPizzaCommandHandler creates a handler for catalog additions.
func NewAddPizzaCommandHandler(uowFactory PizzaUoWFactory) AddPizzaCommandHandler {
	return AddPizzaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog addition and returns the persisted entry.
// Returns ErrPizzaAlreadyExists for a duplicate name.
func (h *AddPizzaCommandHandler) Handle(ctx context.Context, cmd AddPizzaCommand) (*pizza.Pizza, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	existing, err := uow.PizzaRepository().GetByName(ctx, cmd.Name())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPizzaAlreadyExists
	}

	aggregate, err := pizza.NewPizza(cmd.PizzaID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PizzaRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
