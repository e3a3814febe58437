package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
//
// All validation happens before the transaction opens: every selection's
// pizza type is resolved against the catalog, then selections with
// non-positive quantity are dropped. Only then does the handler open a
// transaction and persist the order, its customer, and its line items as
// one atomic unit. Any failure rolls the whole attempt back; nothing from
// a failed create survives.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory for transactional persistence and catalog access.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted
// aggregate. The order starts in NEW status.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	// Catalog reads run outside the write transaction.
	items, err := buildLineItems(ctx, uow.PizzaRepository(), cmd.PizzaItems())
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), items, cmd.Delivery())
	if err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
