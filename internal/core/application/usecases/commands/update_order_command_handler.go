package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles changes to an existing order: a status
// move, a full replacement of the line items, or both in one transaction.
//
// The checks run in a fixed sequence before anything is written: the order
// must exist, must not be DELIVERED, and the command must carry at least one
// change. Supplied selections go through the same catalog validation and
// quantity filtering as on create. Line item replacement and the status
// change then commit together or not at all.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command and returns the refreshed
// aggregate.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	// Pre-transaction reads: existence, terminal-status and catalog checks.
	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.IsDelivered() {
		return nil, order.ErrOrderIsDelivered
	}

	if !cmd.HasStatus() && !cmd.HasPizzaItems() {
		return nil, ErrNoUpdateData
	}

	var items []order.LineItem
	if cmd.HasPizzaItems() {
		items, err = buildLineItems(ctx, uow.PizzaRepository(), cmd.PizzaItems())
		if err != nil {
			return nil, err
		}
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	if cmd.HasPizzaItems() {
		if err = aggregate.ReplaceItems(items); err != nil {
			return nil, err
		}
		if err = orderRepo.ReplaceItems(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	if cmd.HasStatus() && cmd.Status() != aggregate.Status() {
		if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
