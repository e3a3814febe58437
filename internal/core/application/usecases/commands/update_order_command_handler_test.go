package commands_test

import (
	"errors"
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, id kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, order.Small)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, testCommandCustomer(t), []order.LineItem{item}, false, status)
	require.NoError(t, err)
	return o
}

func statusPtr(s order.Status) *order.Status {
	return &s
}

func TestNewUpdateOrderCommand(t *testing.T) {
	t.Run("status_only", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), statusPtr(order.Preparing), nil)

		require.NoError(t, err)
		assert.True(t, cmd.HasStatus())
		assert.Equal(t, order.Preparing, cmd.Status())
		assert.False(t, cmd.HasPizzaItems())
	})

	t.Run("items_only", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(
			kernel.NewUUID(), nil, []commands.PizzaSelection{testSelection(t, 1)})

		require.NoError(t, err)
		assert.False(t, cmd.HasStatus())
		assert.True(t, cmd.HasPizzaItems())
	})

	t.Run("invalid_status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), statusPtr(order.Unknown), nil)

		require.Error(t, err)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd commands.UpdateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
	})
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(orderID, statusPtr(order.Preparing), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_DeliveredOrderIsImmutable(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	// The delivered check fires regardless of the payload, even for a
	// command that carries no usable update data.
	cmd, err := commands.NewUpdateOrderCommand(orderID, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(storedOrder(t, orderID, order.Delivered), nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderIsDelivered)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NoUpdateData(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(orderID, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(storedOrder(t, orderID, order.New), nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoUpdateData)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_StatusChange(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(orderID, statusPtr(order.Delivering), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(storedOrder(t, orderID, order.Preparing), nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	aggregate, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivering, aggregate.Status())
	// Line items are untouched when not supplied.
	assert.Len(t, aggregate.Items(), 1)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_SameStatusSkipsWrite(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(orderID, statusPtr(order.Preparing), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(storedOrder(t, orderID, order.Preparing), nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	aggregate, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ReplaceItems(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	pizzaTypeID := kernel.NewUUID()
	selection, _ := commands.NewPizzaSelection(pizzaTypeID, 3, order.Large)
	cmd, err := commands.NewUpdateOrderCommand(orderID, nil, []commands.PizzaSelection{selection})
	require.NoError(t, err)

	pizzaRepo := new(MockPizzaRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(storedOrder(t, orderID, order.New), nil).Once(),
		uow.On("PizzaRepository").Return(pizzaRepo).Once(),
		pizzaRepo.On("Get", ctx, pizzaTypeID).Return(catalogEntry(t, pizzaTypeID), nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("ReplaceItems", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	aggregate, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, aggregate.Items(), 1)
	assert.Equal(t, 3, aggregate.Items()[0].Quantity())
	assert.True(t, aggregate.Items()[0].PizzaTypeID().IsEqual(pizzaTypeID))
	pizzaRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ReplacementFilteredToNothing(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	pizzaTypeID := kernel.NewUUID()
	zero, _ := commands.NewPizzaSelection(pizzaTypeID, 0, order.Small)
	cmd, err := commands.NewUpdateOrderCommand(orderID, nil, []commands.PizzaSelection{zero})
	require.NoError(t, err)

	pizzaRepo := new(MockPizzaRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(storedOrder(t, orderID, order.New), nil).Once(),
		uow.On("PizzaRepository").Return(pizzaRepo).Once(),
		pizzaRepo.On("Get", ctx, pizzaTypeID).Return(catalogEntry(t, pizzaTypeID), nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoPizzaSelections)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ReplaceItemsError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	pizzaTypeID := kernel.NewUUID()
	selection, _ := commands.NewPizzaSelection(pizzaTypeID, 1, order.Small)
	cmd, err := commands.NewUpdateOrderCommand(orderID, nil, []commands.PizzaSelection{selection})
	require.NoError(t, err)

	pizzaRepo := new(MockPizzaRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(storedOrder(t, orderID, order.New), nil).Once(),
		uow.On("PizzaRepository").Return(pizzaRepo).Once(),
		pizzaRepo.On("Get", ctx, pizzaTypeID).Return(catalogEntry(t, pizzaTypeID), nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("ReplaceItems", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("replace error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
