package commands_test

import (
	"errors"
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddPizzaCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pizzaID := kernel.NewUUID()
	cmd, err := commands.NewAddPizzaCommand(pizzaID, "Diavola")
	require.NoError(t, err)

	pizzaRepo := new(MockPizzaRepository)
	uow := new(MockPizzaUoW)
	mock.InOrder(
		uow.On("PizzaRepository").Return(pizzaRepo).Once(),
		pizzaRepo.On("GetByName", ctx, "Diavola").
			Return(nil, errs.NewObjectNotFoundError("name", "Diavola")).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PizzaRepository").Return(pizzaRepo).Once(),
		pizzaRepo.On("Add", mock.Anything, mock.AnythingOfType("*pizza.Pizza")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPizzaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPizzaCommandHandler(factory)
	aggregate, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, aggregate.ID().IsEqual(pizzaID))
	assert.Equal(t, "Diavola", aggregate.Name())
	pizzaRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddPizzaCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()
	pizzaID := kernel.NewUUID()
	cmd, err := commands.NewAddPizzaCommand(pizzaID, "Margherita")
	require.NoError(t, err)

	pizzaRepo := new(MockPizzaRepository)
	uow := new(MockPizzaUoW)
	mock.InOrder(
		uow.On("PizzaRepository").Return(pizzaRepo).Once(),
		pizzaRepo.On("GetByName", ctx, "Margherita").
			Return(catalogEntry(t, kernel.NewUUID()), nil).Once(),
	)

	factory := new(MockPizzaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPizzaCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPizzaAlreadyExists)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
	pizzaRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddPizzaCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddPizzaCommand(kernel.NewUUID(), "Calzone")
	require.NoError(t, err)

	pizzaRepo := new(MockPizzaRepository)
	uow := new(MockPizzaUoW)
	mock.InOrder(
		uow.On("PizzaRepository").Return(pizzaRepo).Once(),
		pizzaRepo.On("GetByName", ctx, "Calzone").
			Return(nil, errors.New("connection refused")).Once(),
	)

	factory := new(MockPizzaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPizzaCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.NotErrorIs(t, err, commands.ErrPizzaAlreadyExists)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAddPizzaCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockPizzaUoWFactory)

	h := commands.NewAddPizzaCommandHandler(factory)
	_, err := h.Handle(t.Context(), commands.AddPizzaCommand{})

	require.ErrorIs(t, err, commands.ErrAddPizzaCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
