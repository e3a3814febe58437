package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommandCustomer(t *testing.T) customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(
		kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", "555-0100", customer.Address{})
	require.NoError(t, err)
	return c
}

func testSelection(t *testing.T, quantity int) commands.PizzaSelection {
	t.Helper()
	s, err := commands.NewPizzaSelection(kernel.NewUUID(), quantity, order.Medium)
	require.NoError(t, err)
	return s
}

func TestNewPizzaSelection(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		pizzaTypeID := kernel.NewUUID()

		s, err := commands.NewPizzaSelection(pizzaTypeID, 2, order.Large)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.PizzaTypeID().IsEqual(pizzaTypeID))
		assert.Equal(t, 2, s.Quantity())
		assert.Equal(t, order.Large, s.Size())
	})

	t.Run("non_positive_quantity_is_kept_raw", func(t *testing.T) {
		s, err := commands.NewPizzaSelection(kernel.NewUUID(), 0, order.Small)

		require.NoError(t, err)
		assert.Equal(t, 0, s.Quantity())
	})

	t.Run("invalid_size", func(t *testing.T) {
		_, err := commands.NewPizzaSelection(kernel.NewUUID(), 1, order.SizeUnknown)
		require.Error(t, err)
	})

	t.Run("zero_value_pizza_type", func(t *testing.T) {
		var pizzaTypeID kernel.UUID
		_, err := commands.NewPizzaSelection(pizzaTypeID, 1, order.Small)
		require.Error(t, err)
	})
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		cust := testCommandCustomer(t)
		selections := []commands.PizzaSelection{testSelection(t, 2)}

		cmd, err := commands.NewCreateOrderCommand(id, cust, selections, true)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, cust, cmd.Customer())
		assert.Len(t, cmd.PizzaItems(), 1)
		assert.True(t, cmd.Delivery())
	})

	t.Run("unconstructed_customer", func(t *testing.T) {
		var cust customer.Customer

		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), cust, []commands.PizzaSelection{testSelection(t, 1)}, false)

		require.ErrorIs(t, err, customer.ErrCustomerIsNotConstructed)
	})

	t.Run("unconstructed_selection", func(t *testing.T) {
		selections := []commands.PizzaSelection{{}}

		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), testCommandCustomer(t), selections, false)

		require.ErrorIs(t, err, commands.ErrPizzaSelectionIsNotConstructed)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
