package customer_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() customer.Address {
	return customer.Address{
		Street:     "12 Oak Street",
		City:       "Berlin",
		Province:   "BE",
		PostalCode: "10115",
	}
}

func TestNewCustomer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, "Ada", "Lovelace", "ada@example.com", "555-0100", validAddress())

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Ada", c.FirstName())
		assert.Equal(t, "Lovelace", c.LastName())
		assert.Equal(t, "ada@example.com", c.Email())
		assert.Equal(t, "555-0100", c.Phone())
		assert.Equal(t, validAddress(), c.Address())
	})

	t.Run("address_is_optional", func(t *testing.T) {
		c, err := customer.NewCustomer(
			kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", "555-0100", customer.Address{})

		require.NoError(t, err)
		assert.Equal(t, customer.Address{}, c.Address())
	})

	t.Run("missing_required_fields", func(t *testing.T) {
		testCases := []struct {
			name                                string
			firstName, lastName, email, phone   string
		}{
			{"no_first_name", "", "Lovelace", "ada@example.com", "555-0100"},
			{"no_last_name", "Ada", "", "ada@example.com", "555-0100"},
			{"no_email", "Ada", "Lovelace", "", "555-0100"},
			{"no_phone", "Ada", "Lovelace", "ada@example.com", ""},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := customer.NewCustomer(
					kernel.NewUUID(), tc.firstName, tc.lastName, tc.email, tc.phone, customer.Address{})

				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var c customer.Customer

		require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})
}
