package customer

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Address holds the optional delivery address fields of a customer.
// All fields may be empty; a pickup order needs none of them.
type Address struct {
	Street     string
	City       string
	Province   string
	PostalCode string
}

// Customer is the person placing an order. A customer belongs to exactly one
// order and shares its lifetime: it is written and deleted together with the
// order that owns it.
//
// First name, last name, email and phone are mandatory; the address is not.
type Customer struct {
	id        kernel.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	address   Address

	isConstructed bool
}

// NewCustomer creates a customer with validated mandatory contact fields.
func NewCustomer(id kernel.UUID, firstName, lastName, email, phone string, address Address) (Customer, error) {
	c := Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setRequired(&c.firstName, firstName, "firstName"),
		c.setRequired(&c.lastName, lastName, "lastName"),
		c.setRequired(&c.email, email, "email"),
		c.setRequired(&c.phone, phone, "phone"),
	); err != nil {
		return Customer{}, err
	}

	c.address = address
	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, firstName, lastName, email, phone string, address Address) (Customer, error) {
	return NewCustomer(id, firstName, lastName, email, phone, address)
}

// Validate ensures the Customer was created via NewCustomer.
func (c Customer) Validate() error {
	if !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c Customer) ID() kernel.UUID {
	return c.id
}

// FirstName returns the customer's first name.
func (c Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c Customer) LastName() string {
	return c.lastName
}

// Email returns the customer's contact email.
func (c Customer) Email() string {
	return c.email
}

// Phone returns the customer's contact phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the customer's optional delivery address.
func (c Customer) Address() Address {
	return c.address
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setRequired(field *string, value, paramName string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*field = value
	return nil
}
