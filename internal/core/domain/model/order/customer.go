package order

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a value object holding the ordering customer's contact data.
// Name and address fields are trimmed, the phone has all whitespace stripped
// so it can serve as an addressing key for guest customers. The account id is
// optional: guests order with just a phone number.
type Customer struct { //nolint:recvcheck //using for validation
	name  string
	phone string
	email string
	id    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with normalized contact fields.
// Name and phone are required; email and account id are optional.
func NewCustomer(name string, phone string, email string, id *kernel.UUID) (Customer, error) {
	customer := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
		customer.setEmail(email),
		customer.setID(id),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the Customer was created through the constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the trimmed customer name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the whitespace-stripped phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Email returns the trimmed email, empty when not supplied.
func (c Customer) Email() string {
	return c.email
}

// ID returns the customer's account id, nil for guest orders.
func (c Customer) ID() *kernel.UUID {
	return c.id
}

// AddressKey returns the key notifications are addressed to: the account id
// when present, otherwise the normalized phone number.
func (c Customer) AddressKey() string {
	if c.id != nil {
		return c.id.String()
	}
	return c.phone
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = NormalizePhone(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setEmail(email string) error {
	c.email = strings.TrimSpace(email)
	return nil
}

func (c *Customer) setID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// NormalizePhone strips all whitespace from a phone number so lookups and
// notification addressing use a single canonical form.
func NormalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}
