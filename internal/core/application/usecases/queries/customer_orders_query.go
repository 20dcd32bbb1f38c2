package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCustomerOrdersQueryIsNotConstructed = errors.New(
	"CustomerOrdersQuery must be created via NewCustomerOrdersQuery constructor",
)

// CustomerOrdersQuery retrieves a customer's order history by phone number.
// The phone is normalized the same way order placement normalizes it, so
// lookups match regardless of whitespace formatting.
type CustomerOrdersQuery struct {
	phone string

	guard guard.ConstructorGuard
}

// NewCustomerOrdersQuery creates a customer history query.
func NewCustomerOrdersQuery(phone string) (CustomerOrdersQuery, error) {
	normalized := order.NormalizePhone(phone)
	if normalized == "" {
		return CustomerOrdersQuery{}, errs.NewValueIsRequiredError("phone")
	}
	return CustomerOrdersQuery{phone: normalized, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q CustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCustomerOrdersQueryIsNotConstructed)
}

// Phone returns the normalized customer phone.
func (q CustomerOrdersQuery) Phone() string {
	return q.phone
}
