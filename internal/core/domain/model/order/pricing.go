package order

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// CommissionRate is the driver's fixed share of the order total.
const CommissionRate = 0.15

// ErrPricingIsNotConstructed is returned when using an improperly initialized Pricing.
var ErrPricingIsNotConstructed = errors.New("Pricing must be created via NewPricing constructor")

// Pricing is a value object holding the monetary breakdown of an order.
// The invariant total == subtotal + deliveryFee is checked at construction
// time and never re-derived afterwards.
type Pricing struct { //nolint:recvcheck //using for validation
	subtotal    float64
	deliveryFee float64
	totalAmount float64

	guard guard.ConstructorGuard
}

// NewPricing creates a Pricing from non-negative amounts.
// The total must equal subtotal plus delivery fee to the cent.
func NewPricing(subtotal float64, deliveryFee float64, totalAmount float64) (Pricing, error) {
	pricing := Pricing{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pricing.setSubtotal(subtotal),
		pricing.setDeliveryFee(deliveryFee),
		pricing.setTotalAmount(totalAmount),
	); err != nil {
		return Pricing{}, err
	}

	if math.Abs(pricing.totalAmount-(pricing.subtotal+pricing.deliveryFee)) >= 0.01 {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%g does not equal subtotal %g plus delivery fee %g",
				totalAmount, subtotal, deliveryFee))
	}

	return pricing, nil
}

// Validate ensures the Pricing was created through the constructor.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// Subtotal returns the item subtotal.
func (p Pricing) Subtotal() float64 {
	return p.subtotal
}

// DeliveryFee returns the delivery fee.
func (p Pricing) DeliveryFee() float64 {
	return p.deliveryFee
}

// TotalAmount returns the amount charged to the customer.
func (p Pricing) TotalAmount() float64 {
	return p.totalAmount
}

// Commission returns the driver's earnings for this order,
// round(total * CommissionRate). Computed from the total at creation time;
// later corrections to the total never change an order's recorded earnings.
func (p Pricing) Commission() float64 {
	return math.Round(p.totalAmount * CommissionRate)
}

func (p *Pricing) setSubtotal(subtotal float64) error {
	if subtotal < 0 {
		return errs.NewValueIsInvalidErrorWithCause("subtotal", fmt.Errorf("%g is negative", subtotal))
	}
	p.subtotal = subtotal
	return nil
}

func (p *Pricing) setDeliveryFee(deliveryFee float64) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee", fmt.Errorf("%g is negative", deliveryFee))
	}
	p.deliveryFee = deliveryFee
	return nil
}

func (p *Pricing) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount", fmt.Errorf("%g is negative", totalAmount))
	}
	p.totalAmount = totalAmount
	return nil
}
