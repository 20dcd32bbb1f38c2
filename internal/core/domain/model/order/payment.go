package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// PaymentMethod is how the customer settles the order. The delivery flow does
// not process payments; the method only travels with the order for the driver
// and restaurant to see.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is cash on delivery, the default.
	PaymentCash

	// PaymentCard is card on delivery.
	PaymentCard
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentCash: "cash",
		PaymentCard: "card",
	}
}

// PaymentMethodFromString parses the wire representation of a payment method.
// The empty string yields the default, PaymentCash.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentCash, nil
	}
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a known payment method", s))
}

// Validate checks that the PaymentMethod is one of the defined methods.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
