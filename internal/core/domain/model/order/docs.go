// Package order contains the Order aggregate and its value objects.
//
// The aggregate root Order owns the delivery lifecycle: a fixed status
// progression from Pending to Delivered with an explicit cancellation path,
// and the single-assignment invariant for drivers. Supporting value objects
// cover the customer's contact data (Customer), item lines (Item), monetary
// breakdown (Pricing), and the payment method.
//
// All domain objects are created through constructors that validate their
// invariants; zero-value instances are rejected by Validate.
package order
