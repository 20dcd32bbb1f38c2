package order

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root of the delivery workflow. It carries the
// customer's purchase request through the fixed status progression from
// Pending to Delivered (or Cancelled) and owns the single-assignment
// invariant for drivers.
//
// Invariants:
//   - total == subtotal + deliveryFee at creation time (see Pricing)
//   - driverEarnings is fixed at round(total * CommissionRate) at creation
//   - the driver reference is nil until assignment and is never reassigned
//     to a different driver without being cleared first
//   - status transitions follow the Status state machine
//   - the restaurant reference must point to an existing restaurant
//     (checked by the create operation, not here)
type Order struct {
	id              kernel.UUID
	orderNumber     string
	customer        Customer
	deliveryAddress string
	location        *kernel.GeoPoint
	notes           string
	paymentMethod   PaymentMethod
	status          Status
	items           []Item
	pricing         Pricing
	driverEarnings  float64
	restaurantID    kernel.UUID
	driverID        *kernel.UUID
	estimatedTime   string

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with no driver assigned.
// All required fields are validated; validation errors are joined so a caller
// sees every missing field at once. The driver commission is computed from
// the pricing here and never recomputed.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	deliveryAddress string,
	location *kernel.GeoPoint,
	notes string,
	paymentMethod PaymentMethod,
	items []Item,
	pricing Pricing,
	restaurantID kernel.UUID,
	estimatedTime string,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomer(customer),
		o.setDeliveryAddress(deliveryAddress),
		o.setLocation(location),
		o.setNotes(notes),
		o.setPaymentMethod(paymentMethod),
		o.setItems(items),
		o.setPricing(pricing),
		o.setRestaurantID(restaurantID),
		o.setEstimatedTime(estimatedTime),
	); err != nil {
		return nil, err
	}

	o.driverEarnings = o.pricing.Commission()

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status, assignment, and the commission recorded at creation time.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	deliveryAddress string,
	location *kernel.GeoPoint,
	notes string,
	paymentMethod PaymentMethod,
	status Status,
	items []Item,
	pricing Pricing,
	driverEarnings float64,
	restaurantID kernel.UUID,
	driverID *kernel.UUID,
	estimatedTime string,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomer(customer),
		o.setDeliveryAddress(deliveryAddress),
		o.setLocation(location),
		o.setNotes(notes),
		o.setPaymentMethod(paymentMethod),
		o.setStatus(status),
		o.setItems(items),
		o.setPricing(pricing),
		o.setRestaurantID(restaurantID),
		o.setDriverID(driverID),
		o.setEstimatedTime(estimatedTime),
	); err != nil {
		return nil, err
	}

	o.driverEarnings = driverEarnings

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Customer returns the ordering customer's contact data.
func (o *Order) Customer() Customer {
	return o.customer
}

// DeliveryAddress returns the trimmed delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Location returns the delivery coordinates, nil when the customer did not
// pick a point on the map.
func (o *Order) Location() *kernel.GeoPoint {
	return o.location
}

// Notes returns the free-text order notes.
func (o *Order) Notes() string {
	return o.notes
}

// PaymentMethod returns how the customer settles the order.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's item lines.
func (o *Order) Items() []Item {
	return o.items
}

// Pricing returns the monetary breakdown.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// DriverEarnings returns the commission recorded at creation time.
func (o *Order) DriverEarnings() float64 {
	return o.driverEarnings
}

// RestaurantID returns the restaurant the order was placed with.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Driver returns the assigned driver's id, nil while unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// DriverAssigned reports whether a driver currently holds the order.
func (o *Order) DriverAssigned() bool {
	return o.driverID != nil
}

// EstimatedTime returns the human-readable delivery estimate.
func (o *Order) EstimatedTime() string {
	return o.estimatedTime
}

// Assign binds a driver to the order and moves it to Preparing.
// An order that already has a driver rejects the claim with a ConflictError;
// the driver reference must be cleared before any reassignment. Terminal
// orders cannot be claimed.
func (o *Order) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return errs.NewConflictError("order already has a driver assigned")
	}
	if o.status.IsTerminal() {
		return errs.NewConflictError("order is already finished")
	}

	o.status = Preparing
	o.driverID = &driverID
	return nil
}

// ChangeStatus performs a generic status update. Only the fixed successor of
// the current status is accepted; cancellation must go through Cancel.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel aborts the order from any non-terminal status.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setNotes(notes string) error {
	o.notes = strings.TrimSpace(notes)
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	if err := validateItems(items); err != nil {
		return err
	}
	o.items = items
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("restaurantId")
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	o.driverID = driverID
	return nil
}

func (o *Order) setEstimatedTime(estimatedTime string) error {
	o.estimatedTime = strings.TrimSpace(estimatedTime)
	return nil
}
