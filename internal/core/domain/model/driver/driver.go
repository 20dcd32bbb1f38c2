package driver

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrInvalidCredentials is returned when a login password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Driver represents a delivery driver.
// It is an aggregate root managing the driver's identity, credentials, and
// availability state.
//
// Availability rules:
//   - a driver holding a non-terminal assigned order is unavailable
//   - MarkBusy claims the driver for an order; an unavailable or deactivated
//     driver rejects the claim with a ConflictError so concurrent assignments
//     resolve to exactly one winner
//   - Release is idempotent: releasing an already-available driver is a no-op,
//     which lets order completion, cancellation, and the reconciliation sweep
//     all call it without coordination
//   - SetAvailability is the manual self-service toggle and bypasses the
//     claim check
type Driver struct {
	id           kernel.UUID
	name         string
	phone        string
	passwordHash string
	isAvailable  bool
	isActive     bool

	guard guard.ConstructorGuard
}

// NewDriver creates a new active, available Driver.
// The password hash must already be produced by HashPassword.
func NewDriver(id kernel.UUID, name string, phone string, passwordHash string) (*Driver, error) {
	driver := &Driver{
		isAvailable: true,
		isActive:    true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
		driver.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone string,
	passwordHash string,
	isAvailable bool,
	isActive bool,
) (*Driver, error) {
	driver := &Driver{
		isAvailable: isAvailable,
		isActive:    isActive,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
		driver.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// Validate checks if the Driver was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's normalized phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// PasswordHash returns the stored bcrypt hash.
func (d *Driver) PasswordHash() string {
	return d.passwordHash
}

// IsAvailable reports whether the driver can be assigned an order.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// IsActive reports whether the driver's account is enabled.
func (d *Driver) IsActive() bool {
	return d.isActive
}

// MarkBusy claims the driver for an order assignment.
// Deactivated or already-busy drivers reject the claim with a ConflictError.
func (d *Driver) MarkBusy() error {
	if !d.isActive {
		return errs.NewConflictError("driver is deactivated")
	}
	if !d.isAvailable {
		return errs.NewConflictError("driver is unavailable")
	}

	d.isAvailable = false
	return nil
}

// Release returns the driver to the available pool. Idempotent: releasing an
// already-available driver does nothing, so completion, cancellation and the
// reconciliation sweep can all call it.
func (d *Driver) Release() {
	d.isAvailable = true
}

// SetAvailability is the driver's manual sign-on/sign-off toggle.
// Deactivated drivers cannot sign on.
func (d *Driver) SetAvailability(available bool) error {
	if available && !d.isActive {
		return errs.NewConflictError("driver is deactivated")
	}

	d.isAvailable = available
	return nil
}

// Deactivate disables the driver's account and removes it from the pool.
func (d *Driver) Deactivate() {
	d.isActive = false
	d.isAvailable = false
}

// VerifyPassword checks a plaintext password against the stored hash.
func (d *Driver) VerifyPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(d.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword produces a bcrypt hash for storing driver credentials.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	phone = order.NormalizePhone(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}

func (d *Driver) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	d.passwordHash = passwordHash
	return nil
}
