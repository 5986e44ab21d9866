package driver

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
)

// Driver represents a person who operates a fleet vehicle. The vehicle side
// owns the link between the two: a driver aggregate knows nothing about
// which vehicle it is attached to.
//
// Business rules:
//   - Must have a valid UUID and a non-empty name
//   - The phone number is optional contact information, not an identity
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the driver's display name
	name string
	// phone is optional contact information
	phone string
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver with the specified parameters.
func NewDriver(id kernel.UUID, name string, phone string) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage.
func RestoreDriver(id kernel.UUID, name string, phone string) (*Driver, error) {
	return NewDriver(id, name, phone)
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || d.guard.Validate(ErrDriverIsNotConstructed) != nil {
		return ErrDriverIsNotConstructed
	}

	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact phone, possibly empty.
func (d *Driver) Phone() string {
	return d.phone
}

// setID validates and sets the driver's unique identifier.
func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setName validates and sets the driver's display name.
func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

// setPhone sets the optional contact phone.
func (d *Driver) setPhone(phone string) error {
	d.phone = phone
	return nil
}
