package vehicle

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrPlateIsRequired is returned when attempting to create a vehicle without a plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle constructor")
)

// Vehicle represents a delivery vehicle in the fleet. It is an aggregate
// root that manages vehicle identity, capacity limits, zone membership and
// the optional driver link.
//
// Business rules:
//   - Must have a valid UUID and a non-empty plate identifier
//   - Maximum weight (kg) and maximum volume (m³) must be positive
//   - The zone reference is weak: a vehicle may exist without a zone, but a
//     zoneless vehicle is never offered by the dispatch matcher
//   - At most one driver is linked at a time
//
// The vehicle deliberately carries no load counters: its committed weight
// and volume are always derived from the active orders referencing it (see
// services.CapacityLedger), so two call sites can never disagree about the
// same vehicle's utilization.
type Vehicle struct {
	// id uniquely identifies the vehicle
	id kernel.UUID
	// plate is the registration identifier (unique across the fleet)
	plate string
	// maxWeightKg is the maximum payload weight in kilograms
	maxWeightKg float64
	// maxVolumeM3 is the maximum payload volume in cubic meters
	maxVolumeM3 float64
	// zoneID is the service zone the vehicle operates in (nil if unzoned)
	zoneID *kernel.UUID
	// driverID is the linked driver (nil if none)
	driverID *kernel.UUID
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewVehicle creates a new Vehicle with the specified parameters.
// This is the only way to create a fresh Vehicle instance.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - plate: registration identifier (must be non-empty)
//   - maxWeightKg: maximum payload weight in kilograms (must be positive)
//   - maxVolumeM3: maximum payload volume in cubic meters (must be positive)
//   - zoneID: service zone reference (may be nil)
//
// Returns the created vehicle, or an aggregated validation error.
func NewVehicle(
	id kernel.UUID,
	plate string,
	maxWeightKg float64,
	maxVolumeM3 float64,
	zoneID *kernel.UUID,
) (*Vehicle, error) {
	v := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setMaxWeightKg(maxWeightKg),
		v.setMaxVolumeM3(maxVolumeM3),
		v.setZoneID(zoneID),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage,
// including its driver link. The restored vehicle behaves identically to one
// created through normal domain operations.
func RestoreVehicle(
	id kernel.UUID,
	plate string,
	maxWeightKg float64,
	maxVolumeM3 float64,
	zoneID *kernel.UUID,
	driverID *kernel.UUID,
) (*Vehicle, error) {
	v, err := NewVehicle(id, plate, maxWeightKg, maxVolumeM3, zoneID)
	if err != nil {
		return nil, err
	}

	if err = v.setDriverID(driverID); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the Vehicle instance was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil || v.guard.Validate(ErrVehicleIsNotConstructed) != nil {
		return ErrVehicleIsNotConstructed
	}

	return nil
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Plate returns the vehicle's registration identifier.
func (v *Vehicle) Plate() string {
	return v.plate
}

// MaxWeightKg returns the maximum payload weight in kilograms.
func (v *Vehicle) MaxWeightKg() float64 {
	return v.maxWeightKg
}

// MaxVolumeM3 returns the maximum payload volume in cubic meters.
func (v *Vehicle) MaxVolumeM3() float64 {
	return v.maxVolumeM3
}

// Zone returns the service zone reference, or nil if the vehicle is unzoned.
func (v *Vehicle) Zone() *kernel.UUID {
	return v.zoneID
}

// Driver returns the linked driver's ID, or nil if no driver is linked.
func (v *Vehicle) Driver() *kernel.UUID {
	return v.driverID
}

// AssignToZone places the vehicle into a service zone.
func (v *Vehicle) AssignToZone(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	v.zoneID = &zoneID
	return nil
}

// ChangePlate replaces the vehicle's registration identifier.
func (v *Vehicle) ChangePlate(plate string) error {
	return v.setPlate(plate)
}

// ResizeCapacity replaces the vehicle's capacity limits. Shrinking below the
// current load is allowed; the vehicle simply stops accepting new orders.
func (v *Vehicle) ResizeCapacity(maxWeightKg, maxVolumeM3 float64) error {
	return errors.Join(
		v.setMaxWeightKg(maxWeightKg),
		v.setMaxVolumeM3(maxVolumeM3),
	)
}

// RemoveFromZone detaches the vehicle from its service zone. A zoneless
// vehicle is never offered by the dispatch matcher.
func (v *Vehicle) RemoveFromZone() {
	v.zoneID = nil
}

// LinkDriver links a driver to the vehicle, replacing any existing link.
func (v *Vehicle) LinkDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	v.driverID = &driverID
	return nil
}

// UnlinkDriver removes the driver link, if any.
func (v *Vehicle) UnlinkDriver() {
	v.driverID = nil
}

// IsDrivenBy reports whether the given driver is linked to this vehicle.
func (v *Vehicle) IsDrivenBy(driverID kernel.UUID) bool {
	return v.driverID != nil && v.driverID.IsEqual(driverID)
}

// setID validates and sets the vehicle's unique identifier.
func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

// setPlate validates and sets the registration identifier.
func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	v.plate = plate
	return nil
}

// setMaxWeightKg validates and sets the weight capacity.
func (v *Vehicle) setMaxWeightKg(maxWeightKg float64) error {
	if maxWeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max_weight_kg",
			fmt.Errorf("%g is not greater than 0", maxWeightKg))
	}
	v.maxWeightKg = maxWeightKg
	return nil
}

// setMaxVolumeM3 validates and sets the volume capacity.
func (v *Vehicle) setMaxVolumeM3(maxVolumeM3 float64) error {
	if maxVolumeM3 <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max_volume_m3",
			fmt.Errorf("%g is not greater than 0", maxVolumeM3))
	}
	v.maxVolumeM3 = maxVolumeM3
	return nil
}

// setZoneID validates and sets the optional zone reference.
func (v *Vehicle) setZoneID(zoneID *kernel.UUID) error {
	if zoneID != nil {
		if err := zoneID.Validate(); err != nil {
			return err
		}
	}
	v.zoneID = zoneID
	return nil
}

// setDriverID validates and sets the optional driver link.
func (v *Vehicle) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}
	v.driverID = driverID
	return nil
}
