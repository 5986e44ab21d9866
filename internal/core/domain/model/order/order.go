package order

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a delivery order in the system. It is the aggregate root
// that manages the order lifecycle from creation through assignment, shipment
// and delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid shipper identifier
//   - Parcel dimensions and weight must be positive; volume is always derived
//     from the dimensions and never stored independently
//   - Pickup and drop coordinates must be valid geographic points
//   - Status transitions follow the lifecycle state machine
//   - A vehicle is referenced exactly while the status is not PENDING or CANCELLED
//   - Orders are never deleted; DELIVERED and CANCELLED orders are retained
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// shipperID identifies the principal that created the order
	shipperID kernel.UUID

	// itemName is a free-form descriptor of the parcel contents
	itemName string

	// dimensions is the parcel size in centimeters; volume derives from it
	dimensions kernel.BoxDimensions

	// weightKg is the parcel weight in kilograms (must be positive)
	weightKg float64

	// pickup is the collection coordinate; pickupAddress is optional text
	pickup        kernel.GeoPoint
	pickupAddress string

	// drop is the delivery coordinate; dropAddress is optional text
	drop        kernel.GeoPoint
	dropAddress string

	// status is the current lifecycle state
	status Status

	// vehicleID is the assigned vehicle (nil while PENDING or CANCELLED)
	vehicleID *kernel.UUID

	// driverConfirmedDelivery records the driver's delivery confirmation
	driverConfirmedDelivery bool

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create a fresh Order, ensuring all business invariants hold.
//
// Parameters:
//   - id: unique identifier for the order
//   - shipperID: identifier of the creating shipper
//   - itemName: free-form parcel descriptor (may be empty)
//   - dimensions: parcel dimensions in centimeters
//   - weightKg: parcel weight in kilograms (must be positive)
//   - pickup: collection coordinate
//   - pickupAddress: optional collection address text (may be empty)
//   - drop: delivery coordinate
//   - dropAddress: optional delivery address text (may be empty)
//
// Returns the created order, or an aggregated validation error.
func NewOrder(
	id kernel.UUID,
	shipperID kernel.UUID,
	itemName string,
	dimensions kernel.BoxDimensions,
	weightKg float64,
	pickup kernel.GeoPoint,
	pickupAddress string,
	drop kernel.GeoPoint,
	dropAddress string,
) (*Order, error) {
	o := &Order{
		itemName:      itemName,
		pickupAddress: pickupAddress,
		dropAddress:   dropAddress,
		status:        Pending,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setShipperID(shipperID),
		o.setDimensions(dimensions),
		o.setWeightKg(weightKg),
		o.setPickup(pickup),
		o.setDrop(drop),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which always starts in Pending, this constructor restores
// the order to its previously persisted lifecycle state, including the
// vehicle reference and the driver confirmation flag.
//
// Business rules enforced on restore:
//   - status must be a valid lifecycle state
//   - the vehicle reference must be consistent with the status
func RestoreOrder(
	id kernel.UUID,
	shipperID kernel.UUID,
	itemName string,
	dimensions kernel.BoxDimensions,
	weightKg float64,
	pickup kernel.GeoPoint,
	pickupAddress string,
	drop kernel.GeoPoint,
	dropAddress string,
	status Status,
	vehicleID *kernel.UUID,
	driverConfirmedDelivery bool,
) (*Order, error) {
	o := &Order{
		itemName:                itemName,
		pickupAddress:           pickupAddress,
		dropAddress:             dropAddress,
		driverConfirmedDelivery: driverConfirmedDelivery,
		guard:                   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setShipperID(shipperID),
		o.setDimensions(dimensions),
		o.setWeightKg(weightKg),
		o.setPickup(pickup),
		o.setDrop(drop),
		o.setStatus(status),
		o.setVehicleID(vehicleID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from persistence to ensure integrity.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ShipperID returns the identifier of the shipper that created the order.
func (o *Order) ShipperID() kernel.UUID {
	return o.shipperID
}

// ItemName returns the free-form parcel descriptor.
func (o *Order) ItemName() string {
	return o.itemName
}

// Dimensions returns the parcel dimensions in centimeters.
func (o *Order) Dimensions() kernel.BoxDimensions {
	return o.dimensions
}

// WeightKg returns the parcel weight in kilograms.
func (o *Order) WeightKg() float64 {
	return o.weightKg
}

// VolumeM3 returns the parcel volume in cubic meters, always recomputed
// from the dimensions so it cannot drift from them.
func (o *Order) VolumeM3() float64 {
	return o.dimensions.VolumeM3()
}

// Pickup returns the collection coordinate.
func (o *Order) Pickup() kernel.GeoPoint {
	return o.pickup
}

// PickupAddress returns the optional collection address text.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// Drop returns the delivery coordinate.
func (o *Order) Drop() kernel.GeoPoint {
	return o.drop
}

// DropAddress returns the optional delivery address text.
func (o *Order) DropAddress() string {
	return o.dropAddress
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// Vehicle returns the assigned vehicle's ID, or nil while the order is
// PENDING or CANCELLED.
func (o *Order) Vehicle() *kernel.UUID {
	return o.vehicleID
}

// DriverConfirmedDelivery reports whether the driver confirmed delivery.
func (o *Order) DriverConfirmedDelivery() bool {
	return o.driverConfirmedDelivery
}

// IsActive reports whether the order currently commits vehicle capacity
// (status ASSIGNED or SHIPPED).
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// Assign commits the order to a vehicle and moves it to ASSIGNED.
//
// Business rules:
//   - the vehicle ID must be valid
//   - the order must be PENDING; an already-assigned order must be
//     unassigned first
//
// The caller is responsible for verifying the vehicle's remaining capacity
// before committing this transition; see services.CapacityLedger.
func (o *Order) Assign(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = &vehicleID
	return nil
}

// Unassign releases the order back to PENDING and clears the vehicle
// reference. The order stops counting toward the vehicle's load the instant
// the transition commits.
func (o *Order) Unassign() error {
	newStatus, err := o.status.Unassign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = nil
	return nil
}

// StartShipment moves the order from ASSIGNED to SHIPPED.
// Only the driver linked to the assigned vehicle may trigger this; the
// authorization check belongs to the application layer, which knows the
// calling principal.
func (o *Order) StartShipment() error {
	newStatus, err := o.status.StartShipment()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ConfirmDelivery moves the order from SHIPPED to DELIVERED and records the
// driver's confirmation. DELIVERED is terminal: the driver's confirmation is
// authoritative and no second acknowledgment is required.
func (o *Order) ConfirmDelivery() error {
	newStatus, err := o.status.ConfirmDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverConfirmedDelivery = true
	return nil
}

// Cancel withdraws the order. Valid from PENDING or ASSIGNED; cancelling an
// assigned order clears the vehicle reference and frees its capacity.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = nil
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setShipperID validates and sets the creating shipper's identifier.
func (o *Order) setShipperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipperID", err)
	}
	o.shipperID = id
	return nil
}

// setDimensions validates and sets the parcel dimensions.
func (o *Order) setDimensions(dimensions kernel.BoxDimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	o.dimensions = dimensions
	return nil
}

// setWeightKg validates and sets the parcel weight.
func (o *Order) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight_kg", fmt.Errorf("%g is not greater than 0", weightKg))
	}
	o.weightKg = weightKg
	return nil
}

// setPickup validates and sets the collection coordinate.
func (o *Order) setPickup(pickup kernel.GeoPoint) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}
	o.pickup = pickup
	return nil
}

// setDrop validates and sets the delivery coordinate.
func (o *Order) setDrop(drop kernel.GeoPoint) error {
	if err := drop.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("drop", err)
	}
	o.drop = drop
	return nil
}

// setStatus validates and sets the restored lifecycle state.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setVehicleID validates and sets the restored vehicle reference, enforcing
// consistency with the restored status.
func (o *Order) setVehicleID(vehicleID *kernel.UUID) error {
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return err
		}
	}

	if err := o.status.ValidateCanHaveVehicle(vehicleID != nil); err != nil {
		return err
	}

	o.vehicleID = vehicleID
	return nil
}
