package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	PENDING ──> ASSIGNED ──> SHIPPED ──> DELIVERED
//	   │  ▲        │
//	   │  └────────┤ (unassignment)
//	   │           │
//	   └───────────┴──> CANCELLED
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display. Every illegal move
// fails with an errs.InvalidStateTransitionError.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Pending orders are waiting to be assigned to a vehicle and do not
	// count toward any vehicle's committed capacity.
	Pending

	// Assigned indicates the order has been committed to a vehicle.
	// Assigned orders count toward the vehicle's weight and volume load.
	Assigned

	// Shipped indicates the assigned driver has started the delivery run.
	// Shipped orders still count toward the vehicle's load.
	Shipped

	// Delivered indicates the driver confirmed delivery. This is a terminal
	// state; the order stops counting toward the vehicle's load.
	Delivered

	// Cancelled indicates the order was withdrawn before shipment.
	// This is a terminal state reachable from Pending or Assigned.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses a persisted or API-supplied status name.
// Returns an error for anything outside the five valid states.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five valid states.
// Unknown (0) and any other values are invalid. Used to vet Status values
// arriving from persistence or the API before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name of the status, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the status commits vehicle capacity.
// Only Assigned and Shipped orders count toward a vehicle's load.
func (s Status) IsActive() bool {
	return s == Assigned || s == Shipped
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateCanHaveVehicle validates the consistency between order status and
// vehicle assignment: an order references a vehicle exactly while its status
// is not Pending or Cancelled.
//
// Parameters:
//   - vehicle: whether the order has a vehicle reference
//
// Returns a validation error if status and vehicle reference are inconsistent.
func (s Status) ValidateCanHaveVehicle(vehicle bool) error {
	if vehicle && (s == Pending || s == Cancelled) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a vehicle", s.String()),
		)
	}

	if !vehicle && (s == Assigned || s == Shipped || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no vehicle", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
//
// Returns (0, InvalidStateTransitionError) from any other state; an
// already-Assigned order must be unassigned first so capacity accounting
// stays single-vehicle.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateTransitionError(s.String(), Assigned.String())
	}

	return Assigned, nil
}

// Unassign transitions the status back to Pending.
//
// Valid transitions:
//   - Assigned -> Pending
//
// The freed capacity stops counting against the vehicle the instant the
// transition commits.
func (s Status) Unassign() (Status, error) {
	if s != Assigned {
		return 0, errs.NewInvalidStateTransitionError(s.String(), Pending.String())
	}

	return Pending, nil
}

// StartShipment transitions the status to Shipped.
//
// Valid transitions:
//   - Assigned -> Shipped
func (s Status) StartShipment() (Status, error) {
	if s != Assigned {
		return 0, errs.NewInvalidStateTransitionError(s.String(), Shipped.String())
	}

	return Shipped, nil
}

// ConfirmDelivery transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Delivered is terminal: driver confirmation is authoritative and no
// second-party acknowledgment is modeled.
func (s Status) ConfirmDelivery() (Status, error) {
	if s != Shipped {
		return 0, errs.NewInvalidStateTransitionError(s.String(), Delivered.String())
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Assigned -> Cancelled (frees the vehicle's capacity)
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Assigned {
		return 0, errs.NewInvalidStateTransitionError(s.String(), Cancelled.String())
	}

	return Cancelled, nil
}
