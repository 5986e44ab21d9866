package errs

import "fmt"

// ErrCapacityExceeded is the sentinel error for assignments that would
// overcommit a vehicle's weight or volume capacity.
var ErrCapacityExceeded = fmt.Errorf("capacity exceeded")

// Capacity dimension names carried by CapacityExceededError.
const (
	DimensionWeight = "weight_kg"
	DimensionVolume = "volume_m3"
)

// CapacityExceededError indicates that taking an order would push a vehicle
// past its maximum in the named dimension. The declined assignment leaves
// all state untouched.
type CapacityExceededError struct {
	VehicleID string
	Dimension string
	Attempted float64
	Max       float64
	Cause     error
}

// NewCapacityExceededError creates an error for an assignment that would
// overcommit the vehicle in the given dimension ("weight_kg" or "volume_m3").
func NewCapacityExceededError(vehicleID string, dimension string, attempted float64, maxValue float64) *CapacityExceededError {
	return &CapacityExceededError{VehicleID: vehicleID, Dimension: dimension, Attempted: attempted, Max: maxValue}
}

func (e *CapacityExceededError) Error() string {
	msg := fmt.Sprintf("%s: vehicle %s %s, attempted %g exceeds max %g",
		ErrCapacityExceeded, sanitize(e.VehicleID), sanitize(e.Dimension), e.Attempted, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause.Error()))
	}
	return msg
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// ErrInvalidStateTransition is the sentinel error for illegal order
// lifecycle moves.
var ErrInvalidStateTransition = fmt.Errorf("invalid state transition")

// InvalidStateTransitionError indicates an order lifecycle move that the
// state machine does not allow.
type InvalidStateTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidStateTransitionError creates an error for an illegal lifecycle
// move from one status to another.
func NewInvalidStateTransitionError(from string, to string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{From: from, To: to}
}

func (e *InvalidStateTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s -> %s", ErrInvalidStateTransition, sanitize(e.From), sanitize(e.To))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause.Error()))
	}
	return msg
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// ErrReferentialConflict is the sentinel error for deletions refused
// because other entities still depend on the target.
var ErrReferentialConflict = fmt.Errorf("referential conflict")

// ReferentialConflictError indicates an entity cannot be deleted while
// dependents still reference it (e.g. a vehicle with active orders, a zone
// with vehicles).
type ReferentialConflictError struct {
	Entity     string
	ID         any
	Dependents int
	Cause      error
}

// NewReferentialConflictError creates an error for a deletion refused due
// to the given number of active dependents.
func NewReferentialConflictError(entity string, id any, dependents int) *ReferentialConflictError {
	return &ReferentialConflictError{Entity: entity, ID: id, Dependents: dependents}
}

func (e *ReferentialConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s %v has %d active dependent(s)",
		ErrReferentialConflict, sanitize(e.Entity), e.ID, e.Dependents)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause.Error()))
	}
	return msg
}

func (e *ReferentialConflictError) Unwrap() error {
	return ErrReferentialConflict
}
