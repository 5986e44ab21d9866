package queries

import (
	"errors"

	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrGetFleetQueryIsNotConstructed = errors.New(
	"GetFleetQuery must be created via NewGetFleetQuery constructor",
)

// GetFleetQuery retrieves every vehicle with its current committed load and
// utilization. Admin only.
//
// Load and utilization are computed through the capacity ledger from the
// vehicle's active orders, not read from a stored column, so the listing
// always agrees with what the dispatcher would decide.
type GetFleetQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetQuery creates a query to list the fleet.
func NewGetFleetQuery(principal auth.Principal) (GetFleetQuery, error) {
	if principal.Role != auth.RoleAdmin {
		return GetFleetQuery{}, auth.ErrPermissionDenied
	}

	return GetFleetQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFleetQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetQueryIsNotConstructed)
}

// VehicleResponse represents a vehicle in the read model, including the
// load derived from its active orders.
type VehicleResponse struct {
	ID           string
	Plate        string
	MaxWeightKg  float64
	MaxVolumeM3  float64
	ZoneID       *string
	DriverID     *string
	LoadWeightKg float64
	LoadVolumeM3 float64
	Utilization  float64
}
