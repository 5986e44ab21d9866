package queries

import (
	"errors"

	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrGetDriverVehicleQueryIsNotConstructed = errors.New(
	"GetDriverVehicleQuery must be created via NewGetDriverVehicleQuery constructor",
)

// GetDriverVehicleQuery retrieves the vehicle the calling driver is linked
// to, with its ledger-derived load. Drivers only.
type GetDriverVehicleQuery struct {
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewGetDriverVehicleQuery creates a query for the driver's own vehicle.
func NewGetDriverVehicleQuery(principal auth.Principal) (GetDriverVehicleQuery, error) {
	if principal.Role != auth.RoleDriver {
		return GetDriverVehicleQuery{}, auth.ErrPermissionDenied
	}

	return GetDriverVehicleQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverVehicleQueryIsNotConstructed)
}

// Principal returns the authenticated caller.
func (q GetDriverVehicleQuery) Principal() auth.Principal {
	return q.principal
}
