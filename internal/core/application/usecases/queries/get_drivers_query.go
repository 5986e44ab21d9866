package queries

import (
	"errors"

	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves all registered drivers together with the plate
// of the vehicle each one is linked to, if any. Admin only.
type GetDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a query to list all drivers.
func NewGetDriversQuery(principal auth.Principal) (GetDriversQuery, error) {
	if principal.Role != auth.RoleAdmin {
		return GetDriversQuery{}, auth.ErrPermissionDenied
	}

	return GetDriversQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// DriverResponse represents a driver in the read model. VehiclePlate is nil
// when the driver is not linked to any vehicle.
type DriverResponse struct {
	ID           string
	Name         string
	Phone        string
	VehiclePlate *string
}
