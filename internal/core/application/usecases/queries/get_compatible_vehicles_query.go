package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrGetCompatibleVehiclesQueryIsNotConstructed = errors.New(
	"GetCompatibleVehiclesQuery must be created via NewGetCompatibleVehiclesQuery constructor",
)

// GetCompatibleVehiclesQuery retrieves the vehicles able to take a given
// order: stationed in the zone containing the pickup point and with enough
// spare capacity. Admin only.
//
// An order whose pickup point falls outside every zone yields an empty
// list, never an error.
type GetCompatibleVehiclesQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCompatibleVehiclesQuery creates a query for dispatch candidates.
func NewGetCompatibleVehiclesQuery(
	principal auth.Principal,
	orderID kernel.UUID,
) (GetCompatibleVehiclesQuery, error) {
	if principal.Role != auth.RoleAdmin {
		return GetCompatibleVehiclesQuery{}, auth.ErrPermissionDenied
	}

	if err := orderID.Validate(); err != nil {
		return GetCompatibleVehiclesQuery{}, err
	}

	return GetCompatibleVehiclesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompatibleVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetCompatibleVehiclesQueryIsNotConstructed)
}

// OrderID returns the order to find candidates for.
func (q GetCompatibleVehiclesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CompatibleVehicleResponse represents one dispatch candidate. Candidates
// arrive sorted by ascending utilization, least loaded first.
type CompatibleVehicleResponse struct {
	VehicleID   string
	Plate       string
	Utilization float64
}
