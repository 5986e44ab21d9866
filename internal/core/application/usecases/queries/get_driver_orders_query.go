package queries

import (
	"errors"

	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// GetDriverOrdersQuery retrieves the orders assigned to the calling driver's
// vehicle. Drivers only see their own run; a driver without a vehicle gets
// an empty list.
type GetDriverOrdersQuery struct {
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a query for the driver's assigned orders.
func NewGetDriverOrdersQuery(principal auth.Principal) (GetDriverOrdersQuery, error) {
	if principal.Role != auth.RoleDriver {
		return GetDriverOrdersQuery{}, auth.ErrPermissionDenied
	}

	return GetDriverOrdersQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// Principal returns the authenticated caller.
func (q GetDriverOrdersQuery) Principal() auth.Principal {
	return q.principal
}
