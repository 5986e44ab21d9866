package queries

import (
	"errors"

	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrGetZonesQueryIsNotConstructed = errors.New(
	"GetZonesQuery must be created via NewGetZonesQuery constructor",
)

// GetZonesQuery retrieves all delivery zones with their polygon boundaries.
// Admin only.
type GetZonesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetZonesQuery creates a query to list all zones.
func NewGetZonesQuery(principal auth.Principal) (GetZonesQuery, error) {
	if principal.Role != auth.RoleAdmin {
		return GetZonesQuery{}, auth.ErrPermissionDenied
	}

	return GetZonesQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetZonesQueryIsNotConstructed)
}

// ZoneResponse represents a zone in the read model. Rings hold the polygon
// boundary as (lat, lng) pairs, outer ring first, without a closing vertex.
type ZoneResponse struct {
	ID    string
	Name  string
	Rings [][][2]float64
}
