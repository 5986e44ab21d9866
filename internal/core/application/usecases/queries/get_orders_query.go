// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
//
// Plain listings read through raw SQL for performance. Derived values
// (vehicle load, utilization) are never recomputed in SQL: queries that
// expose them reconstruct domain objects and go through the capacity
// ledger, so a single formula serves both the write and the read side.
package queries

import (
	"errors"

	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders visible to the caller. Admins see every
// order; shippers see only the orders they created.
//
// Example:
//
//	query, err := NewGetOrdersQuery(principal)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
type GetOrdersQuery struct {
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders for the given principal.
// Only admins and shippers may list orders.
func NewGetOrdersQuery(principal auth.Principal) (GetOrdersQuery, error) {
	if principal.Role != auth.RoleAdmin && principal.Role != auth.RoleShipper {
		return GetOrdersQuery{}, auth.ErrPermissionDenied
	}

	return GetOrdersQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Principal returns the authenticated caller.
func (q GetOrdersQuery) Principal() auth.Principal {
	return q.principal
}

// OrderResponse represents an order in the read model.
type OrderResponse struct {
	ID                      string
	ShipperID               string
	ItemName                string
	WeightKg                float64
	VolumeM3                float64
	Status                  string
	PickupLat               float64
	PickupLng               float64
	PickupAddress           string
	DropLat                 float64
	DropLng                 float64
	DropAddress             string
	VehicleID               *string
	DriverConfirmedDelivery bool
}
