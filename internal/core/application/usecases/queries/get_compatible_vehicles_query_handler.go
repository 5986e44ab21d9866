package queries

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// GetCompatibleVehiclesQueryHandler finds dispatch candidates for an order.
//
// The handler reconstructs the order and the fleet through the domain
// repositories and delegates the actual matching to the dispatch matcher,
// so the read side and the assignment path share one decision procedure.
type GetCompatibleVehiclesQueryHandler struct {
	orders   ports.OrderRepository
	vehicles ports.VehicleRepository
	matcher  services.DispatchMatcher
}

// NewGetCompatibleVehiclesQueryHandler creates a handler for dispatch
// candidate queries.
func NewGetCompatibleVehiclesQueryHandler(
	orders ports.OrderRepository,
	vehicles ports.VehicleRepository,
	matcher services.DispatchMatcher,
) GetCompatibleVehiclesQueryHandler {
	return GetCompatibleVehiclesQueryHandler{
		orders:   orders,
		vehicles: vehicles,
		matcher:  matcher,
	}
}

// Handle executes the query. Returns candidates sorted by ascending
// utilization with plate as the tie-break; an unresolvable pickup zone
// yields an empty list.
func (h GetCompatibleVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetCompatibleVehiclesQuery,
) ([]CompatibleVehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	targetOrder, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	fleet, err := h.vehicles.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	activeOrders, err := h.orders.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	matches, err := h.matcher.CompatibleVehicles(targetOrder, fleet, activeOrders)
	if err != nil {
		return nil, err
	}

	responses := make([]CompatibleVehicleResponse, 0, len(matches))
	for _, m := range matches {
		responses = append(responses, CompatibleVehicleResponse{
			VehicleID:   m.Vehicle.ID().String(),
			Plate:       m.Vehicle.Plate(),
			Utilization: m.Utilization,
		})
	}

	return responses, nil
}
