package queries

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// GetDriverVehicleQueryHandler retrieves the calling driver's vehicle with
// ledger-derived load.
type GetDriverVehicleQueryHandler struct {
	vehicles ports.VehicleRepository
	orders   ports.OrderRepository
	ledger   services.CapacityLedger
}

// NewGetDriverVehicleQueryHandler creates a handler for the driver vehicle query.
func NewGetDriverVehicleQueryHandler(
	vehicles ports.VehicleRepository,
	orders ports.OrderRepository,
	ledger services.CapacityLedger,
) GetDriverVehicleQueryHandler {
	return GetDriverVehicleQueryHandler{
		vehicles: vehicles,
		orders:   orders,
		ledger:   ledger,
	}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the
// driver is not linked to any vehicle.
func (h GetDriverVehicleQueryHandler) Handle(
	ctx context.Context,
	query GetDriverVehicleQuery,
) (VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return VehicleResponse{}, err
	}

	driverVehicle, err := h.vehicles.GetByDriver(ctx, query.Principal().ID)
	if err != nil {
		return VehicleResponse{}, err
	}

	activeOrders, err := h.orders.GetActiveByVehicle(ctx, driverVehicle.ID())
	if err != nil {
		return VehicleResponse{}, err
	}

	return vehicleResponseWithLoad(h.ledger, driverVehicle, activeOrders)
}
