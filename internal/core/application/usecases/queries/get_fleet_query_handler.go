package queries

import (
	"context"
	"sort"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// GetFleetQueryHandler retrieves all vehicles with ledger-derived load.
//
// Unlike the plain listing queries this handler goes through the domain
// repositories: load and utilization must come from the capacity ledger,
// which operates on reconstructed aggregates.
type GetFleetQueryHandler struct {
	vehicles ports.VehicleRepository
	orders   ports.OrderRepository
	ledger   services.CapacityLedger
}

// NewGetFleetQueryHandler creates a handler for fleet listing queries.
func NewGetFleetQueryHandler(
	vehicles ports.VehicleRepository,
	orders ports.OrderRepository,
	ledger services.CapacityLedger,
) GetFleetQueryHandler {
	return GetFleetQueryHandler{
		vehicles: vehicles,
		orders:   orders,
		ledger:   ledger,
	}
}

// Handle executes the query to retrieve the fleet sorted by plate.
// Active orders are loaded once and shared across all vehicles.
func (h GetFleetQueryHandler) Handle(
	ctx context.Context,
	query GetFleetQuery,
) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
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

	responses := make([]VehicleResponse, 0, len(fleet))
	for _, v := range fleet {
		response, err := vehicleResponseWithLoad(h.ledger, v, activeOrders)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	sort.Slice(responses, func(i, j int) bool {
		return responses[i].Plate < responses[j].Plate
	})

	return responses, nil
}

// vehicleResponseWithLoad builds the read model for one vehicle, deriving
// load and utilization through the ledger.
func vehicleResponseWithLoad(
	ledger services.CapacityLedger,
	v *vehicle.Vehicle,
	activeOrders []*order.Order,
) (VehicleResponse, error) {
	load, err := ledger.CurrentLoad(v, activeOrders)
	if err != nil {
		return VehicleResponse{}, err
	}

	utilization, err := ledger.Utilization(v, activeOrders)
	if err != nil {
		return VehicleResponse{}, err
	}

	response := VehicleResponse{
		ID:           v.ID().String(),
		Plate:        v.Plate(),
		MaxWeightKg:  v.MaxWeightKg(),
		MaxVolumeM3:  v.MaxVolumeM3(),
		LoadWeightKg: load.WeightKg,
		LoadVolumeM3: load.VolumeM3,
		Utilization:  utilization,
	}

	if zoneID := v.Zone(); zoneID != nil {
		s := zoneID.String()
		response.ZoneID = &s
	}
	if driverID := v.Driver(); driverID != nil {
		s := driverID.String()
		response.DriverID = &s
	}

	return response, nil
}
