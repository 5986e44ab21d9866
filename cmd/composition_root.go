package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/geo"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"
	"logistics/internal/adapters/out/postgres/zonerepo"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"
	"logistics/internal/pkg/auth"
)

// CompositionRoot wires adapters, domain services and use case handlers.
// The zone index and the token issuer are process-wide singletons; handlers
// are cheap and constructed per request for the ones that need a fresh unit
// of work.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	zoneIndex  *services.GeoZoneIndex
	ledger     services.CapacityLedger
	matcher    services.DispatchMatcher
	geocoder   ports.Geocoder
	issuer     *auth.TokenIssuer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	issuer, err := auth.NewTokenIssuer(config.AuthSecret, 0)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	geocoder, err := geo.NewNominatimGeocoder(config.GeocoderBaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder: %w", err)
	}

	zoneIndex := services.NewGeoZoneIndex()
	ledger := services.NewCapacityLedger()

	matcher, err := services.NewDispatchMatcher(zoneIndex, ledger)
	if err != nil {
		return nil, fmt.Errorf("dispatch matcher: %w", err)
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		zoneIndex:  zoneIndex,
		ledger:     ledger,
		matcher:    matcher,
		geocoder:   geocoder,
		issuer:     issuer,
		logger:     logger,
	}, nil
}

// WarmZoneIndex loads every stored zone into the in-memory index. Called
// once at startup before any request is served.
func (c *CompositionRoot) WarmZoneIndex(ctx context.Context) error {
	zones, err := c.zoneRepository().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load zones: %w", err)
	}

	return c.zoneIndex.Rebuild(zones)
}

// TokenIssuer returns the issuer the HTTP auth middleware verifies against.
func (c *CompositionRoot) TokenIssuer() *auth.TokenIssuer {
	return c.issuer
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.geocoder, c.logger)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f, c.ledger)
}

func (c *CompositionRoot) CreateUnassignOrderCommandHandler() commands.UnassignOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStartShipmentCommandHandler() commands.StartShipmentCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateVehicleCommandHandler() commands.UpdateVehicleCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateZoneCommandHandler(f, c.zoneIndex)
}

func (c *CompositionRoot) CreateDeleteZoneCommandHandler() commands.DeleteZoneCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteZoneCommandHandler(f, c.zoneIndex)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f, c.issuer)
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetZonesQueryHandler() queries.GetZonesQueryHandler {
	return queries.NewGetZonesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriversQueryHandler() queries.GetDriversQueryHandler {
	return queries.NewGetDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverOrdersQueryHandler() queries.GetDriverOrdersQueryHandler {
	return queries.NewGetDriverOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFleetQueryHandler() queries.GetFleetQueryHandler {
	return queries.NewGetFleetQueryHandler(c.vehicleRepository(), c.orderRepository(), c.ledger)
}

func (c *CompositionRoot) CreateGetDriverVehicleQueryHandler() queries.GetDriverVehicleQueryHandler {
	return queries.NewGetDriverVehicleQueryHandler(c.vehicleRepository(), c.orderRepository(), c.ledger)
}

func (c *CompositionRoot) CreateGetCompatibleVehiclesQueryHandler() queries.GetCompatibleVehiclesQueryHandler {
	return queries.NewGetCompatibleVehiclesQueryHandler(c.orderRepository(), c.vehicleRepository(), c.matcher)
}

// CreateHTTPServer assembles the echo handler implementation over the full
// set of command and query handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.CommandHandlers{
			CreateOrder:     c.CreateCreateOrderCommandHandler(),
			AssignOrder:     c.CreateAssignOrderCommandHandler(),
			UnassignOrder:   c.CreateUnassignOrderCommandHandler(),
			StartShipment:   c.CreateStartShipmentCommandHandler(),
			ConfirmDelivery: c.CreateConfirmDeliveryCommandHandler(),
			CancelOrder:     c.CreateCancelOrderCommandHandler(),
			CreateVehicle:   c.CreateCreateVehicleCommandHandler(),
			UpdateVehicle:   c.CreateUpdateVehicleCommandHandler(),
			DeleteVehicle:   c.CreateDeleteVehicleCommandHandler(),
			CreateZone:      c.CreateCreateZoneCommandHandler(),
			DeleteZone:      c.CreateDeleteZoneCommandHandler(),
			CreateDriver:    c.CreateCreateDriverCommandHandler(),
			DeleteDriver:    c.CreateDeleteDriverCommandHandler(),
		},
		httpadapter.QueryHandlers{
			GetOrders:             c.CreateGetOrdersQueryHandler(),
			GetFleet:              c.CreateGetFleetQueryHandler(),
			GetZones:              c.CreateGetZonesQueryHandler(),
			GetDrivers:            c.CreateGetDriversQueryHandler(),
			GetDriverOrders:       c.CreateGetDriverOrdersQueryHandler(),
			GetDriverVehicle:      c.CreateGetDriverVehicleQueryHandler(),
			GetCompatibleVehicles: c.CreateGetCompatibleVehiclesQueryHandler(),
		},
	)
}

// CreateJobManager assembles the background jobs. Auto-dispatch runs under
// a synthetic admin identity so its assignments pass the same authorization
// as an operator's.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	systemPrincipal := auth.Principal{ID: kernel.NewUUID(), Role: auth.RoleAdmin}

	dispatchJob := jobs.NewDispatchJob(
		c.orderRepository(),
		c.vehicleRepository(),
		c.matcher,
		c.CreateAssignOrderCommandHandler(),
		systemPrincipal,
		c.logger,
	)

	zoneRefreshJob := jobs.NewZoneIndexRefreshJob(c.zoneRepository(), c.zoneIndex, c.logger)

	return jobs.NewJobManager(dispatchJob, zoneRefreshJob)
}

func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}

func (c *CompositionRoot) vehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(c.gormDB)
}

func (c *CompositionRoot) zoneRepository() ports.ZoneRepository {
	return zonerepo.NewGormZoneRepository(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncZoneUoWFactory func() commands.ZoneUoW

func (f FuncZoneUoWFactory) Create() commands.ZoneUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}
