package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/errs"
)

// CommandHandlers bundles the write-side use case handlers the server routes to.
type CommandHandlers struct {
	CreateOrder     commands.CreateOrderCommandHandler
	AssignOrder     commands.AssignOrderCommandHandler
	UnassignOrder   commands.UnassignOrderCommandHandler
	StartShipment   commands.StartShipmentCommandHandler
	ConfirmDelivery commands.ConfirmDeliveryCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	CreateVehicle   commands.CreateVehicleCommandHandler
	UpdateVehicle   commands.UpdateVehicleCommandHandler
	DeleteVehicle   commands.DeleteVehicleCommandHandler
	CreateZone      commands.CreateZoneCommandHandler
	DeleteZone      commands.DeleteZoneCommandHandler
	CreateDriver    commands.CreateDriverCommandHandler
	DeleteDriver    commands.DeleteDriverCommandHandler
}

// QueryHandlers bundles the read-side use case handlers the server routes to.
type QueryHandlers struct {
	GetOrders             queries.GetOrdersQueryHandler
	GetFleet              queries.GetFleetQueryHandler
	GetZones              queries.GetZonesQueryHandler
	GetDrivers            queries.GetDriversQueryHandler
	GetDriverOrders       queries.GetDriverOrdersQueryHandler
	GetDriverVehicle      queries.GetDriverVehicleQueryHandler
	GetCompatibleVehicles queries.GetCompatibleVehiclesQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It translates between the wire representation and the application use
// cases; authorization decisions stay inside the commands and queries.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// GetHealth handles GET /api/v1/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "OK")
}

// ListOrders handles GET /api/v1/orders - lists orders visible to the caller.
// Admins see every order, shippers only their own.
func (s *Server) ListOrders(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetOrdersQuery(principal)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.queries.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToWire(orders))
}

// CreateOrder handles POST /api/v1/orders - registers a new order for the
// calling shipper.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	dimensions, err := kernel.NewBoxDimensions(
		newOrder.Dimensions.LengthCm,
		newOrder.Dimensions.WidthCm,
		newOrder.Dimensions.HeightCm,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	pickup, err := kernel.NewGeoPoint(newOrder.Pickup.Lat, newOrder.Pickup.Lng)
	if err != nil {
		return errorResponse(ctx, err)
	}

	drop, err := kernel.NewGeoPoint(newOrder.Drop.Lat, newOrder.Drop.Lng)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		principal,
		kernel.NewUUID(),
		newOrder.ItemName,
		dimensions,
		newOrder.WeightKg,
		pickup,
		stringValue(newOrder.PickupAddress),
		drop,
		stringValue(newOrder.DropAddress),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AssignOrder handles POST /api/v1/orders/{orderId}/assign - assigns a
// pending order to the vehicle named in the request body.
func (s *Server) AssignOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var request servers.AssignOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	oid, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}
	vid, err := kernel.UUIDFromBytes(request.VehicleId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(principal, oid, vid)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnassignOrder handles POST /api/v1/orders/{orderId}/unassign - returns an
// assigned order to the pending pool.
func (s *Server) UnassignOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	oid, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUnassignOrderCommand(principal, oid)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.UnassignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartShipment handles POST /api/v1/orders/{orderId}/start-shipment - marks
// an assigned order as shipped.
func (s *Server) StartShipment(ctx echo.Context, orderID openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	oid, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewStartShipmentCommand(principal, oid)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.StartShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/{orderId}/confirm-delivery -
// completes a shipped order and frees its vehicle's capacity.
func (s *Server) ConfirmDelivery(ctx echo.Context, orderID openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	oid, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(principal, oid)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.ConfirmDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels a
// pending or assigned order.
func (s *Server) CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	oid, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(principal, oid)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCompatibleVehicles handles GET /api/v1/orders/{orderId}/compatible-vehicles -
// lists vehicles able to take the order, least utilized first.
func (s *Server) GetCompatibleVehicles(ctx echo.Context, orderID openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	oid, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetCompatibleVehiclesQuery(principal, oid)
	if err != nil {
		return errorResponse(ctx, err)
	}

	vehicles, err := s.queries.GetCompatibleVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.CompatibleVehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = servers.CompatibleVehicle{
			VehicleId:   parseWireUUID(v.VehicleID),
			Plate:       v.Plate,
			Utilization: v.Utilization,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFleet handles GET /api/v1/vehicles - lists the fleet with current load
// and utilization.
func (s *Server) GetFleet(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetFleetQuery(principal)
	if err != nil {
		return errorResponse(ctx, err)
	}

	vehicles, err := s.queries.GetFleet.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = vehicleToWire(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateVehicle handles POST /api/v1/vehicles - registers a new vehicle.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var newVehicle servers.NewVehicle
	if err := ctx.Bind(&newVehicle); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var zoneID *kernel.UUID
	if newVehicle.ZoneId != nil {
		zid, err := kernel.UUIDFromBytes(newVehicle.ZoneId[:])
		if err != nil {
			return errorResponse(ctx, err)
		}
		zoneID = &zid
	}

	cmd, err := commands.NewCreateVehicleCommand(
		principal,
		kernel.NewUUID(),
		newVehicle.Plate,
		newVehicle.MaxWeightKg,
		newVehicle.MaxVolumeM3,
		zoneID,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.CreateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateVehicle handles PATCH /api/v1/vehicles/{vehicleId} - applies a
// partial update and returns the vehicle with its refreshed load figures.
func (s *Server) UpdateVehicle(ctx echo.Context, vehicleID openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var update servers.UpdateVehicle
	if err := ctx.Bind(&update); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vid, err := kernel.UUIDFromBytes(vehicleID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var zoneID *kernel.UUID
	if update.ZoneId != nil {
		zid, zidErr := kernel.UUIDFromBytes(update.ZoneId[:])
		if zidErr != nil {
			return errorResponse(ctx, zidErr)
		}
		zoneID = &zid
	}

	var driverID *kernel.UUID
	if update.DriverId != nil {
		did, didErr := kernel.UUIDFromBytes(update.DriverId[:])
		if didErr != nil {
			return errorResponse(ctx, didErr)
		}
		driverID = &did
	}

	cmd, err := commands.NewUpdateVehicleCommand(
		principal,
		vid,
		update.Plate,
		update.MaxWeightKg,
		update.MaxVolumeM3,
		zoneID,
		driverID,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.UpdateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetFleetQuery(principal)
	if err != nil {
		return errorResponse(ctx, err)
	}

	vehicles, err := s.queries.GetFleet.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	for _, v := range vehicles {
		if v.ID == vid.String() {
			return ctx.JSON(http.StatusOK, vehicleToWire(v))
		}
	}

	return errorResponse(ctx, errs.NewObjectNotFoundError("vehicle", vid.String()))
}

// DeleteVehicle handles DELETE /api/v1/vehicles/{vehicleId} - removes a
// vehicle that has no active orders.
func (s *Server) DeleteVehicle(ctx echo.Context, vehicleID openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	vid, err := kernel.UUIDFromBytes(vehicleID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteVehicleCommand(principal, vid)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.DeleteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListZones handles GET /api/v1/zones - lists delivery zones with their
// polygon boundaries.
func (s *Server) ListZones(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetZonesQuery(principal)
	if err != nil {
		return errorResponse(ctx, err)
	}

	zones, err := s.queries.GetZones.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Zone, len(zones))
	for i, z := range zones {
		response[i] = servers.Zone{
			Id:    parseWireUUID(z.ID),
			Name:  z.Name,
			Rings: ringsToWire(z.Rings),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateZone handles POST /api/v1/zones - registers a delivery zone from
// either an operator-drawn coordinate ring or a GeoJSON geometry.
func (s *Server) CreateZone(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var newZone servers.NewZone
	if err := ctx.Bind(&newZone); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var coordinates [][2]float64
	if newZone.Coordinates != nil {
		coordinates = make([][2]float64, len(*newZone.Coordinates))
		for i, pair := range *newZone.Coordinates {
			if len(pair) != 2 {
				return badRequest(ctx, "Coordinates must be (lat, lng) pairs")
			}
			coordinates[i] = [2]float64{pair[0], pair[1]}
		}
	}

	var geoJSON []byte
	if newZone.Geojson != nil {
		raw, err := json.Marshal(*newZone.Geojson)
		if err != nil {
			return badRequest(ctx, "Invalid GeoJSON geometry")
		}
		geoJSON = raw
	}

	cmd, err := commands.NewCreateZoneCommand(
		principal,
		kernel.NewUUID(),
		newZone.Name,
		coordinates,
		geoJSON,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.CreateZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteZone handles DELETE /api/v1/zones/{zoneId} - removes a zone with no
// stationed vehicles.
func (s *Server) DeleteZone(ctx echo.Context, zoneID openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	zid, err := kernel.UUIDFromBytes(zoneID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteZoneCommand(principal, zid)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.DeleteZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListDrivers handles GET /api/v1/drivers - lists drivers with the plate of
// their linked vehicle, if any.
func (s *Server) ListDrivers(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetDriversQuery(principal)
	if err != nil {
		return errorResponse(ctx, err)
	}

	drivers, err := s.queries.GetDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Driver, len(drivers))
	for i, d := range drivers {
		response[i] = servers.Driver{
			Id:           parseWireUUID(d.ID),
			Name:         d.Name,
			Phone:        optionalString(d.Phone),
			VehiclePlate: d.VehiclePlate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers - registers a driver and returns
// the one-time access key.
func (s *Server) CreateDriver(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var newDriver servers.NewDriver
	if err := ctx.Bind(&newDriver); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		principal,
		driverID,
		newDriver.Name,
		stringValue(newDriver.Phone),
		stringValue(newDriver.VehiclePlate),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	accessKey, err := s.commands.CreateDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.DriverCreated{
		Id:        driverID.Bytes(),
		AccessKey: accessKey,
	})
}

// DeleteDriver handles DELETE /api/v1/drivers/{driverId} - removes a driver,
// detaching any vehicle link first.
func (s *Server) DeleteDriver(ctx echo.Context, driverID openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	did, err := kernel.UUIDFromBytes(driverID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteDriverCommand(principal, did)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.commands.DeleteDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDriverOrders handles GET /api/v1/driver/orders - lists the calling
// driver's assigned and shipped orders.
func (s *Server) GetDriverOrders(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetDriverOrdersQuery(principal)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.queries.GetDriverOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToWire(orders))
}

// GetDriverVehicle handles GET /api/v1/driver/vehicle - returns the calling
// driver's vehicle with its current load.
func (s *Server) GetDriverVehicle(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetDriverVehicleQuery(principal)
	if err != nil {
		return errorResponse(ctx, err)
	}

	vehicle, err := s.queries.GetDriverVehicle.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleToWire(vehicle))
}

// statusFor maps application errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrReferentialConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func unauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing bearer token",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func ordersToWire(orders []queries.OrderResponse) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		wire := servers.Order{
			Id:                      parseWireUUID(o.ID),
			ShipperId:               parseWireUUID(o.ShipperID),
			ItemName:                o.ItemName,
			WeightKg:                o.WeightKg,
			VolumeM3:                o.VolumeM3,
			Status:                  servers.OrderStatus(o.Status),
			Pickup:                  servers.GeoPoint{Lat: o.PickupLat, Lng: o.PickupLng},
			PickupAddress:           optionalString(o.PickupAddress),
			Drop:                    servers.GeoPoint{Lat: o.DropLat, Lng: o.DropLng},
			DropAddress:             optionalString(o.DropAddress),
			DriverConfirmedDelivery: &o.DriverConfirmedDelivery,
		}
		if o.VehicleID != nil {
			id := parseWireUUID(*o.VehicleID)
			wire.VehicleId = &id
		}
		response[i] = wire
	}

	return response
}

func vehicleToWire(v queries.VehicleResponse) servers.Vehicle {
	wire := servers.Vehicle{
		Id:           parseWireUUID(v.ID),
		Plate:        v.Plate,
		MaxWeightKg:  v.MaxWeightKg,
		MaxVolumeM3:  v.MaxVolumeM3,
		LoadWeightKg: v.LoadWeightKg,
		LoadVolumeM3: v.LoadVolumeM3,
		Utilization:  v.Utilization,
	}
	if v.ZoneID != nil {
		id := parseWireUUID(*v.ZoneID)
		wire.ZoneId = &id
	}
	if v.DriverID != nil {
		id := parseWireUUID(*v.DriverID)
		wire.DriverId = &id
	}

	return wire
}

func ringsToWire(rings [][][2]float64) [][][]float64 {
	wire := make([][][]float64, len(rings))
	for i, ring := range rings {
		wire[i] = make([][]float64, len(ring))
		for j, pair := range ring {
			wire[i][j] = []float64{pair[0], pair[1]}
		}
	}

	return wire
}

// parseWireUUID converts a read-model identifier to the wire type. Read
// models only ever carry identifiers that were valid UUIDs in storage.
func parseWireUUID(s string) openapi_types.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
