package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

func squareCoordinates() [][2]float64 {
	return [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
}

func TestCreateZoneCommandHandler_Handle(t *testing.T) {
	t.Run("creates zone from operator coordinates and registers it", func(t *testing.T) {
		ctx := t.Context()
		index := services.NewGeoZoneIndex()
		zoneID := kernel.NewUUID()
		cmd, err := commands.NewCreateZoneCommand(adminPrincipal(), zoneID, "Downtown",
			squareCoordinates(), nil)
		require.NoError(t, err)

		zoneRepo := new(MockZoneRepository)
		uow := new(MockZoneUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ZoneRepository").Return(zoneRepo).Once()
		zoneRepo.On("Add", mock.Anything, mock.AnythingOfType("*zone.Zone")).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockZoneUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateZoneCommandHandler(factory, index)
		require.NoError(t, h.Handle(ctx, cmd))

		inside, err := kernel.NewGeoPoint(5, 5)
		require.NoError(t, err)
		resolved := index.ZoneContaining(inside)
		require.NotNil(t, resolved)
		require.Equal(t, "Downtown", resolved.Name())
	})

	t.Run("creates zone from geojson with transposed coordinates", func(t *testing.T) {
		ctx := t.Context()
		index := services.NewGeoZoneIndex()
		geoJSON := []byte(`{
			"type": "Polygon",
			"coordinates": [[[30.0, 50.0], [31.0, 50.0], [31.0, 51.0], [30.0, 51.0], [30.0, 50.0]]]
		}`)
		cmd, err := commands.NewCreateZoneCommand(adminPrincipal(), kernel.NewUUID(),
			"Imported", nil, geoJSON)
		require.NoError(t, err)

		zoneRepo := new(MockZoneRepository)
		uow := new(MockZoneUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ZoneRepository").Return(zoneRepo).Once()
		zoneRepo.On("Add", mock.Anything, mock.AnythingOfType("*zone.Zone")).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockZoneUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateZoneCommandHandler(factory, index)
		require.NoError(t, h.Handle(ctx, cmd))

		inside, err := kernel.NewGeoPoint(50.5, 30.5)
		require.NoError(t, err)
		require.NotNil(t, index.ZoneContaining(inside))
	})

	t.Run("requires exactly one boundary shape", func(t *testing.T) {
		_, err := commands.NewCreateZoneCommand(adminPrincipal(), kernel.NewUUID(),
			"Downtown", nil, nil)
		require.ErrorIs(t, err, commands.ErrZoneShapeIsRequired)

		_, err = commands.NewCreateZoneCommand(adminPrincipal(), kernel.NewUUID(),
			"Downtown", squareCoordinates(), []byte(`{"type":"Polygon"}`))
		require.ErrorIs(t, err, commands.ErrZoneShapeIsRequired)
	})
}

func TestDeleteZoneCommandHandler_Handle(t *testing.T) {
	newZoneFixture := func(t *testing.T) *zone.Zone {
		t.Helper()
		ring := make([]kernel.GeoPoint, 0, 4)
		for _, pair := range squareCoordinates() {
			p, err := kernel.NewGeoPoint(pair[0], pair[1])
			require.NoError(t, err)
			ring = append(ring, p)
		}
		z, err := zone.NewZone(kernel.NewUUID(), "Downtown", [][]kernel.GeoPoint{ring})
		require.NoError(t, err)
		return z
	}

	t.Run("deletes zone without dependents and unregisters it", func(t *testing.T) {
		ctx := t.Context()
		index := services.NewGeoZoneIndex()
		z := newZoneFixture(t)
		require.NoError(t, index.Register(z))
		cmd, err := commands.NewDeleteZoneCommand(adminPrincipal(), z.ID())
		require.NoError(t, err)

		zoneRepo := new(MockZoneRepository)
		vehicleRepo := new(MockVehicleRepository)
		uow := new(MockZoneUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ZoneRepository").Return(zoneRepo).Once()
		zoneRepo.On("Get", mock.Anything, z.ID()).Return(z, nil).Once()
		uow.On("VehicleRepository").Return(vehicleRepo).Once()
		vehicleRepo.On("GetByZone", mock.Anything, z.ID()).Return([]*vehicle.Vehicle{}, nil).Once()
		zoneRepo.On("Delete", mock.Anything, z.ID()).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockZoneUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteZoneCommandHandler(factory, index)
		require.NoError(t, h.Handle(ctx, cmd))
		require.Empty(t, index.Zones())
	})

	t.Run("refuses deletion while vehicles reference the zone", func(t *testing.T) {
		ctx := t.Context()
		index := services.NewGeoZoneIndex()
		z := newZoneFixture(t)
		require.NoError(t, index.Register(z))
		zoneID := z.ID()
		zonedVehicle, err := vehicle.NewVehicle(kernel.NewUUID(), "AB-123", 1000, 10, &zoneID)
		require.NoError(t, err)
		cmd, err := commands.NewDeleteZoneCommand(adminPrincipal(), z.ID())
		require.NoError(t, err)

		zoneRepo := new(MockZoneRepository)
		vehicleRepo := new(MockVehicleRepository)
		uow := new(MockZoneUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ZoneRepository").Return(zoneRepo).Once()
		zoneRepo.On("Get", mock.Anything, z.ID()).Return(z, nil).Once()
		uow.On("VehicleRepository").Return(vehicleRepo).Once()
		vehicleRepo.On("GetByZone", mock.Anything, z.ID()).Return([]*vehicle.Vehicle{zonedVehicle}, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockZoneUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteZoneCommandHandler(factory, index)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrReferentialConflict)
		// The zone stays resolvable since the delete was refused.
		require.Len(t, index.Zones(), 1)
		zoneRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
