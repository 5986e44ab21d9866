package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"
)

func TestUpdateVehicleCommandHandler_Handle_ChangesPlateAndCapacity(t *testing.T) {
	ctx := t.Context()
	v := testFleetVehicle(t, 1000, 10)
	plate := "BC-9999-XZ"
	maxWeightKg := 1500.0
	cmd, err := commands.NewUpdateVehicleCommand(
		adminPrincipal(), v.ID(), &plate, &maxWeightKg, nil, nil, nil)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockFleetUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, v.ID()).Return(v, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Update", mock.Anything, v).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateVehicleCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, "BC-9999-XZ", v.Plate())
	require.InDelta(t, 1500.0, v.MaxWeightKg(), 1e-9)
	require.InDelta(t, 10.0, v.MaxVolumeM3(), 1e-9)
	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateVehicleCommandHandler_Handle_AssignsExistingZone(t *testing.T) {
	ctx := t.Context()
	v := testFleetVehicle(t, 1000, 10)
	ring := make([]kernel.GeoPoint, 0, 4)
	for _, pair := range [][2]float64{{50, 30}, {50, 31}, {51, 31}, {51, 30}} {
		p, pointErr := kernel.NewGeoPoint(pair[0], pair[1])
		require.NoError(t, pointErr)
		ring = append(ring, p)
	}
	z, err := zone.NewZone(kernel.NewUUID(), "Obolon", [][]kernel.GeoPoint{ring})
	require.NoError(t, err)

	zoneID := z.ID()
	cmd, err := commands.NewUpdateVehicleCommand(
		adminPrincipal(), v.ID(), nil, nil, nil, &zoneID, nil)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	zoneRepo := new(MockZoneRepository)
	uow := new(MockFleetUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Twice()
	vehicleRepo.On("Get", mock.Anything, v.ID()).Return(v, nil).Once()
	uow.On("ZoneRepository").Return(zoneRepo).Once()
	zoneRepo.On("Get", mock.Anything, z.ID()).Return(z, nil).Once()
	vehicleRepo.On("Update", mock.Anything, v).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateVehicleCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, v.Zone())
	require.True(t, v.Zone().IsEqual(z.ID()))
}

func TestUpdateVehicleCommandHandler_Handle_RejectsMissingZone(t *testing.T) {
	ctx := t.Context()
	v := testFleetVehicle(t, 1000, 10)
	zoneID := kernel.NewUUID()
	cmd, err := commands.NewUpdateVehicleCommand(
		adminPrincipal(), v.ID(), nil, nil, nil, &zoneID, nil)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	zoneRepo := new(MockZoneRepository)
	uow := new(MockFleetUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	vehicleRepo.On("Get", mock.Anything, v.ID()).Return(v, nil).Once()
	uow.On("ZoneRepository").Return(zoneRepo).Once()
	zoneRepo.On("Get", mock.Anything, zoneID).
		Return(nil, errs.NewObjectNotFoundError("zone", zoneID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Nil(t, v.Zone())
	vehicleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateVehicleCommandHandler_Handle_NonAdminIsForbidden(t *testing.T) {
	ctx := t.Context()
	v := testFleetVehicle(t, 1000, 10)
	plate := "BC-1111-XZ"
	cmd, err := commands.NewUpdateVehicleCommand(
		shipperPrincipal(), v.ID(), &plate, nil, nil, nil, nil)
	require.NoError(t, err)

	factory := new(MockFleetUoWFactory)
	h := commands.NewUpdateVehicleCommandHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestNewUpdateVehicleCommand_RejectsInvalidFields(t *testing.T) {
	vehicleID := kernel.NewUUID()

	empty := ""
	_, err := commands.NewUpdateVehicleCommand(
		adminPrincipal(), vehicleID, &empty, nil, nil, nil, nil)
	require.ErrorIs(t, err, commands.ErrVehiclePlateIsRequired)

	negative := -5.0
	_, err = commands.NewUpdateVehicleCommand(
		adminPrincipal(), vehicleID, nil, &negative, nil, nil, nil)
	require.ErrorIs(t, err, commands.ErrMaxWeightIsInvalid)

	zero := 0.0
	_, err = commands.NewUpdateVehicleCommand(
		adminPrincipal(), vehicleID, nil, nil, &zero, nil, nil)
	require.ErrorIs(t, err, commands.ErrMaxVolumeIsInvalid)
}
