package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/errs"
)

func TestCreateDriverCommandHandler_Handle(t *testing.T) {
	t.Run("registers driver and returns the issued access key", func(t *testing.T) {
		ctx := t.Context()
		driverID := kernel.NewUUID()
		cmd, err := commands.NewCreateDriverCommand(adminPrincipal(), driverID,
			"Ivan Petrov", "+380501234567", "")
		require.NoError(t, err)

		driverRepo := new(MockDriverRepository)
		uow := new(MockDriverUoW)
		issuer := new(MockAccessKeyIssuer)

		issuer.On("Issue", auth.Principal{ID: driverID, Role: auth.RoleDriver}).
			Return("access-key-token", nil).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DriverRepository").Return(driverRepo).Once()
		driverRepo.On("Add", mock.Anything, mock.MatchedBy(func(d *driver.Driver) bool {
			return d.ID().IsEqual(driverID) && d.Name() == "Ivan Petrov"
		})).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockDriverUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateDriverCommandHandler(factory, issuer)
		accessKey, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Equal(t, "access-key-token", accessKey)
	})

	t.Run("links the driver to a vehicle by plate", func(t *testing.T) {
		ctx := t.Context()
		driverID := kernel.NewUUID()
		cmd, err := commands.NewCreateDriverCommand(adminPrincipal(), driverID,
			"Ivan Petrov", "", "AB-123")
		require.NoError(t, err)

		fleetVehicle := testFleetVehicle(t, 1000, 10)
		driverRepo := new(MockDriverRepository)
		vehicleRepo := new(MockVehicleRepository)
		uow := new(MockDriverUoW)
		issuer := new(MockAccessKeyIssuer)

		issuer.On("Issue", mock.Anything).Return("access-key-token", nil).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DriverRepository").Return(driverRepo).Once()
		driverRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
		uow.On("VehicleRepository").Return(vehicleRepo).Once()
		vehicleRepo.On("GetByPlate", mock.Anything, "AB-123").Return(fleetVehicle, nil).Once()
		vehicleRepo.On("Update", mock.Anything, fleetVehicle).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockDriverUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateDriverCommandHandler(factory, issuer)
		_, err = h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.True(t, fleetVehicle.IsDrivenBy(driverID))
	})

	t.Run("fails when the linked plate is unknown", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateDriverCommand(adminPrincipal(), kernel.NewUUID(),
			"Ivan Petrov", "", "ZZ-999")
		require.NoError(t, err)

		driverRepo := new(MockDriverRepository)
		vehicleRepo := new(MockVehicleRepository)
		uow := new(MockDriverUoW)
		issuer := new(MockAccessKeyIssuer)

		issuer.On("Issue", mock.Anything).Return("access-key-token", nil).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DriverRepository").Return(driverRepo).Once()
		driverRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
		uow.On("VehicleRepository").Return(vehicleRepo).Once()
		vehicleRepo.On("GetByPlate", mock.Anything, "ZZ-999").
			Return(nil, errs.NewObjectNotFoundError("plate", nil)).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockDriverUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateDriverCommandHandler(factory, issuer)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("forbids non-admin callers", func(t *testing.T) {
		cmd, err := commands.NewCreateDriverCommand(shipperPrincipal(), kernel.NewUUID(),
			"Ivan Petrov", "", "")
		require.NoError(t, err)

		factory := new(MockDriverUoWFactory)
		issuer := new(MockAccessKeyIssuer)
		h := commands.NewCreateDriverCommandHandler(factory, issuer)
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrPermissionDenied)
		factory.AssertNotCalled(t, "Create")
		issuer.AssertNotCalled(t, "Issue", mock.Anything)
	})
}

func TestDeleteDriverCommandHandler_Handle(t *testing.T) {
	newDriverFixture := func(t *testing.T) *driver.Driver {
		t.Helper()
		d, err := driver.NewDriver(kernel.NewUUID(), "Ivan Petrov", "")
		require.NoError(t, err)
		return d
	}

	t.Run("unlinks the driver's vehicle before deletion", func(t *testing.T) {
		ctx := t.Context()
		d := newDriverFixture(t)
		fleetVehicle := testFleetVehicle(t, 1000, 10)
		require.NoError(t, fleetVehicle.LinkDriver(d.ID()))
		cmd, err := commands.NewDeleteDriverCommand(adminPrincipal(), d.ID())
		require.NoError(t, err)

		driverRepo := new(MockDriverRepository)
		vehicleRepo := new(MockVehicleRepository)
		uow := new(MockDriverUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DriverRepository").Return(driverRepo).Once()
		driverRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
		uow.On("VehicleRepository").Return(vehicleRepo).Once()
		vehicleRepo.On("GetByDriver", mock.Anything, d.ID()).Return(fleetVehicle, nil).Once()
		vehicleRepo.On("Update", mock.Anything, fleetVehicle).Return(nil).Once()
		driverRepo.On("Delete", mock.Anything, d.ID()).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockDriverUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteDriverCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		require.Nil(t, fleetVehicle.Driver())
	})

	t.Run("deletes a driver without a vehicle", func(t *testing.T) {
		ctx := t.Context()
		d := newDriverFixture(t)
		cmd, err := commands.NewDeleteDriverCommand(adminPrincipal(), d.ID())
		require.NoError(t, err)

		driverRepo := new(MockDriverRepository)
		vehicleRepo := new(MockVehicleRepository)
		uow := new(MockDriverUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DriverRepository").Return(driverRepo).Once()
		driverRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
		uow.On("VehicleRepository").Return(vehicleRepo).Once()
		vehicleRepo.On("GetByDriver", mock.Anything, d.ID()).
			Return(nil, errs.NewObjectNotFoundError("driver", nil)).Once()
		driverRepo.On("Delete", mock.Anything, d.ID()).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockDriverUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteDriverCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
	})
}
