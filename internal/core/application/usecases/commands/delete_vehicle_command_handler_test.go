package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

func TestDeleteVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	v := testFleetVehicle(t, 1000, 10)
	cmd, err := commands.NewDeleteVehicleCommand(adminPrincipal(), v.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("GetWithLock", mock.Anything, v.ID()).Return(v, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetActiveByVehicle", mock.Anything, v.ID()).Return([]*order.Order{}, nil).Once(),
		vehicleRepo.On("Delete", mock.Anything, v.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteVehicleCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteVehicleCommandHandler_Handle_RefusedWhileOrdersActive(t *testing.T) {
	ctx := t.Context()
	v := testFleetVehicle(t, 1000, 10)
	active := pendingOrder(t, shipperPrincipal().ID, 600)
	require.NoError(t, active.Assign(v.ID()))
	cmd, err := commands.NewDeleteVehicleCommand(adminPrincipal(), v.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockDispatchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	vehicleRepo.On("GetWithLock", mock.Anything, v.ID()).Return(v, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetActiveByVehicle", mock.Anything, v.ID()).Return([]*order.Order{active}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrReferentialConflict)
	var conflictErr *errs.ReferentialConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Equal(t, "vehicle", conflictErr.Entity)
	require.Equal(t, 1, conflictErr.Dependents)
	vehicleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteVehicleCommandHandler_Handle_SucceedsAfterUnassign(t *testing.T) {
	ctx := t.Context()
	v := testFleetVehicle(t, 1000, 10)
	active := pendingOrder(t, shipperPrincipal().ID, 600)
	require.NoError(t, active.Assign(v.ID()))
	require.NoError(t, active.Unassign())
	cmd, err := commands.NewDeleteVehicleCommand(adminPrincipal(), v.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockDispatchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	vehicleRepo.On("GetWithLock", mock.Anything, v.ID()).Return(v, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	// The unassigned order no longer shows up in the active set.
	orderRepo.On("GetActiveByVehicle", mock.Anything, v.ID()).Return([]*order.Order{}, nil).Once()
	vehicleRepo.On("Delete", mock.Anything, v.ID()).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteVehicleCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
}

func TestDeleteVehicleCommandHandler_Handle_NonAdminIsForbidden(t *testing.T) {
	ctx := t.Context()
	v := testFleetVehicle(t, 1000, 10)
	cmd, err := commands.NewDeleteVehicleCommand(shipperPrincipal(), v.ID())
	require.NoError(t, err)

	factory := new(MockDispatchUoWFactory)
	h := commands.NewDeleteVehicleCommandHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}
