package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

func newAssignHandler(factory *MockDispatchUoWFactory) commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(factory, services.NewCapacityLedger())
}

func TestAssignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	v := testFleetVehicle(t, 1000, 10)
	pending := pendingOrder(t, shipperPrincipal().ID, 600)
	cmd, err := commands.NewAssignOrderCommand(adminPrincipal(), pending.ID(), v.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("GetWithLock", mock.Anything, v.ID()).Return(v, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		orderRepo.On("GetActiveByVehicle", mock.Anything, v.ID()).Return([]*order.Order{}, nil).Once(),
		orderRepo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newAssignHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Assigned, pending.Status())
	require.NotNil(t, pending.Vehicle())
	require.True(t, pending.Vehicle().IsEqual(v.ID()))
	orderRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_CapacityExceeded(t *testing.T) {
	ctx := t.Context()
	v := testFleetVehicle(t, 1000, 10)
	// 600 kg already on board, the next 500 kg does not fit.
	existing := pendingOrder(t, shipperPrincipal().ID, 600)
	require.NoError(t, existing.Assign(v.ID()))
	pending := pendingOrder(t, shipperPrincipal().ID, 500)
	cmd, err := commands.NewAssignOrderCommand(adminPrincipal(), pending.ID(), v.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockDispatchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	vehicleRepo.On("GetWithLock", mock.Anything, v.ID()).Return(v, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	orderRepo.On("GetActiveByVehicle", mock.Anything, v.ID()).Return([]*order.Order{existing}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newAssignHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	var capacityErr *errs.CapacityExceededError
	require.ErrorAs(t, err, &capacityErr)
	require.Equal(t, errs.DimensionWeight, capacityErr.Dimension)
	require.InDelta(t, 1100.0, capacityErr.Attempted, 1e-9)

	// The declined order is untouched.
	require.Equal(t, order.Pending, pending.Status())
	require.Nil(t, pending.Vehicle())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignOrderCommandHandler_Handle_NonAdminIsForbidden(t *testing.T) {
	ctx := t.Context()
	v := testFleetVehicle(t, 1000, 10)
	pending := pendingOrder(t, shipperPrincipal().ID, 600)
	cmd, err := commands.NewAssignOrderCommand(driverPrincipal(), pending.ID(), v.ID())
	require.NoError(t, err)

	factory := new(MockDispatchUoWFactory)
	h := newAssignHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := newAssignHandler(new(MockDispatchUoWFactory))

	require.Error(t, h.Handle(ctx, commands.AssignOrderCommand{}))
}
