package commands

import (
	"context"
)

// StartShipmentCommandHandler handles the ASSIGNED to SHIPPED transition.
// Only the driver linked to the order's assigned vehicle may start the
// shipment; capacity is unaffected since shipped orders still count toward
// the vehicle's load.
type StartShipmentCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewStartShipmentCommandHandler creates a handler for shipment start.
func NewStartShipmentCommandHandler(uowFactory DispatchUoWFactory) StartShipmentCommandHandler {
	return StartShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment start command.
func (h *StartShipmentCommandHandler) Handle(ctx context.Context, cmd StartShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	assignedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = requireAssignedDriver(ctx, uow.VehicleRepository(), assignedOrder, cmd.Principal()); err != nil {
		return err
	}

	if err = assignedOrder.StartShipment(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, assignedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
