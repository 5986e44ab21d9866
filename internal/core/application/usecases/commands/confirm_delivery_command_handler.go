package commands

import (
	"context"
)

// ConfirmDeliveryCommandHandler handles the SHIPPED to DELIVERED transition.
// The driver's confirmation is terminal; the delivered order stops counting
// toward its vehicle's load at commit.
type ConfirmDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory DispatchUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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
	shippedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = requireAssignedDriver(ctx, uow.VehicleRepository(), shippedOrder, cmd.Principal()); err != nil {
		return err
	}

	if err = shippedOrder.ConfirmDelivery(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, shippedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
