package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/auth"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders enter PENDING status and carry no vehicle reference.
//
// Missing display addresses are enriched via reverse geocoding before the
// transaction opens; a geocoder failure leaves the address empty and never
// blocks creation.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	geocoder   ports.Geocoder
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// The geocoder may be nil, in which case no address enrichment happens.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	geocoder ports.Geocoder,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		logger:     logger,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := requireRole(cmd.Principal(), auth.RoleShipper, auth.RoleAdmin); err != nil {
		return err
	}

	// Geocoding happens strictly before the transaction; it must never be
	// awaited inside a capacity-affecting write path.
	pickupAddress := h.resolveAddress(ctx, cmd.PickupAddress(), cmd.Pickup())
	dropAddress := h.resolveAddress(ctx, cmd.DropAddress(), cmd.Drop())

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Principal().ID,
		cmd.ItemName(),
		cmd.Dimensions(),
		cmd.WeightKg(),
		cmd.Pickup(),
		pickupAddress,
		cmd.Drop(),
		dropAddress,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveAddress reverse-geocodes a missing display address. Failures
// degrade gracefully: the address stays empty for manual entry.
func (h *CreateOrderCommandHandler) resolveAddress(ctx context.Context, address string, point kernel.GeoPoint) string {
	if address != "" || h.geocoder == nil {
		return address
	}

	resolved, err := h.geocoder.ReverseResolve(ctx, point)
	if err != nil {
		h.logger.Warn("reverse geocoding failed, leaving address unresolved", "error", err)
		return ""
	}

	return resolved
}
