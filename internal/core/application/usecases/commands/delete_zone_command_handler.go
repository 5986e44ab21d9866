package commands

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/errs"
)

// DeleteZoneCommandHandler handles service zone deletion. The zone is
// removed from the in-memory index only after the delete commits.
type DeleteZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
	index      *services.GeoZoneIndex
}

// NewDeleteZoneCommandHandler creates a handler for zone deletion.
func NewDeleteZoneCommandHandler(uowFactory ZoneUoWFactory, index *services.GeoZoneIndex) DeleteZoneCommandHandler {
	return DeleteZoneCommandHandler{
		uowFactory: uowFactory,
		index:      index,
	}
}

// Handle processes the zone deletion command.
// Returns a ReferentialConflictError while vehicles reference the zone.
func (h *DeleteZoneCommandHandler) Handle(ctx context.Context, cmd DeleteZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := requireRole(cmd.Principal(), auth.RoleAdmin); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	zoneRepo := uow.ZoneRepository()
	target, err := zoneRepo.Get(ctx, cmd.ZoneID())
	if err != nil {
		return err
	}

	zonedVehicles, err := uow.VehicleRepository().GetByZone(ctx, target.ID())
	if err != nil {
		return err
	}

	if len(zonedVehicles) > 0 {
		return errs.NewReferentialConflictError("zone", target.ID().String(), len(zonedVehicles))
	}

	if err = zoneRepo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.index.Unregister(target.ID())
	return nil
}
