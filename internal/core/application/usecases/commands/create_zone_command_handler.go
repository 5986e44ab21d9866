package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/auth"
)

// CreateZoneCommandHandler handles service zone creation. After the zone is
// committed it is registered with the in-memory zone index so containment
// queries see it immediately.
type CreateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
	index      *services.GeoZoneIndex
}

// NewCreateZoneCommandHandler creates a handler for zone creation.
func NewCreateZoneCommandHandler(uowFactory ZoneUoWFactory, index *services.GeoZoneIndex) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
		index:      index,
	}
}

// Handle processes the zone creation command.
func (h *CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := requireRole(cmd.Principal(), auth.RoleAdmin); err != nil {
		return err
	}

	rings, err := h.buildRings(cmd)
	if err != nil {
		return err
	}

	newZone, err := zone.NewZone(cmd.ZoneID(), cmd.Name(), rings)
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

	if err = uow.ZoneRepository().Add(ctx, newZone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.index.Register(newZone)
}

// buildRings converts the command's shape input into boundary rings.
func (h *CreateZoneCommandHandler) buildRings(cmd CreateZoneCommand) ([][]kernel.GeoPoint, error) {
	if geoJSON := cmd.GeoJSON(); len(geoJSON) > 0 {
		return zone.RingsFromGeoJSON(geoJSON)
	}

	ring := make([]kernel.GeoPoint, 0, len(cmd.Coordinates()))
	for _, pair := range cmd.Coordinates() {
		point, err := kernel.NewGeoPoint(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		ring = append(ring, point)
	}

	return [][]kernel.GeoPoint{ring}, nil
}
