package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrDeleteZoneCommandIsNotConstructed = errors.New(
	"DeleteZoneCommand must be created via NewDeleteZoneCommand constructor",
)

// DeleteZoneCommand represents a request to delete a service zone. Deletion
// is refused while vehicles are still assigned to the zone.
type DeleteZoneCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	zoneID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteZoneCommand creates a command to delete a zone.
func NewDeleteZoneCommand(principal auth.Principal, zoneID kernel.UUID) (DeleteZoneCommand, error) {
	cmd := DeleteZoneCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setZoneID(zoneID); err != nil {
		return DeleteZoneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteZoneCommand) Validate() error {
	return c.guard.Validate(ErrDeleteZoneCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c DeleteZoneCommand) Principal() auth.Principal {
	return c.principal
}

// ZoneID returns the zone to delete.
func (c DeleteZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

func (c *DeleteZoneCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}
