package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for zone aggregates.
// Zones are immutable after creation, so the contract has no update method.
type ZoneRepository interface {
	// Add persists a new zone aggregate to storage.
	Add(ctx context.Context, aggregate *zone.Zone) error

	// Delete removes the zone from storage. Referential checks against
	// zoned vehicles are the caller's responsibility.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a zone aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetAll retrieves every registered zone. Used to rebuild the
	// in-memory zone index on startup and after zone create/delete.
	GetAll(ctx context.Context) ([]*zone.Zone, error)
}
