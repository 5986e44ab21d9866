package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Delete removes the driver from storage. Detaching the driver from
	// any vehicle is the caller's responsibility.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAll retrieves every registered driver.
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}
