package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Delete removes the vehicle from storage. Referential checks against
	// active orders are the caller's responsibility.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetWithLock retrieves a vehicle and takes a row lock on it for the
	// current transaction. Assignment re-checks headroom under this lock
	// so two concurrent assignments cannot both observe stale load.
	GetWithLock(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetByPlate retrieves a vehicle by its registration plate.
	// Returns an ObjectNotFoundError when no vehicle carries the plate.
	GetByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error)

	// GetAll retrieves every vehicle in the fleet.
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)

	// GetByZone retrieves the vehicles assigned to the given zone.
	GetByZone(ctx context.Context, zoneID kernel.UUID) ([]*vehicle.Vehicle, error)

	// GetByDriver retrieves the vehicle linked to the given driver, if any.
	// Returns an ObjectNotFoundError when the driver has no vehicle.
	GetByDriver(ctx context.Context, driverID kernel.UUID) (*vehicle.Vehicle, error)
}
