package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInPendingStatus retrieves the oldest order still awaiting
	// assignment. Used by the auto-dispatch job.
	GetFirstInPendingStatus(ctx context.Context) (*order.Order, error)

	// GetActiveByVehicle retrieves the ASSIGNED and SHIPPED orders
	// referencing the given vehicle. This is the input set for capacity
	// derivation, so it must reflect the current transaction's view.
	GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*order.Order, error)

	// GetAllActive retrieves every ASSIGNED and SHIPPED order across the
	// fleet.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
