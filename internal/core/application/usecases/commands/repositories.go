// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization against
// the caller's principal, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// VehicleRepoFactory provides access to vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// ZoneRepoFactory provides access to zone repository within a transaction.
	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	// DriverRepoFactory provides access to driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DispatchUoW manages transactions spanning orders and vehicles.
	// Used by assignment and vehicle lifecycle commands that must see a
	// consistent view of both aggregates.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		VehicleRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// ZoneUoW manages transactions spanning zones and vehicles.
	// Zone deletion checks for dependent vehicles in the same transaction.
	ZoneUoW interface {
		TxManager
		ZoneRepoFactory
		VehicleRepoFactory
	}

	// ZoneUoWFactory creates new zone unit of work instances.
	ZoneUoWFactory interface {
		Create() ZoneUoW
	}

	// FleetUoW manages transactions spanning vehicles and every aggregate a
	// vehicle may reference. Vehicle updates verify zone and driver links
	// inside the same transaction.
	FleetUoW interface {
		TxManager
		VehicleRepoFactory
		ZoneRepoFactory
		DriverRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// DriverUoW manages transactions spanning drivers and vehicles.
	// Driver creation may link a vehicle by plate; deletion detaches it.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
		VehicleRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}
)
