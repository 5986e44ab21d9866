// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its string form so the read-side SQL stays legible.
// Volume is never stored; it derives from the box dimensions.
type OrderDTO struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipperID               uuid.UUID  `gorm:"type:uuid;index"`
	VehicleID               *uuid.UUID `gorm:"type:uuid;index"`
	ItemName                string
	LengthCm                float64
	WidthCm                 float64
	HeightCm                float64
	WeightKg                float64
	PickupLat               float64
	PickupLng               float64
	PickupAddress           string
	DropLat                 float64
	DropLng                 float64
	DropAddress             string
	Status                  string `gorm:"index"`
	DriverConfirmedDelivery bool
	CreatedAt               time.Time `gorm:"autoCreateTime;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var vehicleID *uuid.UUID
	if id := o.Vehicle(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	return OrderDTO{
		ID:                      o.ID().Bytes(),
		ShipperID:               o.ShipperID().Bytes(),
		VehicleID:               vehicleID,
		ItemName:                o.ItemName(),
		LengthCm:                o.Dimensions().LengthCm(),
		WidthCm:                 o.Dimensions().WidthCm(),
		HeightCm:                o.Dimensions().HeightCm(),
		WeightKg:                o.WeightKg(),
		PickupLat:               o.Pickup().Lat(),
		PickupLng:               o.Pickup().Lng(),
		PickupAddress:           o.PickupAddress(),
		DropLat:                 o.Drop().Lat(),
		DropLng:                 o.Drop().Lng(),
		DropAddress:             o.DropAddress(),
		Status:                  o.Status().String(),
		DriverConfirmedDelivery: o.DriverConfirmedDelivery(),
	}
}

// toDomain converts a database row to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	var vehicleID *kernel.UUID
	if dto.VehicleID != nil {
		vID, vehicleErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vehicleErr != nil {
			return nil, vehicleErr
		}

		vehicleID = &vID
	}

	dimensions, err := kernel.NewBoxDimensions(dto.LengthCm, dto.WidthCm, dto.HeightCm)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}

	drop, err := kernel.NewGeoPoint(dto.DropLat, dto.DropLng)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		shipperID,
		dto.ItemName,
		dimensions,
		dto.WeightKg,
		pickup,
		dto.PickupAddress,
		drop,
		dto.DropAddress,
		status,
		vehicleID,
		dto.DriverConfirmedDelivery,
	)
}
