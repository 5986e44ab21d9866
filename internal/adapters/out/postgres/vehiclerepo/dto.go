// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence.
package vehiclerepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates. Plate carries a unique constraint; driver creation links by
// plate and relies on it.
type VehicleDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Plate       string     `gorm:"uniqueIndex"`
	MaxWeightKg float64
	MaxVolumeM3 float64
	ZoneID      *uuid.UUID `gorm:"type:uuid;index"`
	DriverID    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	var zoneID *uuid.UUID
	if id := v.Zone(); id != nil {
		raw := id.Bytes()
		zoneID = &raw
	}

	var driverID *uuid.UUID
	if id := v.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return VehicleDTO{
		ID:          v.ID().Bytes(),
		Plate:       v.Plate(),
		MaxWeightKg: v.MaxWeightKg(),
		MaxVolumeM3: v.MaxVolumeM3(),
		ZoneID:      zoneID,
		DriverID:    driverID,
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var zoneID *kernel.UUID
	if dto.ZoneID != nil {
		zID, zoneErr := kernel.UUIDFromBytes((*dto.ZoneID)[:])
		if zoneErr != nil {
			return nil, zoneErr
		}

		zoneID = &zID
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	return vehicle.RestoreVehicle(id, dto.Plate, dto.MaxWeightKg, dto.MaxVolumeM3, zoneID, driverID)
}
