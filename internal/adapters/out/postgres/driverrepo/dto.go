// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence. The driver-to-vehicle link lives on the vehicles
// table; this package only stores driver identity.
package driverrepo

import (
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"index"`
	Phone string
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:    d.ID().Bytes(),
		Name:  d.Name(),
		Phone: d.Phone(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Phone)
}
