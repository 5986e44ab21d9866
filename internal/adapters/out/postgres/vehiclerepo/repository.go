package vehiclerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVehicleRepository implements ports.VehicleRepository using GORM.
//
// The connection must be opened with TranslateError enabled so plate
// uniqueness violations surface as gorm.ErrDuplicatedKey.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add saves a new vehicle to the database. A duplicate plate is reported as
// a validation error on "plate" rather than a bare driver error.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("plate", err)
		}
		return err
	}

	return nil
}

// Update saves an existing vehicle to the database.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", aggregate.ID().String())
	}

	return nil
}

// Delete removes the vehicle from storage. Referential checks against
// active orders happen in the command layer before this is called.
func (r *GormVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", id.String())
	}

	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, id, false)
}

// GetWithLock retrieves a vehicle and takes a SELECT ... FOR UPDATE row lock
// on it. Call inside a transaction; concurrent assignments against the same
// vehicle serialize on this lock.
func (r *GormVehicleRepository) GetWithLock(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, id, true)
}

func (r *GormVehicleRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto VehicleDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPlate retrieves a vehicle by its registration plate.
func (r *GormVehicleRepository) GetByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	if plate == "" {
		return nil, errs.NewValueIsRequiredError("plate")
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "plate = ?", plate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", plate)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every vehicle in the fleet.
func (r *GormVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).Order("plate").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByZone retrieves the vehicles assigned to the given zone.
func (r *GormVehicleRepository) GetByZone(ctx context.Context, zoneID kernel.UUID) ([]*vehicle.Vehicle, error) {
	if err := zoneID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "zone_id = ?", zoneID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByDriver retrieves the vehicle linked to the given driver.
// Returns errs.ObjectNotFoundError when the driver has no vehicle.
func (r *GormVehicleRepository) GetByDriver(ctx context.Context, driverID kernel.UUID) (*vehicle.Vehicle, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "driver_id = ?", driverID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", driverID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func toDomainSlice(dtos []VehicleDTO) ([]*vehicle.Vehicle, error) {
	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}
