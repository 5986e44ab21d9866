package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetDriversQueryHandler retrieves driver listings from the database.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for driver listing queries.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all drivers sorted by name.
// The linked vehicle plate, when present, comes from a join on the
// vehicles table; the vehicle side owns the link.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	query GetDriversQuery,
) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.name,
			d.phone,
			v.plate
		FROM drivers d
		LEFT JOIN vehicles v ON v.driver_id = d.id
		ORDER BY d.name, d.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]DriverResponse, 0)

	for rows.Next() {
		var d DriverResponse
		var plate sql.NullString

		if err = rows.Scan(&d.ID, &d.Name, &d.Phone, &plate); err != nil {
			return nil, err
		}

		if plate.Valid {
			d.VehiclePlate = &plate.String
		}
		drivers = append(drivers, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
