package queries

import (
	"context"
	"database/sql"

	"logistics/internal/pkg/auth"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders visible to the caller.
// Shippers are restricted to their own orders; admins see everything.
// Results are sorted by item name for stable listings.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseSQL = `
		SELECT
			id,
			shipper_id,
			item_name,
			weight_kg,
			(length_cm * width_cm * height_cm) / 1000000.0 AS volume_m3,
			status,
			pickup_lat,
			pickup_lng,
			pickup_address,
			drop_lat,
			drop_lng,
			drop_address,
			vehicle_id,
			driver_confirmed_delivery
		FROM orders
	`

	tx := h.db.WithContext(ctx)

	var rows *sql.Rows
	var err error
	if query.Principal().Role == auth.RoleShipper {
		rows, err = tx.Raw(baseSQL+` WHERE shipper_id = ? ORDER BY item_name, id`,
			query.Principal().ID.String()).Rows()
	} else {
		rows, err = tx.Raw(baseSQL + ` ORDER BY item_name, id`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var o OrderResponse
		var vehicleID sql.NullString

		err = rows.Scan(
			&o.ID,
			&o.ShipperID,
			&o.ItemName,
			&o.WeightKg,
			&o.VolumeM3,
			&o.Status,
			&o.PickupLat,
			&o.PickupLng,
			&o.PickupAddress,
			&o.DropLat,
			&o.DropLng,
			&o.DropAddress,
			&vehicleID,
			&o.DriverConfirmedDelivery,
		)
		if err != nil {
			return nil, err
		}

		if vehicleID.Valid {
			o.VehicleID = &vehicleID.String
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
