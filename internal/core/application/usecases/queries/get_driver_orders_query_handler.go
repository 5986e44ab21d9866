package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler retrieves the calling driver's assigned orders.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for driver order queries.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve active orders on the vehicle the
// driver is linked to. Delivered and cancelled orders are excluded; the
// driver's run only spans work still in motion.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.shipper_id,
			o.item_name,
			o.weight_kg,
			(o.length_cm * o.width_cm * o.height_cm) / 1000000.0 AS volume_m3,
			o.status,
			o.pickup_lat,
			o.pickup_lng,
			o.pickup_address,
			o.drop_lat,
			o.drop_lng,
			o.drop_address,
			o.vehicle_id,
			o.driver_confirmed_delivery
		FROM orders o
		JOIN vehicles v ON v.id = o.vehicle_id
		WHERE v.driver_id = ?
			AND o.status IN ('ASSIGNED', 'SHIPPED')
		ORDER BY o.item_name, o.id
	`, query.Principal().ID.String()).Rows()
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
