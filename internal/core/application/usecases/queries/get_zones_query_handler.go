package queries

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
)

// GetZonesQueryHandler retrieves zone listings from the database.
type GetZonesQueryHandler struct {
	db *gorm.DB
}

// NewGetZonesQueryHandler creates a handler for zone listing queries.
func NewGetZonesQueryHandler(db *gorm.DB) GetZonesQueryHandler {
	return GetZonesQueryHandler{db: db}
}

// Handle executes the query to retrieve all zones sorted by name.
// Ring geometry is stored as JSON and decoded into (lat, lng) pairs.
func (h GetZonesQueryHandler) Handle(
	ctx context.Context,
	query GetZonesQuery,
) ([]ZoneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			rings
		FROM zones
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]ZoneResponse, 0)

	for rows.Next() {
		var z ZoneResponse
		var ringsJSON []byte

		if err = rows.Scan(&z.ID, &z.Name, &ringsJSON); err != nil {
			return nil, err
		}

		if err = json.Unmarshal(ringsJSON, &z.Rings); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
