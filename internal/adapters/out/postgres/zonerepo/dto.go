// Package zonerepo provides data transfer objects and mapping functions for
// zone persistence. Polygon boundaries are stored as a JSON document of
// (lat, lng) pairs per ring, matching the shape the read side serves.
package zonerepo

import (
	"encoding/json"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// ZoneDTO represents the database structure for persisting zone aggregates.
type ZoneDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"index"`
	Rings []byte    `gorm:"type:jsonb"`
}

// TableName specifies the database table name for zone entities.
func (ZoneDTO) TableName() string {
	return "zones"
}

func fromDomain(z *zone.Zone) (ZoneDTO, error) {
	rings := z.Rings()
	pairs := make([][][2]float64, 0, len(rings))
	for _, ring := range rings {
		ringPairs := make([][2]float64, 0, len(ring))
		for _, p := range ring {
			ringPairs = append(ringPairs, [2]float64{p.Lat(), p.Lng()})
		}
		pairs = append(pairs, ringPairs)
	}

	raw, err := json.Marshal(pairs)
	if err != nil {
		return ZoneDTO{}, err
	}

	return ZoneDTO{
		ID:    z.ID().Bytes(),
		Name:  z.Name(),
		Rings: raw,
	}, nil
}

func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var pairs [][][2]float64
	if err = json.Unmarshal(dto.Rings, &pairs); err != nil {
		return nil, err
	}

	rings := make([][]kernel.GeoPoint, 0, len(pairs))
	for _, ringPairs := range pairs {
		ring := make([]kernel.GeoPoint, 0, len(ringPairs))
		for _, pair := range ringPairs {
			p, pointErr := kernel.NewGeoPoint(pair[0], pair[1])
			if pointErr != nil {
				return nil, pointErr
			}
			ring = append(ring, p)
		}
		rings = append(rings, ring)
	}

	return zone.RestoreZone(id, dto.Name, rings)
}
