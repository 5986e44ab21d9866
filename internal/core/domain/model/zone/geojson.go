package zone

import (
	"encoding/json"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// GeoJSON geometry types accepted by RingsFromGeoJSON.
const (
	geometryPolygon      = "Polygon"
	geometryMultiPolygon = "MultiPolygon"
)

// geoJSONGeometry is the wire shape of a GeoJSON geometry object. The
// coordinates field is decoded lazily because its nesting depth depends on
// the geometry type.
type geoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// RingsFromGeoJSON parses a GeoJSON Polygon or MultiPolygon geometry into
// boundary rings suitable for NewZone.
//
// GeoJSON stores positions as (lng,lat); the domain works in (lat,lng), so
// every position is transposed on ingestion. A ring's duplicated closing
// vertex, mandatory in GeoJSON, is dropped by zone normalization.
//
// Interior (hole) rings are not supported: a zone is the union of its
// outer rings, so only the first ring of each polygon is kept. Holes would
// otherwise count as positive area in containment checks.
func RingsFromGeoJSON(data []byte) ([][]kernel.GeoPoint, error) {
	var geometry geoJSONGeometry
	if err := json.Unmarshal(data, &geometry); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("geojson", err)
	}

	switch geometry.Type {
	case geometryPolygon:
		var coords [][][2]float64
		if err := json.Unmarshal(geometry.Coordinates, &coords); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("geojson", err)
		}
		return transposeRings(outerRing(coords))
	case geometryMultiPolygon:
		var coords [][][][2]float64
		if err := json.Unmarshal(geometry.Coordinates, &coords); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("geojson", err)
		}
		var rings [][]kernel.GeoPoint
		for _, polygon := range coords {
			transposed, err := transposeRings(outerRing(polygon))
			if err != nil {
				return nil, err
			}
			rings = append(rings, transposed...)
		}
		return rings, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("geojson",
			fmt.Errorf("unsupported geometry type %q", geometry.Type))
	}
}

// outerRing keeps only a polygon's exterior ring, discarding holes.
func outerRing(rings [][][2]float64) [][][2]float64 {
	if len(rings) > 1 {
		return rings[:1]
	}
	return rings
}

// transposeRings converts GeoJSON (lng,lat) positions to domain (lat,lng)
// points, validating coordinate ranges along the way.
func transposeRings(rings [][][2]float64) ([][]kernel.GeoPoint, error) {
	out := make([][]kernel.GeoPoint, 0, len(rings))
	for _, ring := range rings {
		points := make([]kernel.GeoPoint, 0, len(ring))
		for _, position := range ring {
			// GeoJSON position order is (lng,lat).
			point, err := kernel.NewGeoPoint(position[1], position[0])
			if err != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause("geojson", err)
			}
			points = append(points, point)
		}
		out = append(out, points)
	}

	return out, nil
}
