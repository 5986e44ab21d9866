package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/zone"
)

func testPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

// testZone builds a square zone spanning [latMin,latMax] x [lngMin,lngMax].
func testZone(t *testing.T, name string, latMin, lngMin, latMax, lngMax float64) *zone.Zone {
	t.Helper()
	ring := []kernel.GeoPoint{
		testPoint(t, latMin, lngMin),
		testPoint(t, latMin, lngMax),
		testPoint(t, latMax, lngMax),
		testPoint(t, latMax, lngMin),
	}
	z, err := zone.NewZone(kernel.NewUUID(), name, [][]kernel.GeoPoint{ring})
	require.NoError(t, err)
	return z
}

func testVehicle(t *testing.T, plate string, maxWeightKg, maxVolumeM3 float64, zoneID *kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), plate, maxWeightKg, maxVolumeM3, zoneID)
	require.NoError(t, err)
	return v
}

// testOrder builds a pending order with the given weight and volume whose
// pickup is at the given point. Volume is expressed through a box with a
// 100x100 cm footprint, so heightCm = volumeM3 * 100.
func testOrder(t *testing.T, weightKg, volumeM3 float64, pickup kernel.GeoPoint) *order.Order {
	t.Helper()
	dims, err := kernel.NewBoxDimensions(100, 100, volumeM3*100)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "pallet", dims, weightKg,
		pickup, "", testPoint(t, 0, 0), "",
	)
	require.NoError(t, err)
	return o
}

// assignedOrder builds an order already assigned to the given vehicle.
func assignedOrder(t *testing.T, weightKg, volumeM3 float64, pickup kernel.GeoPoint, vehicleID kernel.UUID) *order.Order {
	t.Helper()
	o := testOrder(t, weightKg, volumeM3, pickup)
	require.NoError(t, o.Assign(vehicleID))
	return o
}
