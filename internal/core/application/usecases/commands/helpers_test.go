package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/auth"
)

func adminPrincipal() auth.Principal {
	return auth.Principal{ID: kernel.NewUUID(), Role: auth.RoleAdmin}
}

func shipperPrincipal() auth.Principal {
	return auth.Principal{ID: kernel.NewUUID(), Role: auth.RoleShipper}
}

func driverPrincipal() auth.Principal {
	return auth.Principal{ID: kernel.NewUUID(), Role: auth.RoleDriver}
}

func testDimensions(t *testing.T) kernel.BoxDimensions {
	t.Helper()
	dims, err := kernel.NewBoxDimensions(100, 200, 200) // 4 m3
	require.NoError(t, err)
	return dims
}

func testGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func pendingOrder(t *testing.T, shipperID kernel.UUID, weightKg float64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), shipperID, "pallet", testDimensions(t), weightKg,
		testGeoPoint(t, 5, 5), "", testGeoPoint(t, 6, 6), "",
	)
	require.NoError(t, err)
	return o
}

func testFleetVehicle(t *testing.T, maxWeightKg, maxVolumeM3 float64) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "AB-123", maxWeightKg, maxVolumeM3, nil)
	require.NoError(t, err)
	return v
}
