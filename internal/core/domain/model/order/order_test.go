package order_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDims(t *testing.T) kernel.BoxDimensions {
	t.Helper()
	dims, err := kernel.NewBoxDimensions(100, 200, 200)
	require.NoError(t, err)
	return dims
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	pickup, _ := kernel.NewGeoPoint(19.0760, 72.8777)
	drop, _ := kernel.NewGeoPoint(18.5204, 73.8567)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "industrial valves",
		validDims(t), 600,
		pickup, "Mumbai dock 4", drop, "Pune depot",
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with derived volume", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Vehicle())
		assert.False(t, o.DriverConfirmedDelivery())
		assert.InEpsilon(t, 600.0, o.WeightKg(), 1e-12)
		assert.InEpsilon(t, 4.0, o.VolumeM3(), 1e-12) // 100*200*200 cm³
	})

	t.Run("should fail with invalid shipper", func(t *testing.T) {
		pickup, _ := kernel.NewGeoPoint(1, 1)
		drop, _ := kernel.NewGeoPoint(2, 2)
		var badShipper kernel.UUID

		_, err := order.NewOrder(kernel.NewUUID(), badShipper, "x", validDims(t), 10, pickup, "", drop, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "shipperID")
	})

	t.Run("should fail with non-positive weight", func(t *testing.T) {
		pickup, _ := kernel.NewGeoPoint(1, 1)
		drop, _ := kernel.NewGeoPoint(2, 2)

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "x", validDims(t), 0, pickup, "", drop, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "weight_kg")
	})

	t.Run("should fail with unconstructed pickup point", func(t *testing.T) {
		var pickup kernel.GeoPoint
		drop, _ := kernel.NewGeoPoint(2, 2)

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "x", validDims(t), 10, pickup, "", drop, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pickup")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		var id kernel.UUID
		var dims kernel.BoxDimensions
		pickup, _ := kernel.NewGeoPoint(1, 1)
		drop, _ := kernel.NewGeoPoint(2, 2)

		_, err := order.NewOrder(id, kernel.NewUUID(), "x", dims, -1, pickup, "", drop, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "box dimensions")
		assert.Contains(t, err.Error(), "weight_kg")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		o := &order.Order{}
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("assign moves pending order to assigned and records the vehicle", func(t *testing.T) {
		o := newPendingOrder(t)
		vehicleID := kernel.NewUUID()

		require.NoError(t, o.Assign(vehicleID))

		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Vehicle())
		assert.True(t, o.Vehicle().IsEqual(vehicleID))
		assert.True(t, o.IsActive())
	})

	t.Run("assign rejects an invalid vehicle id", func(t *testing.T) {
		o := newPendingOrder(t)
		var bad kernel.UUID

		require.Error(t, o.Assign(bad))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("assign fails on an already assigned order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))

		err := o.Assign(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("unassign returns the order to pending and clears the vehicle", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))

		require.NoError(t, o.Unassign())

		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Vehicle())
		assert.False(t, o.IsActive())
	})

	t.Run("start shipment requires assigned status", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.StartShipment(), errs.ErrInvalidStateTransition)

		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.StartShipment())
		assert.Equal(t, order.Shipped, o.Status())
		assert.True(t, o.IsActive())
	})

	t.Run("confirm delivery is terminal and sets the driver flag", func(t *testing.T) {
		o := newPendingOrder(t)
		vehicleID := kernel.NewUUID()
		require.NoError(t, o.Assign(vehicleID))
		require.NoError(t, o.StartShipment())

		require.NoError(t, o.ConfirmDelivery())

		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.DriverConfirmedDelivery())
		assert.False(t, o.IsActive())
		// delivered orders keep the vehicle reference for history
		require.NotNil(t, o.Vehicle())
		assert.True(t, o.Vehicle().IsEqual(vehicleID))

		require.ErrorIs(t, o.ConfirmDelivery(), errs.ErrInvalidStateTransition)
		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidStateTransition)
	})

	t.Run("cancel from pending", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.Vehicle())
	})

	t.Run("cancel from assigned clears the vehicle reference", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.Vehicle())
	})

	t.Run("cancel from shipped is rejected", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.StartShipment())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidStateTransition)
		assert.Equal(t, order.Shipped, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	pickup, _ := kernel.NewGeoPoint(19.0760, 72.8777)
	drop, _ := kernel.NewGeoPoint(18.5204, 73.8567)

	t.Run("restores an assigned order", func(t *testing.T) {
		vehicleID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "valves",
			validDims(t), 600, pickup, "", drop, "",
			order.Assigned, &vehicleID, false,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Vehicle())
		assert.True(t, o.Vehicle().IsEqual(vehicleID))
	})

	t.Run("rejects an assigned order without a vehicle", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "valves",
			validDims(t), 600, pickup, "", drop, "",
			order.Assigned, nil, false,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("rejects a pending order with a vehicle", func(t *testing.T) {
		vehicleID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "valves",
			validDims(t), 600, pickup, "", drop, "",
			order.Pending, &vehicleID, false,
		)

		require.Error(t, err)
	})

	t.Run("rejects an invalid status value", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "valves",
			validDims(t), 600, pickup, "", drop, "",
			order.Status(42), nil, false,
		)

		require.Error(t, err)
	})
}
