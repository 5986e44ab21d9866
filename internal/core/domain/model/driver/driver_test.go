package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

func TestNewDriver(t *testing.T) {
	t.Run("creates driver with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.NewDriver(id, "Alex Petrov", "+380501234567")

		require.NoError(t, err)
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "Alex Petrov", d.Name())
		assert.Equal(t, "+380501234567", d.Phone())
	})

	t.Run("phone is optional", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "Alex Petrov", "")

		require.NoError(t, err)
		assert.Empty(t, d.Phone())
	})

	t.Run("returns error for empty name", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, driver.ErrNameIsRequired)
	})

	t.Run("returns error for invalid id", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.UUID{}, "Alex Petrov", "")

		require.Error(t, err)
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("restored driver equals the original", func(t *testing.T) {
		id := kernel.NewUUID()
		original, err := driver.NewDriver(id, "Alex Petrov", "+380501234567")
		require.NoError(t, err)

		restored, err := driver.RestoreDriver(id, original.Name(), original.Phone())
		require.NoError(t, err)

		assert.True(t, original.IsEqual(restored))
		assert.Equal(t, original.Name(), restored.Name())
	})
}

func TestDriverValidate(t *testing.T) {
	t.Run("constructed driver is valid", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "Alex Petrov", "")
		require.NoError(t, err)

		assert.NoError(t, d.Validate())
	})

	t.Run("zero value driver is invalid", func(t *testing.T) {
		var d driver.Driver

		assert.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}
