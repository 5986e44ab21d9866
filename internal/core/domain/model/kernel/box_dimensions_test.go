package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoxDimensions(t *testing.T) {
	t.Run("should create valid dimensions", func(t *testing.T) {
		d, err := kernel.NewBoxDimensions(100, 200, 200)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.InEpsilon(t, 100.0, d.LengthCm(), 1e-12)
		assert.InEpsilon(t, 200.0, d.WidthCm(), 1e-12)
		assert.InEpsilon(t, 200.0, d.HeightCm(), 1e-12)
	})

	t.Run("should fail with zero length", func(t *testing.T) {
		_, err := kernel.NewBoxDimensions(0, 10, 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "length_cm")
	})

	t.Run("should fail with negative width", func(t *testing.T) {
		_, err := kernel.NewBoxDimensions(10, -5, 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "width_cm")
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := kernel.NewBoxDimensions(0, 0, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "length_cm")
		assert.Contains(t, err.Error(), "width_cm")
		assert.Contains(t, err.Error(), "height_cm")
	})
}

func TestBoxDimensions_VolumeM3(t *testing.T) {
	t.Run("volume is derived from dimensions", func(t *testing.T) {
		// 100 * 200 * 200 cm³ = 4,000,000 cm³ = 4 m³
		d, err := kernel.NewBoxDimensions(100, 200, 200)

		require.NoError(t, err)
		assert.InEpsilon(t, 4.0, d.VolumeM3(), 1e-12)
	})

	t.Run("small parcel volume", func(t *testing.T) {
		// 10 * 10 * 10 cm³ = 0.001 m³
		d, err := kernel.NewBoxDimensions(10, 10, 10)

		require.NoError(t, err)
		assert.InEpsilon(t, 0.001, d.VolumeM3(), 1e-12)
	})
}

func TestBoxDimensions_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var d kernel.BoxDimensions

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrBoxDimensionsAreNotConstructed, err)
	})
}

func TestBoxDimensions_IsEqual(t *testing.T) {
	d1, _ := kernel.NewBoxDimensions(10, 20, 30)
	d2, _ := kernel.NewBoxDimensions(10, 20, 30)
	d3, _ := kernel.NewBoxDimensions(10, 20, 31)

	equal, err := d1.IsEqual(d2)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = d1.IsEqual(d3)
	require.NoError(t, err)
	assert.False(t, equal)
}
