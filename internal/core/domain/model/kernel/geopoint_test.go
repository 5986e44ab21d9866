package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create valid point within bounds", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(19.0760, 72.8777)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InEpsilon(t, 19.0760, p.Lat(), 1e-12)
		assert.InEpsilon(t, 72.8777, p.Lng(), 1e-12)
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		for _, tc := range [][2]float64{
			{-90, 0}, {90, 0}, {0, -180}, {0, 180}, {-90, -180}, {90, 180},
		} {
			p, err := kernel.NewGeoPoint(tc[0], tc[1])
			require.NoError(t, err)
			require.NoError(t, p.Validate())
		}
	})

	t.Run("should fail with latitude above range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.0001, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("should fail with latitude below range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(-90.0001, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("should fail with longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, 180.5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("should join both validation errors", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(120, -200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal points compare equal", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(10, 20)
		p2, _ := kernel.NewGeoPoint(10, 20)

		equal, err := p1.IsEqual(p2)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different points compare unequal", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(10, 20)
		p2, _ := kernel.NewGeoPoint(10, 21)

		equal, err := p1.IsEqual(p2)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("comparison with zero value fails", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(10, 20)
		var p2 kernel.GeoPoint

		_, err := p1.IsEqual(p2)

		require.Error(t, err)
	})
}

func TestGeoPoint_String(t *testing.T) {
	p, _ := kernel.NewGeoPoint(19.0760, 72.8777)
	assert.Equal(t, "GeoPoint(19.076000,72.877700)", p.String())
}
