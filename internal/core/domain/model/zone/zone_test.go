package zone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
)

func mustPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

// squareRing builds an open square ring spanning [latMin,latMax] x [lngMin,lngMax].
func squareRing(t *testing.T, latMin, lngMin, latMax, lngMax float64) []kernel.GeoPoint {
	t.Helper()
	return []kernel.GeoPoint{
		mustPoint(t, latMin, lngMin),
		mustPoint(t, latMin, lngMax),
		mustPoint(t, latMax, lngMax),
		mustPoint(t, latMax, lngMin),
	}
}

func TestNewZone(t *testing.T) {
	t.Run("creates zone with valid ring", func(t *testing.T) {
		id := kernel.NewUUID()

		z, err := zone.NewZone(id, "Downtown", [][]kernel.GeoPoint{squareRing(t, 0, 0, 10, 10)})

		require.NoError(t, err)
		assert.True(t, z.ID().IsEqual(id))
		assert.Equal(t, "Downtown", z.Name())
		require.Len(t, z.Rings(), 1)
		assert.Len(t, z.Rings()[0], 4)
	})

	t.Run("drops duplicated closing vertex", func(t *testing.T) {
		ring := squareRing(t, 0, 0, 10, 10)
		ring = append(ring, ring[0])

		z, err := zone.NewZone(kernel.NewUUID(), "Downtown", [][]kernel.GeoPoint{ring})

		require.NoError(t, err)
		assert.Len(t, z.Rings()[0], 4)
	})

	t.Run("returns error for empty name", func(t *testing.T) {
		_, err := zone.NewZone(kernel.NewUUID(), "", [][]kernel.GeoPoint{squareRing(t, 0, 0, 10, 10)})

		require.Error(t, err)
		assert.ErrorIs(t, err, zone.ErrNameIsRequired)
	})

	t.Run("returns error for missing boundary", func(t *testing.T) {
		_, err := zone.NewZone(kernel.NewUUID(), "Downtown", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, zone.ErrBoundaryIsRequired)
	})

	t.Run("returns error for degenerate ring", func(t *testing.T) {
		ring := []kernel.GeoPoint{
			mustPoint(t, 0, 0),
			mustPoint(t, 10, 10),
		}

		_, err := zone.NewZone(kernel.NewUUID(), "Downtown", [][]kernel.GeoPoint{ring})

		require.Error(t, err)
	})

	t.Run("closed triangle collapses below minimum and is rejected", func(t *testing.T) {
		a := mustPoint(t, 0, 0)
		ring := []kernel.GeoPoint{a, mustPoint(t, 0, 5), a}

		_, err := zone.NewZone(kernel.NewUUID(), "Downtown", [][]kernel.GeoPoint{ring})

		require.Error(t, err)
	})
}

func TestZoneContains(t *testing.T) {
	newSquareZone := func(t *testing.T) *zone.Zone {
		z, err := zone.NewZone(kernel.NewUUID(), "Square",
			[][]kernel.GeoPoint{squareRing(t, 0, 0, 10, 10)})
		require.NoError(t, err)
		return z
	}

	t.Run("point strictly inside resolves as contained", func(t *testing.T) {
		z := newSquareZone(t)

		assert.True(t, z.Contains(mustPoint(t, 5, 5)))
		assert.True(t, z.Contains(mustPoint(t, 0.001, 9.999)))
	})

	t.Run("point outside resolves as not contained", func(t *testing.T) {
		z := newSquareZone(t)

		assert.False(t, z.Contains(mustPoint(t, 15, 5)))
		assert.False(t, z.Contains(mustPoint(t, 5, -1)))
		assert.False(t, z.Contains(mustPoint(t, -5, -5)))
	})

	t.Run("containment is deterministic across repeated calls", func(t *testing.T) {
		z := newSquareZone(t)
		p := mustPoint(t, 5, 5)

		first := z.Contains(p)
		for i := 0; i < 100; i++ {
			assert.Equal(t, first, z.Contains(p))
		}
	})

	t.Run("concave polygon excludes the notch", func(t *testing.T) {
		// L-shape: the square [0,10]x[0,10] minus the quadrant lat>5, lng>5.
		ring := []kernel.GeoPoint{
			mustPoint(t, 0, 0),
			mustPoint(t, 0, 10),
			mustPoint(t, 5, 10),
			mustPoint(t, 5, 5),
			mustPoint(t, 10, 5),
			mustPoint(t, 10, 0),
		}
		z, err := zone.NewZone(kernel.NewUUID(), "L", [][]kernel.GeoPoint{ring})
		require.NoError(t, err)

		assert.True(t, z.Contains(mustPoint(t, 2, 2)))
		assert.True(t, z.Contains(mustPoint(t, 8, 2)))
		assert.True(t, z.Contains(mustPoint(t, 2, 8)))
		assert.False(t, z.Contains(mustPoint(t, 8, 8)))
	})

	t.Run("multipolygon contains points in any ring", func(t *testing.T) {
		z, err := zone.NewZone(kernel.NewUUID(), "Islands", [][]kernel.GeoPoint{
			squareRing(t, 0, 0, 10, 10),
			squareRing(t, 20, 20, 30, 30),
		})
		require.NoError(t, err)

		assert.True(t, z.Contains(mustPoint(t, 5, 5)))
		assert.True(t, z.Contains(mustPoint(t, 25, 25)))
		assert.False(t, z.Contains(mustPoint(t, 15, 15)))
	})
}

func TestZoneValidate(t *testing.T) {
	t.Run("constructed zone is valid", func(t *testing.T) {
		z, err := zone.NewZone(kernel.NewUUID(), "Downtown",
			[][]kernel.GeoPoint{squareRing(t, 0, 0, 10, 10)})
		require.NoError(t, err)

		assert.NoError(t, z.Validate())
	})

	t.Run("zero value zone is invalid", func(t *testing.T) {
		var z zone.Zone

		assert.ErrorIs(t, z.Validate(), zone.ErrZoneIsNotConstructed)
	})
}
