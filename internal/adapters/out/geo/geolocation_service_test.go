package geo_test

import (
	"testing"

	"hauling/internal/adapters/out/geo"
	"hauling/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineGeolocationService(t *testing.T) {
	sitePoint, err := kernel.NewGeoPoint(33.75, -117.85)
	require.NoError(t, err)
	site, err := kernel.NewSite("100 Quarry Rd", sitePoint)
	require.NoError(t, err)

	service := geo.NewHaversineGeolocationService(500)

	t.Run("should report position at the site as inside", func(t *testing.T) {
		inside, err := service.IsInsideArea(t.Context(), site, sitePoint)
		require.NoError(t, err)
		assert.True(t, inside)
	})

	t.Run("should report nearby position as inside", func(t *testing.T) {
		// Roughly 100 meters north of the site.
		nearby, err := kernel.NewGeoPoint(33.7509, -117.85)
		require.NoError(t, err)

		inside, err := service.IsInsideArea(t.Context(), site, nearby)
		require.NoError(t, err)
		assert.True(t, inside)
	})

	t.Run("should report distant position as outside", func(t *testing.T) {
		// Roughly 11 kilometers away.
		distant, err := kernel.NewGeoPoint(33.85, -117.85)
		require.NoError(t, err)

		inside, err := service.IsInsideArea(t.Context(), site, distant)
		require.NoError(t, err)
		assert.False(t, inside)
	})

	t.Run("should reject unconstructed position", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := service.IsInsideArea(t.Context(), site, zero)
		require.Error(t, err)
	})
}
