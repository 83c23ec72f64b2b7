package kernel_test

import (
	"testing"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoPoint(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(33.6846, -117.8265)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InDelta(t, 33.6846, point.Latitude(), 0.0001)
		assert.InDelta(t, -117.8265, point.Longitude(), 0.0001)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -181)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		require.Error(t, point.Validate())
	})
}

func TestSite(t *testing.T) {
	point, _ := kernel.NewGeoPoint(33.6846, -117.8265)

	t.Run("valid site", func(t *testing.T) {
		site, err := kernel.NewSite("12 Quarry Rd, Irvine CA", point)

		require.NoError(t, err)
		require.NoError(t, site.Validate())
		assert.Equal(t, "12 Quarry Rd, Irvine CA", site.Address())
		assert.True(t, site.Point().IsEqual(point))
	})

	t.Run("empty address is rejected", func(t *testing.T) {
		_, err := kernel.NewSite("", point)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed point is rejected", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := kernel.NewSite("somewhere", zero)

		require.Error(t, err)
	})
}
