package model

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoPoint_RoundTrip(t *testing.T) {
	point := GeoPoint(orb.Point{-68.1193, -16.4897})

	value, err := point.Value()
	require.NoError(t, err)

	var scanned GeoPoint
	require.NoError(t, scanned.Scan(value))

	assert.InDelta(t, point[0], scanned[0], 1e-9)
	assert.InDelta(t, point[1], scanned[1], 1e-9)
}

func TestGeoPoint_ScanNull(t *testing.T) {
	scanned := GeoPoint{1, 2}

	require.NoError(t, scanned.Scan(nil))
	assert.Equal(t, GeoPoint{}, scanned)
}

func TestGeoPoint_ScanGarbage(t *testing.T) {
	var scanned GeoPoint

	assert.Error(t, scanned.Scan([]byte{0x01, 0x02}))
}
