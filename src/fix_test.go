package globe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosLatLng(t *testing.T) {
	var pos, err = Position("$GNGLL,4916.45,N,12311.12,W,225444.00,A,A*6C")
	require.NoError(t, err)

	var latlng, ok = PosLatLng(pos)
	require.True(t, ok)

	assert.InDelta(t, 49.2741666, latlng.Lat.Degrees(), 1e-6)
	assert.InDelta(t, -123.1853333, latlng.Lng.Degrees(), 1e-6)
	assert.True(t, latlng.IsValid())
}

func TestPosLatLngAbsent(t *testing.T) {
	var empty POS

	var _, ok = PosLatLng(&empty)
	assert.False(t, ok)
}
