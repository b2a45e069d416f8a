package globe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* Scenario: a GLL line viewed as a position. */
func TestPositionFromGLL(t *testing.T) {
	var pos, err = Position("$GNGLL,4916.45,N,12311.12,W,225444.00,A,A*6C\r\n")
	require.NoError(t, err)

	var lat, latOK = pos.GetLatitude().Get()
	require.True(t, latOK)
	assert.InDelta(t, 49.2741666, lat, 1e-6)

	var lon, lonOK = pos.GetLongitude().Get()
	require.True(t, lonOK)
	assert.InDelta(t, -123.1853333, lon, 1e-6)
}

/* Scenario: the same line demanded as a GGA is the wrong kind. */
func TestWrongKind(t *testing.T) {
	var _, err = As[GGA]("$GNGLL,4916.45,N,12311.12,W,225444.00,A,A*6C")
	assert.ErrorIs(t, err, ErrWrongKind)
}

/* Scenario: a corrupted checksum never reaches the sentence layer. */
func TestCorruptChecksumIsRejected(t *testing.T) {
	var line = "$GPRMC,091144.00,A,4724.114,N,01123.456,E,0.55,123.4,160325,,,A,V*99"

	var _, err = Position(line)
	assert.ErrorIs(t, err, ErrBadChecksum)

	_, err = As[RMC](line)
	assert.ErrorIs(t, err, ErrBadChecksum)

	// With the right checksum the same line is fine.
	_, err = As[RMC]("$GPRMC,091144.00,A,4724.114,N,01123.456,E,0.55,123.4,160325,,,A,V*1D")
	assert.NoError(t, err)
}

/* The position view exists for exactly {DTM, GGA, GLL, GNS, RMC}. */
func TestPositionPresenceSet(t *testing.T) {
	var positionKinds = map[string]bool{
		"DTM": true, "GGA": true, "GLL": true, "GNS": true, "RMC": true,
	}

	for formatter, line := range canonical {
		var _, err = Position(line)

		if positionKinds[formatter] {
			assert.NoError(t, err, formatter)
		} else {
			assert.ErrorIs(t, err, ErrWrongKind, formatter)
		}
	}
}

/* The time view exists for exactly {GBS, GGA, GLL, GNS, GRS, GST, RLM,
 * RMC, ZDA}. */
func TestTimePresenceSet(t *testing.T) {
	var timeKinds = map[string]bool{
		"GBS": true, "GGA": true, "GLL": true, "GNS": true, "GRS": true,
		"GST": true, "RLM": true, "RMC": true, "ZDA": true,
	}

	for formatter, line := range canonical {
		var view, err = Time(line)

		if timeKinds[formatter] {
			require.NoError(t, err, formatter)

			var _, ok = view.GetTime().Get()
			assert.True(t, ok, formatter)
		} else {
			assert.ErrorIs(t, err, ErrWrongKind, formatter)
		}
	}
}

/* The 3D position and altitude views exist for exactly {DTM, GGA, GNS}. */
func TestPosition3DPresenceSet(t *testing.T) {
	var kinds = map[string]bool{"DTM": true, "GGA": true, "GNS": true}

	for formatter, line := range canonical {
		var _, err = Position3D(line)
		var _, altErr = Altitude(line)

		if kinds[formatter] {
			assert.NoError(t, err, formatter)
			assert.NoError(t, altErr, formatter)
		} else {
			assert.ErrorIs(t, err, ErrWrongKind, formatter)
			assert.ErrorIs(t, altErr, ErrWrongKind, formatter)
		}
	}
}

/* The poll view exists for exactly the five GxQ kinds. */
func TestPollPresenceSet(t *testing.T) {
	var kinds = map[string]bool{
		"GAQ": true, "GBQ": true, "GLQ": true, "GNQ": true, "GPQ": true,
	}

	for formatter, line := range canonical {
		var _, err = Poll(line)

		if kinds[formatter] {
			assert.NoError(t, err, formatter)
		} else {
			assert.ErrorIs(t, err, ErrWrongKind, formatter)
		}
	}
}

/* A group view is a copy: its fields match the concrete sentence it
 * was projected from. */
func TestGroupProjectionCopies(t *testing.T) {
	var gga, err = As[GGA](canonical["GGA"])
	require.NoError(t, err)

	var p3d, viewErr = Position3D(canonical["GGA"])
	require.NoError(t, viewErr)

	assert.Equal(t, gga.GetLatitude(), p3d.GetLatitude())
	assert.Equal(t, gga.GetLongitude(), p3d.GetLongitude())
	assert.Equal(t, gga.GetAltitude(), p3d.GetAltitude())
}

func TestParseReturnsConcreteKind(t *testing.T) {
	var s, err = Parse(canonical["GGA"])
	require.NoError(t, err)

	var gga, ok = s.(*GGA)
	require.True(t, ok)
	assert.Equal(t, GPS, gga.GetConstellation())
	assert.Equal(t, "$GPGGA", gga.GetHeader())
	assert.Equal(t, byte(0x5B), gga.GetChecksum())
}

func TestParseUnknownFormatter(t *testing.T) {
	// Right shape, but no such sentence kind.
	var _, err = Parse("$GPABC,1,2,3*4B")
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestBoundsCheckedBeforeParse(t *testing.T) {
	// A GLL with too few fields must fail on bounds, not panic in the
	// field parser.
	var _, err = As[GLL]("$GNGLL,4916.45,N*25")
	assert.ErrorIs(t, err, ErrBounds)
}
