package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	Bridge from a parsed position view to the geodetic
 *		types downstream consumers want.
 *
 *---------------------------------------------------------------*/

import (
	"github.com/golang/geo/s2"
)

/* PosLatLng converts a position view to an s2.LatLng.  False when
 * either coordinate is absent. */
func PosLatLng(p *POS) (s2.LatLng, bool) {
	var lat, latOK = p.GetLatitude().Get()
	var lon, lonOK = p.GetLongitude().Get()

	if !latOK || !lonOK {
		return s2.LatLng{}, false
	}

	return s2.LatLngFromDegrees(lat, lon), true
}
