// Package locator converts decoded positions into the other forms operators
// use: Maidenhead grid squares, UTM, MGRS, and distance from a home station.
package locator

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

// earthRadiusKm is the mean Earth radius.
const earthRadiusKm = 6371.0

// UTM formats a position as "zone hemisphere easting northing".
func UTM(lat, lon float64) (string, error) {
	utm, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lon), 0)
	if err != nil {
		return "", fmt.Errorf("utm conversion failed: %w", err)
	}
	return fmt.Sprintf("%d%c %.0f %.0f", utm.Zone, hemisphereRune(utm.Hemisphere), utm.Easting, utm.Northing), nil
}

// MGRS formats a position as an MGRS string with the given precision (1-5).
func MGRS(lat, lon float64, precision int) (string, error) {
	mgrs, err := coordconv.DefaultMGRSConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lon), precision)
	if err != nil {
		return "", fmt.Errorf("mgrs conversion failed: %w", err)
	}
	return fmt.Sprint(mgrs), nil
}

// DistanceKm is the great-circle distance between two points.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * earthRadiusKm
}

func hemisphereRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	}
	return '?'
}
