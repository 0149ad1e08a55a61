package locator

import (
	"fmt"
	"strings"
)

// GridSquareToLatLon converts a Maidenhead gridsquare (like "EN91" or "EN91kl")
// to the longitude (X) and latitude (Y) of its center.
func GridSquareToLatLon(grid string) (float64, float64, error) {
	grid = strings.ToUpper(grid)
	if len(grid) < 4 {
		return 0, 0, fmt.Errorf("gridsquare too short: %s", grid)
	}
	if grid[0] < 'A' || grid[0] > 'R' || grid[1] < 'A' || grid[1] > 'R' ||
		grid[2] < '0' || grid[2] > '9' || grid[3] < '0' || grid[3] > '9' {
		return 0, 0, fmt.Errorf("invalid gridsquare: %s", grid)
	}

	// Field: 20° of longitude by 10° of latitude, 'A' is -180/-90
	lon := (float64(grid[0]-'A') * 20.0) - 180.0
	lat := (float64(grid[1]-'A') * 10.0) - 90.0

	// Square: 2° by 1°
	lon += float64(grid[2]-'0') * 2.0
	lat += float64(grid[3]-'0') * 1.0

	if len(grid) < 6 {
		return lon + 1.0, lat + 0.5, nil
	}
	if grid[4] < 'A' || grid[4] > 'X' || grid[5] < 'A' || grid[5] > 'X' {
		return 0, 0, fmt.Errorf("invalid subsquare: %s", grid)
	}

	// Subsquare: 5' by 2.5', then move to its center
	lon += float64(grid[4]-'A') * (2.0 / 24.0)
	lat += float64(grid[5]-'A') * (1.0 / 24.0)
	lon += 1.0 / 24.0
	lat += 0.5 / 24.0

	return lon, lat, nil
}

// LatLonToGridSquare returns the 6-character locator containing the point.
func LatLonToGridSquare(lat, lon float64) (string, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return "", fmt.Errorf("coordinates out of range: %f, %f", lat, lon)
	}

	// The north pole and antimeridian belong to the last square.
	x := min(lon+180, 359.999999)
	y := min(lat+90, 179.999999)

	b := []byte{
		'A' + byte(x/20),
		'A' + byte(y/10),
		'0' + byte(int(x/2)%10),
		'0' + byte(int(y)%10),
		'a' + byte(int(x*12)%24),
		'a' + byte(int(y*24)%24),
	}
	return string(b), nil
}
