package aprs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const coordDelta = 1e-4

func TestParseLatitude(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"north", "4903.50N", 49.058333},
		{"south", "4903.50S", -49.058333},
		{"munich", "4821.61N", 48.360166},
		{"equator", "0000.00N", 0},
		{"pole", "9000.00N", 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLatitude(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, coordDelta)
		})
	}
}

func TestParseLongitude(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"west", "07201.75W", -72.029166},
		{"east", "01224.49E", 12.408166},
		{"greenwich", "00000.00E", 0},
		{"antimeridian", "18000.00W", -180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLongitude(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, coordDelta)
		})
	}
}

func TestParseCoordinateErrors(t *testing.T) {
	lat := []string{"", "4903.50", "4903.50E", "49O3.50N", "4903,50N", "49 3.50N", "4903.5 N", "9100.00N", "4903.50NN"}
	for _, in := range lat {
		t.Run("lat "+in, func(t *testing.T) {
			_, err := ParseLatitude(in)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}

	lon := []string{"", "07201.75N", "0720x.75W", "07201.75", "18100.00E", "7201.75W"}
	for _, in := range lon {
		t.Run("lon "+in, func(t *testing.T) {
			_, err := ParseLongitude(in)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestLatitudeMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		deg := rapid.IntRange(0, 89).Draw(t, "deg")
		lo := rapid.IntRange(0, 5998).Draw(t, "lo")
		hi := rapid.IntRange(lo+1, 5999).Draw(t, "hi")

		for _, hemi := range []byte{'N', 'S'} {
			a, err := ParseLatitude(fmt.Sprintf("%02d%02d.%02d%c", deg, lo/100, lo%100, hemi))
			require.NoError(t, err)
			b, err := ParseLatitude(fmt.Sprintf("%02d%02d.%02d%c", deg, hi/100, hi%100, hemi))
			require.NoError(t, err)

			if hemi == 'N' {
				assert.Less(t, a, b)
			} else {
				assert.Greater(t, a, b)
			}
		}
	})
}

func TestLongitudeMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		deg := rapid.IntRange(0, 179).Draw(t, "deg")
		lo := rapid.IntRange(0, 5998).Draw(t, "lo")
		hi := rapid.IntRange(lo+1, 5999).Draw(t, "hi")

		for _, hemi := range []byte{'E', 'W'} {
			a, err := ParseLongitude(fmt.Sprintf("%03d%02d.%02d%c", deg, lo/100, lo%100, hemi))
			require.NoError(t, err)
			b, err := ParseLongitude(fmt.Sprintf("%03d%02d.%02d%c", deg, hi/100, hi%100, hemi))
			require.NoError(t, err)

			if hemi == 'E' {
				assert.Less(t, a, b)
			} else {
				assert.Greater(t, a, b)
			}
		}
	})
}

func TestDecodeBase91(t *testing.T) {
	v, ok := decodeBase91("!!!!")
	require.True(t, ok)
	assert.Equal(t, 0, v)

	v, ok = decodeBase91("5L!!")
	require.True(t, ok)
	assert.Equal(t, 15427503, v)

	_, ok = decodeBase91("5L! ")
	assert.False(t, ok, "space is below the base-91 range")

	_, ok = decodeBase91("5L!|")
	assert.False(t, ok, "'|' is above the base-91 range")

	_, ok = decodeBase91("5L!")
	assert.False(t, ok)
}

func TestParseCompressedCoordinates(t *testing.T) {
	lat, err := parseCompressedLatitude("5L!!")
	require.NoError(t, err)
	assert.InDelta(t, 49.5, lat, coordDelta)

	lon, err := parseCompressedLongitude("<*e7")
	require.NoError(t, err)
	assert.InDelta(t, -72.75, lon, coordDelta)

	// "{{{{" is past the south pole.
	_, err = parseCompressedLatitude("{{{{")
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}
