package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePosition(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		timestamp *Timestamp
		lat, lon  float64
		comment   string
		table     byte
		symbol    byte
	}{
		{
			name: "no timestamp",
			in:   "!4903.50N/07201.75W-",
			lat:  49.05833, lon: -72.02916,
			table: '/', symbol: '-',
		},
		{
			name: "with comment",
			in:   "!4903.50N/07201.75W-Hello/A=001000",
			lat:  49.05833, lon: -72.02916,
			comment: "Hello/A=001000",
			table:   '/', symbol: '-',
		},
		{
			name:      "with timestamp",
			in:        `/074849h4821.61N\01224.49E^322/103/A=003054`,
			timestamp: &Timestamp{Format: HHMMSS, Hour: 7, Minute: 48, Second: 49},
			lat:       48.360166, lon: 12.408166,
			comment: "322/103/A=003054",
			table:   '\\', symbol: '^',
		},
		{
			name:      "messaging with timestamp",
			in:        "@092345z4903.50N/07201.75W>",
			timestamp: &Timestamp{Format: DDHHMMUTC, Day: 9, Hour: 23, Minute: 45},
			lat:       49.05833, lon: -72.02916,
			table: '/', symbol: '>',
		},
		{
			name: "messaging without timestamp",
			in:   "=4903.50S/07201.75E-",
			lat:  -49.05833, lon: 72.02916,
			table: '/', symbol: '-',
		},
		{
			name: "compressed",
			in:   "!/5L!!<*e7>7P[Hi",
			lat:  49.5, lon: -72.75,
			comment: "Hi",
			table:   '/', symbol: '>',
		},
		{
			name:      "compressed with timestamp",
			in:        "/092345z/5L!!<*e7>7P[",
			timestamp: &Timestamp{Format: DDHHMMUTC, Day: 9, Hour: 23, Minute: 45},
			lat:       49.5, lon: -72.75,
			table: '/', symbol: '>',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePosition(tt.in)
			require.NoError(t, err)

			assert.Equal(t, tt.timestamp, got.Timestamp)
			assert.InDelta(t, tt.lat, got.Latitude, coordDelta)
			assert.InDelta(t, tt.lon, got.Longitude, coordDelta)
			assert.Equal(t, tt.comment, got.Comment)
			assert.Equal(t, tt.table, got.SymbolTable)
			assert.Equal(t, tt.symbol, got.Symbol)
		})
	}
}

func TestDecodePositionErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind error
	}{
		{"empty", "", ErrInvalidPosition},
		{"sigil only", "!", ErrInvalidPosition},
		{"short uncompressed", "!4903.50N/07201.75W", ErrInvalidPosition},
		{"short compressed", "!/5L!!<*e7>7P", ErrInvalidPosition},
		{"bad latitude", "!49x3.50N/07201.75W-", ErrInvalidCoordinate},
		{"bad longitude", "!4903.50N/07201.75X-", ErrInvalidCoordinate},
		{"bad compressed digit", "!/5L! <*e7>7P[", ErrInvalidCoordinate},
		{"bad timestamp", "/07a849h4821.61N\\01224.49E^", ErrInvalidTimestamp},
		{"short timestamp", "@0748", ErrInvalidTimestamp},
		{"not a position sigil", ">4903.50N/07201.75W-", ErrInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePosition(tt.in)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestCompressedMatchesUncompressed(t *testing.T) {
	pairs := []struct {
		uncompressed string
		compressed   string
	}{
		{"!4930.00N/07245.00W>", "!/5L!!<*e7>7P["},
		{"!0000.00N/00000.00E>", "!/NN!!NN!!>7P["},
	}

	for _, p := range pairs {
		t.Run(p.compressed, func(t *testing.T) {
			u, err := DecodePosition(p.uncompressed)
			require.NoError(t, err)
			c, err := DecodePosition(p.compressed)
			require.NoError(t, err)

			assert.InDelta(t, u.Latitude, c.Latitude, 1e-3)
			assert.InDelta(t, u.Longitude, c.Longitude, 1e-3)
			assert.Equal(t, u.SymbolTable, c.SymbolTable)
			assert.Equal(t, u.Symbol, c.Symbol)
		})
	}
}
