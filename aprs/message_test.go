package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDecode(t *testing.T) {
	result, err := Decode(`ICA3D17F2>APRS,qAS,dl4mea:/074849h4821.61N\01224.49E^322/103/A=003054 !W09! id213D17F2 -039fpm +0.0rot 2.5dB 3e -0.0kHz gps1x1`)
	require.NoError(t, err)

	assert.Equal(t, NewCallsign("ICA3D17F2"), result.From)
	assert.Equal(t, NewCallsign("APRS"), result.To)
	assert.Equal(t, []Callsign{NewCallsign("qAS"), NewCallsign("dl4mea")}, result.Via)

	position, ok := result.Data.(PositionReport)
	require.True(t, ok, "unexpected payload %T", result.Data)
	assert.Equal(t, &Timestamp{Format: HHMMSS, Hour: 7, Minute: 48, Second: 49}, position.Timestamp)
	assert.InDelta(t, 48.360166, position.Latitude, coordDelta)
	assert.InDelta(t, 12.408166, position.Longitude, coordDelta)
	assert.Equal(t, "322/103/A=003054 !W09! id213D17F2 -039fpm +0.0rot 2.5dB 3e -0.0kHz gps1x1", position.Comment)
}

func TestDecodeScenarios(t *testing.T) {
	t.Run("short position packet", func(t *testing.T) {
		m, err := Decode(`ICA3D17F2>APRS,qAS,dl4mea:/074849h4821.61N\01224.49E^322/103/A=003054`)
		require.NoError(t, err)

		position, ok := m.Data.(PositionReport)
		require.True(t, ok)
		assert.Equal(t, "322/103/A=003054", position.Comment)
	})

	t.Run("ssid and path order", func(t *testing.T) {
		m, err := Decode("N0CALL-9>APDW16,WIDE1-1,WIDE2-2,qAR,K1ABC-10:!4903.50N/07201.75W-Hello/A=001000")
		require.NoError(t, err)

		assert.Equal(t, NewCallsignSSID("N0CALL", 9), m.From)
		assert.Equal(t, NewCallsign("APDW16"), m.To)
		assert.Equal(t, []Callsign{
			NewCallsignSSID("WIDE1", 1),
			NewCallsignSSID("WIDE2", 2),
			NewCallsign("qAR"),
			NewCallsignSSID("K1ABC", 10),
		}, m.Via)

		position, ok := m.Data.(PositionReport)
		require.True(t, ok)
		assert.Nil(t, position.Timestamp)
		assert.InDelta(t, 49.05833, position.Latitude, coordDelta)
		assert.InDelta(t, -72.02916, position.Longitude, coordDelta)
		assert.Equal(t, "Hello/A=001000", position.Comment)
	})

	t.Run("no path", func(t *testing.T) {
		m, err := Decode("N0CALL>APRS:>on the air")
		require.NoError(t, err)
		assert.Empty(t, m.Via)
		assert.Equal(t, StatusReport{Report: "on the air"}, m.Data)
	})

	t.Run("colon in payload", func(t *testing.T) {
		m, err := Decode("N0CALL>APRS::N1CALL   :hi:there")
		require.NoError(t, err)
		assert.Equal(t, Payload(Unknown{}), m.Data)
	})

	t.Run("unknown sigil", func(t *testing.T) {
		m, err := Decode("N0CALL>APRS,WIDE1-1:#garbage")
		require.NoError(t, err)
		assert.Equal(t, Payload(Unknown{}), m.Data)
	})

	t.Run("broken payload downgrades", func(t *testing.T) {
		m, err := Decode("N0CALL>APRS:!4903.50N/07201")
		require.NoError(t, err)
		assert.Equal(t, Payload(Unknown{}), m.Data)
	})
}

func TestDecodeHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"no colon", "N0CALL>APRS,WIDE1-1"},
		{"no gt", "N0CALL,APRS:!4903.50N/07201.75W-"},
		{"bad source ssid", "N0CALL-X>APRS:!4903.50N/07201.75W-"},
		{"bad destination ssid", "N0CALL>APRS-:!4903.50N/07201.75W-"},
		{"bad path entry", "N0CALL>APRS,WIDE1-1,WIDE2-2*:!4903.50N/07201.75W-"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidMessage)
		})
	}
}

func TestDecodeDeterministic(t *testing.T) {
	seeds := []string{
		`ICA3D17F2>APRS,qAS,dl4mea:/074849h4821.61N\01224.49E^322/103/A=003054`,
		"N0CALL-9>APDW16,WIDE1-1:!4903.50N/07201.75W-",
		"N0CALL>APRS:!/5L!!<*e7>7P[",
		"N0CALL>APRS:;LEADER   *092345z4903.50N/07201.75W>088/03x",
		"N0CALL>APRS:>status",
	}

	rapid.Check(t, func(t *rapid.T) {
		in := rapid.SampledFrom(seeds).Draw(t, "seed") + rapid.String().Draw(t, "suffix")
		if rapid.Bool().Draw(t, "random") {
			in = rapid.String().Draw(t, "packet")
		}

		m1, err1 := Decode(in)
		m2, err2 := Decode(in)
		assert.Equal(t, err1, err2)
		assert.Equal(t, m1, m2)
	})
}
