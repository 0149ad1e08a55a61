package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayloadKinds(t *testing.T) {
	object := objectPacket("LEADER   ", '*', "092345z", "4903.50N", '/', "07201.75W", '>', "088/03", "")

	tests := []struct {
		name string
		body string
		want PayloadKind
	}{
		{"position !", "!4903.50N/07201.75W-", KindPosition},
		{"position =", "=4903.50N/07201.75W-", KindPosition},
		{"position /", "/074849h4821.61N\\01224.49E^", KindPosition},
		{"position @", "@074849h4821.61N\\01224.49E^", KindPosition},
		{"object", object, KindObject},
		{"status", ">Net Control Center", KindStatusReport},
		{"empty status", ">", KindStatusReport},
		{"mic-e is not decoded", "`c1<0x1f>l!t>/>\"4^}", KindUnknown},
		{"old mic-e is not decoded", "'c1<0x1f>l!t>/>\"4^}", KindUnknown},
		{"message", ":N0CALL   :hello{1", KindUnknown},
		{"unrecognized sigil", "#garbage", KindUnknown},
		{"empty", "", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodePayload(tt.body)
			assert.Equal(t, tt.want, got.Kind())
		})
	}
}

func TestDecodePayloadDowngradesFailures(t *testing.T) {
	failing := []string{
		"!4903.50N/07201.75W",         // short
		"!49x3.50N/07201.75W-",        // bad latitude
		"/07a849h4821.61N\\01224.49E^", // bad timestamp
		";LEADER   *092345z",          // short object
	}

	for _, body := range failing {
		t.Run(body, func(t *testing.T) {
			assert.Equal(t, Payload(Unknown{}), DecodePayload(body))
		})
	}
}

func TestDecodePayloadStatusIsVerbatim(t *testing.T) {
	got := DecodePayload(">092345zNet Control Center")

	status, ok := got.(StatusReport)
	require.True(t, ok)
	assert.Nil(t, status.Timestamp)
	assert.Equal(t, "092345zNet Control Center", status.Report)
}

func TestDecodeTelemetryUnsupported(t *testing.T) {
	for _, in := range []string{"`", "`c1", "`c1<0x1f>l!t>/>\"4^}"} {
		_, err := DecodeTelemetry(in)
		assert.ErrorIs(t, err, ErrUnsupportedPositionFormat)
	}
}

func TestOrUnknown(t *testing.T) {
	pos := PositionReport{Latitude: 1, Longitude: 2}
	assert.Equal(t, Payload(pos), orUnknown(pos, nil))
	assert.Equal(t, Payload(Unknown{}), orUnknown(pos, ErrInvalidPosition))
}

func TestPayloadKindString(t *testing.T) {
	assert.Equal(t, "position", KindPosition.String())
	assert.Equal(t, "telemetry", KindTelemetry.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "status", KindStatusReport.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
