package aprs

import (
	"strconv"
	"strings"
)

// Callsign is a station identifier with an optional SSID, e.g. "N0CALL-9".
type Callsign struct {
	Call    string
	SSID    uint8
	HasSSID bool
}

// NewCallsign builds a Callsign without an SSID.
func NewCallsign(call string) Callsign {
	return Callsign{Call: call}
}

// NewCallsignSSID builds a Callsign carrying an SSID.
func NewCallsignSSID(call string, ssid uint8) Callsign {
	return Callsign{Call: call, SSID: ssid, HasSSID: true}
}

// ParseCallsign splits a CALL[-SSID] token. Everything after the first '-'
// must be a decimal SSID. An empty call is accepted, real traffic has them.
func ParseCallsign(token string) (Callsign, error) {
	idx := strings.IndexByte(token, '-')
	if idx == -1 {
		return NewCallsign(token), nil
	}

	ssid, err := strconv.ParseUint(token[idx+1:], 10, 8)
	if err != nil {
		return Callsign{}, decodeError(ErrInvalidMessage, token)
	}
	return NewCallsignSSID(token[:idx], uint8(ssid)), nil
}

// String renders the callsign back into its CALL[-SSID] form.
func (c Callsign) String() string {
	if !c.HasSSID {
		return c.Call
	}
	return c.Call + "-" + strconv.Itoa(int(c.SSID))
}
