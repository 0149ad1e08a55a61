package aprs

import (
	"github.com/charmbracelet/log"
)

// TelemetryReport is reserved for Mic-E ('`' and '\'') payloads. The decoder
// does not produce one yet.
type TelemetryReport struct {
	Latitude    float32
	Longitude   float32
	Comment     string
	SymbolTable byte
	Symbol      byte
}

// DecodeTelemetry always fails with ErrUnsupportedPositionFormat. Mic-E
// spreads the latitude over the destination callsign, which a payload-only
// decoder never sees.
func DecodeTelemetry(s string) (TelemetryReport, error) {
	body := s
	if body != "" {
		body = body[1:]
	}

	if len(body) >= 8 {
		log.Debug("mic-e payload not decoded",
			"payload", body,
			"symbol", string(body[6]),
			"symbol_table", string(body[7]))
	} else {
		log.Debug("mic-e payload not decoded", "payload", body)
	}

	return TelemetryReport{}, decodeError(ErrUnsupportedPositionFormat, body)
}
