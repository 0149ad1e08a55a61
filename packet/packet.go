package packet

import (
	"strings"

	"aprsdecode/aprs"
)

// PacketType mirrors the payload kind of the decoded message.
type PacketType int

const (
	TypePosition  PacketType = iota // A position report
	TypeObject                      // An object report
	TypeStatus                      // A status report
	TypeTelemetry                   // Mic-E, not decoded
	TypeUnknown                     // Unknown or unparsed
)

func (t PacketType) String() string {
	switch t {
	case TypePosition:
		return "position"
	case TypeObject:
		return "object"
	case TypeStatus:
		return "status"
	case TypeTelemetry:
		return "telemetry"
	}
	return "unknown"
}

// Packet holds the simplified APRS data the map and the renderers care about.
type Packet struct {
	Callsign string     // Source callsign (always present)
	Type     PacketType // Payload kind
	Path     string     // Destination and digipeaters, comma separated

	// Fields for TypePosition and TypeObject
	Lat       float64
	Lon       float64
	HasCoords bool
	Symbol    string // table + symbol, e.g. "/>"
	Comment   string

	// Fields for TypeObject
	Name   string // trimmed object name
	Killed bool

	// Fields for TypeStatus
	Status string

	// Device is the transmitting software or radio, when known.
	Device string
}

// Label is what the map plots next to the packet: the object name for
// objects, the source callsign otherwise.
func (p *Packet) Label() string {
	if p.Type == TypeObject && p.Name != "" {
		return p.Name
	}
	return p.Callsign
}

// FromMessage flattens a decoded message.
func FromMessage(m aprs.Message) *Packet {
	hops := make([]string, 0, len(m.Via)+1)
	hops = append(hops, m.To.String())
	for _, v := range m.Via {
		hops = append(hops, v.String())
	}

	pkt := &Packet{
		Callsign: m.From.String(),
		Type:     TypeUnknown,
		Path:     strings.Join(hops, ","),
	}

	switch data := m.Data.(type) {
	case aprs.PositionReport:
		pkt.Type = TypePosition
		pkt.Lat = float64(data.Latitude)
		pkt.Lon = float64(data.Longitude)
		pkt.HasCoords = true
		pkt.Symbol = string([]byte{data.SymbolTable, data.Symbol})
		pkt.Comment = data.Comment

	case aprs.ObjectReport:
		pkt.Type = TypeObject
		pkt.Lat = float64(data.Latitude)
		pkt.Lon = float64(data.Longitude)
		pkt.HasCoords = true
		pkt.Symbol = string([]byte{data.SymbolTable, data.Symbol})
		pkt.Comment = data.Comment
		pkt.Name = strings.TrimSpace(data.Name)
		pkt.Killed = data.Status.State == aprs.ObjectKilled

	case aprs.StatusReport:
		pkt.Type = TypeStatus
		pkt.Status = data.Report

	case aprs.TelemetryReport:
		pkt.Type = TypeTelemetry
	}

	return pkt
}
