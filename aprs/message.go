// Package aprs decodes APRS packets in TNC2 text form,
// e.g. "N0CALL-9>APRS,WIDE1-1:!4903.50N/07201.75W-Hello".
package aprs

import (
	"strings"
)

// Message is one decoded packet.
type Message struct {
	From Callsign
	To   Callsign
	Via  []Callsign // digipeater path, in transmitted order
	Data Payload
}

// Decode parses a full packet. Header problems (missing ':' or '>', bad
// callsigns) are returned as *DecodeError; payload problems are not errors,
// they leave Data set to Unknown.
func Decode(s string) (Message, error) {
	// Header and information field: CALL>DEST,PATH:payload
	separatorIndex := strings.IndexByte(s, ':')
	if separatorIndex == -1 {
		return Message{}, decodeError(ErrInvalidMessage, s)
	}
	header, body := s[:separatorIndex], s[separatorIndex+1:]

	callEndIndex := strings.IndexByte(header, '>')
	if callEndIndex == -1 {
		return Message{}, decodeError(ErrInvalidMessage, s)
	}

	from, err := ParseCallsign(header[:callEndIndex])
	if err != nil {
		return Message{}, err
	}

	// strings.Split always yields at least one element, so the destination
	// is present even if empty.
	toAndVia := strings.Split(header[callEndIndex+1:], ",")
	to, err := ParseCallsign(toAndVia[0])
	if err != nil {
		return Message{}, err
	}

	via := make([]Callsign, 0, len(toAndVia)-1)
	for _, hop := range toAndVia[1:] {
		c, err := ParseCallsign(hop)
		if err != nil {
			return Message{}, err
		}
		via = append(via, c)
	}

	return Message{
		From: from,
		To:   to,
		Via:  via,
		Data: DecodePayload(body),
	}, nil
}
