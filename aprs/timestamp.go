package aprs

import (
	"fmt"
)

// TimestampFormat selects how the six digits of a timestamp are grouped.
type TimestampFormat int

const (
	DDHHMMUTC   TimestampFormat = iota // day/hour/minute, zulu ('z')
	DDHHMMLocal                        // day/hour/minute, local time ('/')
	HHMMSS                             // hour/minute/second, zulu ('h')
)

// Indicator returns the trailing character that selects the format.
func (f TimestampFormat) Indicator() byte {
	switch f {
	case DDHHMMUTC:
		return 'z'
	case DDHHMMLocal:
		return '/'
	case HHMMSS:
		return 'h'
	}
	return '?'
}

func (f TimestampFormat) String() string {
	switch f {
	case DDHHMMUTC:
		return "DDHHMM UTC"
	case DDHHMMLocal:
		return "DDHHMM local"
	case HHMMSS:
		return "HHMMSS"
	}
	return "unknown"
}

// Timestamp is the 7-character APRS time field. It is kept as transmitted:
// nothing is resolved against the current date or a time zone.
type Timestamp struct {
	Format TimestampFormat
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

// ParseTimestamp decodes six digits followed by a format indicator.
func ParseTimestamp(s string) (Timestamp, error) {
	if len(s) != 7 {
		return Timestamp{}, decodeError(ErrInvalidTimestamp, s)
	}

	var f [3]uint8
	for i := 0; i < 3; i++ {
		hi, lo := s[2*i], s[2*i+1]
		if !isDigit(hi) || !isDigit(lo) {
			return Timestamp{}, decodeError(ErrInvalidTimestamp, s)
		}
		f[i] = (hi-'0')*10 + (lo - '0')
	}

	switch s[6] {
	case 'z':
		return Timestamp{Format: DDHHMMUTC, Day: f[0], Hour: f[1], Minute: f[2]}, nil
	case '/':
		return Timestamp{Format: DDHHMMLocal, Day: f[0], Hour: f[1], Minute: f[2]}, nil
	case 'h':
		return Timestamp{Format: HHMMSS, Hour: f[0], Minute: f[1], Second: f[2]}, nil
	}
	return Timestamp{}, decodeError(ErrInvalidTimestamp, s)
}

// String renders the timestamp in its transmitted 7-character form.
func (t Timestamp) String() string {
	if t.Format == HHMMSS {
		return fmt.Sprintf("%02d%02d%02d%c", t.Hour, t.Minute, t.Second, t.Format.Indicator())
	}
	return fmt.Sprintf("%02d%02d%02d%c", t.Day, t.Hour, t.Minute, t.Format.Indicator())
}
