package aprs

// ObjectState is the live/killed marker of an object report.
type ObjectState int

const (
	ObjectLive ObjectState = iota
	ObjectKilled
	ObjectInvalid
)

// ObjectStatus holds the decoded marker. Raw keeps the transmitted byte so an
// ObjectInvalid status can still be shown.
type ObjectStatus struct {
	State ObjectState
	Raw   byte
}

func (s ObjectStatus) String() string {
	switch s.State {
	case ObjectLive:
		return "live"
	case ObjectKilled:
		return "killed"
	}
	return "invalid(" + string(rune(s.Raw)) + ")"
}

// ObjectReport is the payload of a ';' packet.
type ObjectReport struct {
	Name        string // 9 bytes as transmitted, padding included
	Status      ObjectStatus
	Timestamp   Timestamp
	Latitude    float32
	Longitude   float32
	Comment     string
	SymbolTable byte
	Symbol      byte
}

// minObjectLen counts bytes after the ';'.
const minObjectLen = 42

// DecodeObject decodes a ';' payload. Coordinate and timestamp errors are
// returned as is; an unknown status marker is not an error. Layout after
// the ';':
//
//	0..9    name
//	9       status marker
//	10..17  timestamp
//	17..25  latitude
//	25      symbol table
//	26..35  longitude
//	35      symbol
//	42..    comment
func DecodeObject(s string) (ObjectReport, error) {
	if len(s) < 1 || len(s)-1 < minObjectLen {
		return ObjectReport{}, decodeError(ErrInvalidObject, s)
	}
	body := s[1:]

	ts, err := ParseTimestamp(body[10:17])
	if err != nil {
		return ObjectReport{}, err
	}
	lat, err := ParseLatitude(body[17:25])
	if err != nil {
		return ObjectReport{}, err
	}
	lon, err := ParseLongitude(body[26:35])
	if err != nil {
		return ObjectReport{}, err
	}

	return ObjectReport{
		Name:        body[:9],
		Status:      parseObjectStatus(body[9]),
		Timestamp:   ts,
		Latitude:    lat,
		Longitude:   lon,
		Comment:     body[42:],
		SymbolTable: body[25],
		Symbol:      body[35],
	}, nil
}

func parseObjectStatus(c byte) ObjectStatus {
	switch c {
	case '*':
		return ObjectStatus{State: ObjectLive, Raw: c}
	case '_':
		return ObjectStatus{State: ObjectKilled, Raw: c}
	}
	return ObjectStatus{State: ObjectInvalid, Raw: c}
}
