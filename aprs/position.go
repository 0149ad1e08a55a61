package aprs

// PositionReport is the payload of '!', '=', '/' and '@' packets.
type PositionReport struct {
	Timestamp   *Timestamp
	Latitude    float32
	Longitude   float32
	Comment     string
	SymbolTable byte
	Symbol      byte
}

// Minimum lengths of the two position encodings, timestamp excluded.
const (
	uncompressedPositionLen = 19 // DDMM.mmN + table + DDDMM.mmW + symbol
	compressedPositionLen   = 13 // table + lat(4) + lon(4) + symbol + cs(2) + type
)

// DecodePosition decodes a position payload including its leading sigil.
// The first byte after the optional timestamp picks the encoding: a digit
// means the uncompressed DDMM.mm form, anything else the base-91 form.
func DecodePosition(s string) (PositionReport, error) {
	if s == "" {
		return PositionReport{}, decodeError(ErrInvalidPosition, s)
	}

	var ts *Timestamp
	body := s[1:]

	switch s[0] {
	case '@', '/':
		if len(body) < 7 {
			return PositionReport{}, decodeError(ErrInvalidTimestamp, body)
		}
		t, err := ParseTimestamp(body[:7])
		if err != nil {
			return PositionReport{}, err
		}
		ts = &t
		body = body[7:]
	case '!', '=':
	default:
		return PositionReport{}, decodeError(ErrInvalidPosition, s)
	}

	var (
		pos PositionReport
		err error
	)
	if body == "" || isDigit(body[0]) {
		pos, err = decodeUncompressed(body)
	} else {
		pos, err = decodeCompressed(body)
	}
	if err != nil {
		return PositionReport{}, err
	}

	pos.Timestamp = ts
	return pos, nil
}

func decodeUncompressed(s string) (PositionReport, error) {
	if len(s) < uncompressedPositionLen {
		return PositionReport{}, decodeError(ErrInvalidPosition, s)
	}

	lat, err := ParseLatitude(s[0:8])
	if err != nil {
		return PositionReport{}, err
	}
	lon, err := ParseLongitude(s[9:18])
	if err != nil {
		return PositionReport{}, err
	}

	return PositionReport{
		Latitude:    lat,
		Longitude:   lon,
		Comment:     s[19:],
		SymbolTable: s[8],
		Symbol:      s[18],
	}, nil
}

// decodeCompressed handles the base-91 form. The course/speed and
// compression type bytes (10..12) are not decoded.
func decodeCompressed(s string) (PositionReport, error) {
	if len(s) < compressedPositionLen {
		return PositionReport{}, decodeError(ErrInvalidPosition, s)
	}

	lat, err := parseCompressedLatitude(s[1:5])
	if err != nil {
		return PositionReport{}, err
	}
	lon, err := parseCompressedLongitude(s[5:9])
	if err != nil {
		return PositionReport{}, err
	}

	return PositionReport{
		Latitude:    lat,
		Longitude:   lon,
		Comment:     s[13:],
		SymbolTable: s[0],
		Symbol:      s[9],
	}, nil
}
