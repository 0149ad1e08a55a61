package aprs

import (
	"strconv"
)

// Base-91 digit range used by compressed positions.
const (
	base91Min = '!'
	base91Max = '{'
)

// Scale factors of the compressed position format.
const (
	compressedLatScale = 380926
	compressedLonScale = 190463
)

// ParseLatitude converts an uncompressed latitude (DDMM.mmN) to signed degrees.
func ParseLatitude(s string) (float32, error) {
	if len(s) != 8 {
		return 0, decodeError(ErrInvalidCoordinate, s)
	}

	var sign float32
	switch s[7] {
	case 'N':
		sign = 1
	case 'S':
		sign = -1
	default:
		return 0, decodeError(ErrInvalidCoordinate, s)
	}

	deg, err := parseDegreesMinutes(s[:7], 2)
	if err != nil || deg > 90 {
		return 0, decodeError(ErrInvalidCoordinate, s)
	}
	return sign * deg, nil
}

// ParseLongitude converts an uncompressed longitude (DDDMM.mmE) to signed degrees.
func ParseLongitude(s string) (float32, error) {
	if len(s) != 9 {
		return 0, decodeError(ErrInvalidCoordinate, s)
	}

	var sign float32
	switch s[8] {
	case 'E':
		sign = 1
	case 'W':
		sign = -1
	default:
		return 0, decodeError(ErrInvalidCoordinate, s)
	}

	deg, err := parseDegreesMinutes(s[:8], 3)
	if err != nil || deg > 180 {
		return 0, decodeError(ErrInvalidCoordinate, s)
	}
	return sign * deg, nil
}

// parseDegreesMinutes reads <degDigits digits>MM.mm without the hemisphere.
func parseDegreesMinutes(s string, degDigits int) (float32, error) {
	for i := 0; i < len(s); i++ {
		if i == degDigits+2 {
			if s[i] != '.' {
				return 0, strconv.ErrSyntax
			}
			continue
		}
		if !isDigit(s[i]) {
			return 0, strconv.ErrSyntax
		}
	}

	deg, err := strconv.ParseUint(s[:degDigits], 10, 16)
	if err != nil {
		return 0, err
	}
	min, err := strconv.ParseFloat(s[degDigits:], 32)
	if err != nil {
		return 0, err
	}

	return float32(deg) + float32(min)/60, nil
}

// decodeBase91 reads four base-91 digits, most significant first.
func decodeBase91(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}

	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < base91Min || c > base91Max {
			return 0, false
		}
		v = v*91 + int(c-base91Min)
	}
	return v, true
}

// parseCompressedLatitude decodes the 4-byte latitude of a compressed position.
func parseCompressedLatitude(s string) (float32, error) {
	v, ok := decodeBase91(s)
	if !ok {
		return 0, decodeError(ErrInvalidCoordinate, s)
	}

	lat := 90 - float32(v)/compressedLatScale
	if lat < -90 || lat > 90 {
		return 0, decodeError(ErrInvalidCoordinate, s)
	}
	return lat, nil
}

// parseCompressedLongitude decodes the 4-byte longitude of a compressed position.
func parseCompressedLongitude(s string) (float32, error) {
	v, ok := decodeBase91(s)
	if !ok {
		return 0, decodeError(ErrInvalidCoordinate, s)
	}

	lon := -180 + float32(v)/compressedLonScale
	if lon < -180 || lon > 180 {
		return 0, decodeError(ErrInvalidCoordinate, s)
	}
	return lon, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
