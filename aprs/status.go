package aprs

// StatusReport is the payload of a '>' packet.
type StatusReport struct {
	Timestamp *Timestamp
	Report    string
}

// DecodeStatusReport returns the text after the '>' verbatim.
//
// TODO: split off the optional DDHHMMz timestamp and the Maidenhead/beam
// heading forms described in chapter 16 of the APRS 1.0.1 protocol.
func DecodeStatusReport(s string) (StatusReport, error) {
	if s == "" {
		return StatusReport{}, nil
	}
	return StatusReport{Report: s[1:]}, nil
}
