package aprs

// PayloadKind names the variants of Payload.
type PayloadKind int

const (
	KindUnknown PayloadKind = iota
	KindPosition
	KindTelemetry
	KindObject
	KindStatusReport
)

func (k PayloadKind) String() string {
	switch k {
	case KindPosition:
		return "position"
	case KindTelemetry:
		return "telemetry"
	case KindObject:
		return "object"
	case KindStatusReport:
		return "status"
	}
	return "unknown"
}

// Payload is the decoded information field of a packet. The set of
// implementations is closed: PositionReport, TelemetryReport, ObjectReport,
// StatusReport and Unknown.
type Payload interface {
	Kind() PayloadKind
	isPayload()
}

// Unknown is returned for unrecognized sigils and for payloads whose
// decoder failed. It is a classification, not an error.
type Unknown struct{}

func (PositionReport) Kind() PayloadKind  { return KindPosition }
func (TelemetryReport) Kind() PayloadKind { return KindTelemetry }
func (ObjectReport) Kind() PayloadKind    { return KindObject }
func (StatusReport) Kind() PayloadKind    { return KindStatusReport }
func (Unknown) Kind() PayloadKind         { return KindUnknown }

func (PositionReport) isPayload()  {}
func (TelemetryReport) isPayload() {}
func (ObjectReport) isPayload()    {}
func (StatusReport) isPayload()    {}
func (Unknown) isPayload()         {}

// DecodePayload classifies the information field by its first byte and runs
// the matching decoder. It never fails: a payload that does not decode is
// reported as Unknown.
func DecodePayload(body string) Payload {
	if body == "" {
		return Unknown{}
	}

	switch body[0] {
	case '@', '/', '!', '=':
		return orUnknown(DecodePosition(body))
	case '`', '\'':
		return orUnknown(DecodeTelemetry(body))
	case ';':
		return orUnknown(DecodeObject(body))
	case '>':
		return orUnknown(DecodeStatusReport(body))
	}
	return Unknown{}
}

// orUnknown drops a decoder error and downgrades the payload to Unknown.
func orUnknown[T Payload](p T, err error) Payload {
	if err != nil {
		return Unknown{}
	}
	return p
}
