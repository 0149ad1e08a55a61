package aprs

import (
	"errors"
	"fmt"
)

// Error kinds. A *DecodeError always wraps exactly one of these, so callers
// can test with errors.Is.
var (
	ErrInvalidMessage            = errors.New("invalid message")
	ErrInvalidPosition           = errors.New("invalid position")
	ErrInvalidObject             = errors.New("invalid object")
	ErrInvalidTimestamp          = errors.New("invalid timestamp")
	ErrInvalidCoordinate         = errors.New("invalid coordinate")
	ErrUnsupportedPositionFormat = errors.New("unsupported position format")
)

// DecodeError reports a decoding failure together with the text that caused it.
type DecodeError struct {
	Kind error
	Text string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind, e.Text)
}

func (e *DecodeError) Unwrap() error {
	return e.Kind
}

func decodeError(kind error, text string) *DecodeError {
	return &DecodeError{Kind: kind, Text: text}
}
