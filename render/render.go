// Package render writes decoded packets for humans (styled text) or for
// other programs (JSON Lines).
package render

import (
	"aprsdecode/feed"
)

// Renderer writes one result.
type Renderer interface {
	Render(res feed.Result) error
}

// Home is the receiving station, used for distances. The zero value means
// no home is configured.
type Home struct {
	Lat, Lon float64
	Set      bool
}
