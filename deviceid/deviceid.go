// Package deviceid identifies the device or software that sent a packet from
// its destination address ("tocall").
package deviceid

import (
	"cmp"
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tocalls.yaml
var defaultTable []byte

// Device describes one tocalls entry.
type Device struct {
	Tocall string `yaml:"tocall"`
	Vendor string `yaml:"vendor"`
	Model  string `yaml:"model"`
	Class  string `yaml:"class"`
	OS     string `yaml:"os"`
}

func (d Device) String() string {
	if d.Vendor == "" {
		return d.Model
	}
	return d.Vendor + " " + d.Model
}

type table struct {
	Tocalls []Device `yaml:"tocalls"`
}

// Registry maps tocall prefixes to devices.
type Registry struct {
	devices []Device // sorted by decreasing prefix length
}

// Load parses a tocalls YAML document.
func Load(data []byte) (*Registry, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tocalls: %w", err)
	}

	r := &Registry{devices: make([]Device, 0, len(t.Tocalls))}
	for _, d := range t.Tocalls {
		// Remove trailing wildcard characters
		d.Tocall = strings.TrimRight(d.Tocall, "?*n")
		if d.Tocall == "" {
			continue
		}
		r.devices = append(r.devices, d)
	}

	// Longest first, so the search goes from most to least specific.
	slices.SortStableFunc(r.devices, func(a, b Device) int {
		return cmp.Compare(len(b.Tocall), len(a.Tocall))
	})
	return r, nil
}

// Default returns the registry built from the embedded table.
func Default() *Registry {
	r, err := Load(defaultTable)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup finds the device for a destination callsign. The SSID, if any,
// must already be stripped.
func (r *Registry) Lookup(tocall string) (Device, bool) {
	tocall = strings.ToUpper(tocall)
	for _, d := range r.devices {
		if strings.HasPrefix(tocall, d.Tocall) {
			return d, true
		}
	}
	return Device{}, false
}

// Len reports the number of entries.
func (r *Registry) Len() int {
	return len(r.devices)
}
