package render

import (
	"fmt"
	"io"
	"strings"

	"aprsdecode/aprs"
	"aprsdecode/feed"
	"aprsdecode/locator"

	"github.com/charmbracelet/lipgloss"
	"github.com/lestrrat-go/strftime"
)

var (
	stampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	callStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	kindStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(9)
)

// Text renders a short multi-line block per packet.
type Text struct {
	w     io.Writer
	stamp *strftime.Strftime
	home  Home
}

// NewText creates a text renderer; pattern is a strftime format for the
// receive time.
func NewText(w io.Writer, pattern string, home Home) (*Text, error) {
	stamp, err := strftime.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("timestamp format: %w", err)
	}
	return &Text{w: w, stamp: stamp, home: home}, nil
}

func (t *Text) Render(res feed.Result) error {
	var b strings.Builder

	b.WriteString(stampStyle.Render(t.stamp.FormatString(res.Received)))
	b.WriteByte(' ')

	if res.Err != nil {
		b.WriteString(errStyle.Render("error"))
		fmt.Fprintf(&b, " %v\n", res.Err)
		_, err := io.WriteString(t.w, b.String())
		return err
	}

	m := res.Message
	b.WriteString(callStyle.Render(m.From.String()))
	b.WriteString(" > ")
	b.WriteString(m.To.String())
	if len(m.Via) > 0 {
		hops := make([]string, len(m.Via))
		for i, v := range m.Via {
			hops[i] = v.String()
		}
		b.WriteString(" via ")
		b.WriteString(strings.Join(hops, ","))
	}
	b.WriteString(" ")
	b.WriteString(kindStyle.Render("[" + m.Data.Kind().String() + "]"))
	b.WriteByte('\n')

	switch data := m.Data.(type) {
	case aprs.PositionReport:
		if data.Timestamp != nil {
			t.field(&b, "time", data.Timestamp.String()+" ("+data.Timestamp.Format.String()+")")
		}
		t.position(&b, data.Latitude, data.Longitude, data.SymbolTable, data.Symbol)
		t.field(&b, "comment", data.Comment)

	case aprs.ObjectReport:
		t.field(&b, "object", strings.TrimSpace(data.Name)+" ("+data.Status.String()+")")
		t.field(&b, "time", data.Timestamp.String()+" ("+data.Timestamp.Format.String()+")")
		t.position(&b, data.Latitude, data.Longitude, data.SymbolTable, data.Symbol)
		t.field(&b, "comment", data.Comment)

	case aprs.StatusReport:
		t.field(&b, "status", data.Report)

	case aprs.Unknown:
		if i := strings.IndexByte(res.Line, ':'); i != -1 {
			t.field(&b, "payload", res.Line[i+1:])
		}
	}

	if res.Packet != nil {
		t.field(&b, "device", res.Packet.Device)
	}

	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *Text) position(b *strings.Builder, lat32, lon32 float32, table, symbol byte) {
	lat, lon := float64(lat32), float64(lon32)

	t.field(b, "position", fmt.Sprintf("%.5f %.5f  symbol %c%c", lat, lon, table, symbol))

	var extra []string
	if grid, err := locator.LatLonToGridSquare(lat, lon); err == nil {
		extra = append(extra, grid)
	}
	if utm, err := locator.UTM(lat, lon); err == nil {
		extra = append(extra, "UTM "+utm)
	}
	if mgrs, err := locator.MGRS(lat, lon, 4); err == nil {
		extra = append(extra, "MGRS "+mgrs)
	}
	if t.home.Set {
		extra = append(extra, fmt.Sprintf("%.1f km", locator.DistanceKm(t.home.Lat, t.home.Lon, lat, lon)))
	}
	t.field(b, "locator", strings.Join(extra, "  "))
}

// field writes an indented "label value" line; empty values are skipped.
func (t *Text) field(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteByte('\n')
}
