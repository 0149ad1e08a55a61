package msgbar

import (
	"fmt"
	"strings"

	"aprsdecode/packet"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	barHeight = 7 // Total height of the component (including border)
)

// Model holds the message bar's state
type Model struct {
	width    int
	height   int
	messages []string // newest first
}

// New creates a new message bar model
func New() Model {
	return Model{
		width:    80,
		height:   barHeight,
		messages: make([]string, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Line is the one-line summary the bar shows for a packet, e.g.
// "N0CALL [status] QRV 145.500". Packets with nothing to say give "".
func Line(pkt *packet.Packet) string {
	var text string
	switch pkt.Type {
	case packet.TypeStatus:
		text = pkt.Status
	case packet.TypeObject:
		state := "live"
		if pkt.Killed {
			state = "killed"
		}
		text = strings.TrimSpace(fmt.Sprintf("%s (%s) %s", pkt.Name, state, pkt.Comment))
	default:
		text = pkt.Comment
	}
	if text == "" {
		return ""
	}
	return fmt.Sprintf("%s [%s] %s", pkt.Callsign, pkt.Type, text)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = barHeight

	case *packet.Packet:
		line := Line(msg)
		if line == "" {
			return m, nil
		}

		m.messages = append([]string{line}, m.messages...)

		// barHeight - 2 for the borders
		maxMessages := max(barHeight-2, 1)
		if len(m.messages) > maxMessages {
			m.messages = m.messages[:maxMessages]
		}
	}
	return m, nil
}

func (m Model) View() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(m.width - 2).   // -2 for border
		Height(m.height - 2). // -2 for border
		Padding(0, 1)

	var b strings.Builder

	contentWidth := max(m.width-2-2, 0) // -border, -padding
	numMessages := max(m.height-2, 0)

	for i := 0; i < numMessages; i++ {
		if i < len(m.messages) {
			// oldest first, the order they arrived in
			msg := m.messages[len(m.messages)-1-i]
			if len(msg) > contentWidth {
				msg = msg[:contentWidth]
			}
			b.WriteString(msg)
		}
		if i < numMessages-1 {
			b.WriteRune('\n')
		}
	}

	return style.Render(b.String())
}
