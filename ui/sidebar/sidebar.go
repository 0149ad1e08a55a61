package sidebar

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model holds the sidebar's state
type Model struct {
	width   int
	height  int
	packets []string // labels, newest first
}

// New creates a new sidebar model
func New() Model {
	return Model{
		width:   20,
		height:  24,
		packets: make([]string, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// AddPacket puts label at the top of the list. A label already listed moves
// to the top rather than showing twice.
func (m *Model) AddPacket(label string) {
	for i, l := range m.packets {
		if l == label {
			m.packets = append(m.packets[:i], m.packets[i+1:]...)
			break
		}
	}
	m.packets = append([]string{label}, m.packets...)
	m.trim()
}

// Labels returns the listed labels, newest first.
func (m Model) Labels() []string {
	return m.packets
}

// trim drops what no longer fits: the borders and the header take 3 lines.
func (m *Model) trim() {
	maxPackets := max(m.height-3, 1)
	if len(m.packets) > maxPackets {
		m.packets = m.packets[:maxPackets]
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.trim()
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

	header := lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Width(m.width - 2 - 2). // -2 border, -2 padding
		Render("Last Heard")

	// Build the content by hand so the box never grows past its height.
	var b strings.Builder
	b.WriteString(header)

	contentHeight := max((m.height-2)-1, 0)
	if contentHeight > 0 {
		b.WriteRune('\n')
		for i, label := range m.packets {
			if i >= contentHeight {
				break
			}
			b.WriteString(fmt.Sprintf("%.*s", m.width-2-2, label))
			if i < len(m.packets)-1 && i < contentHeight-1 {
				b.WriteRune('\n')
			}
		}
	}

	return style.Render(b.String())
}
