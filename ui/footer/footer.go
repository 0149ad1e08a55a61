package footer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the one-line status bar under the message bar.
type Model struct {
	width      int
	mapName    string
	zoom       float64
	lastPacket string
	packets    int
	plotted    int
	done       bool
}

// New creates a footer. mapName is shown as the map source.
func New(mapName string) Model {
	if mapName == "" {
		mapName = "world"
	}
	return Model{
		width:   80,
		mapName: mapName,
		zoom:    1.0,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) SetZoom(zoom float64) {
	m.zoom = zoom
}

// SetLastPacket records the label of the newest packet and counts it.
func (m *Model) SetLastPacket(label string) {
	m.lastPacket = label
	m.packets++
}

// SetPlotted sets how many labels the map shows.
func (m *Model) SetPlotted(n int) {
	m.plotted = n
}

// SetDone marks the input as exhausted.
func (m *Model) SetDone() {
	m.done = true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Model) View() string {
	last := m.lastPacket
	if last == "" {
		last = "-"
	}

	text := fmt.Sprintf(" map: %s | zoom: %.1fx | packets: %d | plotted: %d | last: %s",
		m.mapName, m.zoom, m.packets, m.plotted, last)
	if m.done {
		text += " | input ended"
	}
	text += " | q quit"

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("236")).
		Width(m.width).
		MaxWidth(m.width)

	return style.Render(text)
}
