package sidebar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestAddPacket(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 6})

	for _, label := range []string{"A", "B", "C", "A", "D"} {
		m.AddPacket(label)
	}

	// 6 lines minus borders and header leaves room for 3.
	assert.Equal(t, []string{"D", "A", "C"}, m.Labels())
	assert.Contains(t, m.View(), "Last Heard")

	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 4})
	assert.Equal(t, []string{"D"}, m.Labels())
}
