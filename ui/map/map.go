// Package mapview draws decoded positions on a character map.
package mapview

import (
	"fmt"
	"strings"

	"aprsdecode/config"
	"aprsdecode/packet"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonas-p/go-shp"
)

// Constants for Panning and Zooming
const (
	panFactor  = 0.1
	zoomFactor = 1.2
)

// worldBounds is the view when no shapefile is configured.
var worldBounds = shp.Box{MinX: -180, MinY: -90, MaxX: 180, MaxY: 90}

// Model holds the map's state
type Model struct {
	width  int
	height int

	mapPolygons    []*shp.Polygon
	originalBounds shp.Box
	viewBounds     shp.Box

	stationLon    float64
	stationLat    float64
	stationExists bool

	// plotted is keyed by Packet.Label, order keeps the draw order stable.
	plotted map[string]*packet.Packet
	order   []string
}

// loadMapData reads the polygons of a shapefile and their overall bounds.
func loadMapData(path string) ([]*shp.Polygon, shp.Box, error) {
	shapeFile, err := shp.Open(path)
	if err != nil {
		return nil, shp.Box{}, fmt.Errorf("failed to open shapefile: %w", err)
	}
	defer shapeFile.Close()

	var polygons []*shp.Polygon
	bounds := shp.Box{MinX: 1e9, MinY: 1e9, MaxX: -1e9, MaxY: -1e9}

	for shapeFile.Next() {
		_, shape := shapeFile.Shape()
		polygon, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}
		polygons = append(polygons, polygon)
		for _, p := range polygon.Points {
			bounds.MinX = min(bounds.MinX, p.X)
			bounds.MaxX = max(bounds.MaxX, p.X)
			bounds.MinY = min(bounds.MinY, p.Y)
			bounds.MaxY = max(bounds.MaxY, p.Y)
		}
	}

	if len(polygons) == 0 {
		return nil, shp.Box{}, fmt.Errorf("no polygons found in %s", path)
	}
	return polygons, bounds, nil
}

// New creates a map model. Without a shapefile the map is blank and spans
// the whole world.
func New(conf config.Config) (Model, error) {
	m := Model{
		originalBounds: worldBounds,
		viewBounds:     worldBounds,
		width:          80,
		height:         23,
		plotted:        make(map[string]*packet.Packet),
	}

	if path := conf.Map.Shapefile; path != "" {
		polygons, bounds, err := loadMapData(path)
		if err != nil {
			return Model{}, err
		}
		m.mapPolygons = polygons
		m.originalBounds = bounds
		m.viewBounds = bounds
	}

	m.stationLat, m.stationLon, m.stationExists = conf.Home()

	if m.stationExists && conf.Map.DefaultZoom > 1.0 {
		m.setCenterAndZoom(m.stationLon, m.stationLat, conf.Map.DefaultZoom)
	}
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) setCenterAndZoom(lon, lat, zoomLevel float64) {
	newWidth := (m.originalBounds.MaxX - m.originalBounds.MinX) / zoomLevel
	newHeight := (m.originalBounds.MaxY - m.originalBounds.MinY) / zoomLevel
	m.viewBounds.MinX = lon - (newWidth / 2)
	m.viewBounds.MaxX = lon + (newWidth / 2)
	m.viewBounds.MinY = lat - (newHeight / 2)
	m.viewBounds.MaxY = lat + (newHeight / 2)
}

func (m *Model) zoomByFactor(factor float64) {
	centerX := (m.viewBounds.MinX + m.viewBounds.MaxX) / 2
	centerY := (m.viewBounds.MinY + m.viewBounds.MaxY) / 2
	newWidth := (m.viewBounds.MaxX - m.viewBounds.MinX) * factor
	newHeight := (m.viewBounds.MaxY - m.viewBounds.MinY) * factor
	if newWidth > (m.originalBounds.MaxX-m.originalBounds.MinX) || newHeight > (m.originalBounds.MaxY-m.originalBounds.MinY) {
		m.viewBounds = m.originalBounds
		return
	}
	m.viewBounds.MinX = centerX - (newWidth / 2)
	m.viewBounds.MaxX = centerX + (newWidth / 2)
	m.viewBounds.MinY = centerY - (newHeight / 2)
	m.viewBounds.MaxY = centerY + (newHeight / 2)
}

func (m *Model) pan(dx, dy float64) {
	panX := (m.viewBounds.MaxX - m.viewBounds.MinX) * dx
	panY := (m.viewBounds.MaxY - m.viewBounds.MinY) * dy
	m.viewBounds.MinX += panX
	m.viewBounds.MaxX += panX
	m.viewBounds.MinY += panY
	m.viewBounds.MaxY += panY
}

func (m Model) GetZoomLevel() float64 {
	if m.viewBounds.MaxX == m.viewBounds.MinX {
		return 1.0
	}
	return (m.originalBounds.MaxX - m.originalBounds.MinX) / (m.viewBounds.MaxX - m.viewBounds.MinX)
}

// Plotted returns how many stations and objects are on the map.
func (m Model) Plotted() int {
	return len(m.order)
}

// plot keeps the latest packet per label. Killed objects are taken off.
func (m *Model) plot(pkt *packet.Packet) {
	label := pkt.Label()

	if pkt.Killed {
		if _, ok := m.plotted[label]; ok {
			delete(m.plotted, label)
			for i, l := range m.order {
				if l == label {
					m.order = append(m.order[:i], m.order[i+1:]...)
					break
				}
			}
		}
		return
	}

	if _, ok := m.plotted[label]; !ok {
		m.order = append(m.order, label)
	}
	m.plotted[label] = pkt
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case *packet.Packet:
		if msg.HasCoords {
			m.plot(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "k", "up":
			m.pan(0, panFactor)
		case "l", "down":
			m.pan(0, -panFactor)
		case "j", "left":
			m.pan(-panFactor, 0)
		case ";", "right":
			m.pan(panFactor, 0)
		case "K":
			m.zoomByFactor(1 / zoomFactor)
		case "L":
			m.zoomByFactor(zoomFactor)
		case "r":
			m.viewBounds = m.originalBounds
		}
	}
	return m, nil
}

// project converts lon/lat to terminal x/y coordinates
func (m Model) project(lon, lat float64, viewWidth, viewHeight int) (int, int) {
	spanX := m.viewBounds.MaxX - m.viewBounds.MinX
	spanY := m.viewBounds.MaxY - m.viewBounds.MinY
	if spanX == 0 {
		spanX = 1e-6
	}
	if spanY == 0 {
		spanY = 1e-6
	}
	x := (lon - m.viewBounds.MinX) / spanX
	y := (m.viewBounds.MaxY - lat) / spanY // screen y grows downwards
	return int(x * float64(viewWidth)), int(y * float64(viewHeight))
}

func (m Model) renderMapViewport(viewWidth, viewHeight int) string {
	if viewWidth <= 0 {
		viewWidth = 1
	}
	if viewHeight <= 0 {
		viewHeight = 1
	}

	grid := make([][]rune, viewHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", viewWidth))
	}
	inView := func(x, y int) bool {
		return x >= 0 && x < viewWidth && y >= 0 && y < viewHeight
	}

	// 1. Outlines
	for _, polygon := range m.mapPolygons {
		polyBounds := polygon.BBox()
		if polyBounds.MaxX < m.viewBounds.MinX || polyBounds.MinX > m.viewBounds.MaxX ||
			polyBounds.MaxY < m.viewBounds.MinY || polyBounds.MinY > m.viewBounds.MaxY {
			continue
		}
		for _, point := range polygon.Points {
			if x, y := m.project(point.X, point.Y, viewWidth, viewHeight); inView(x, y) {
				grid[y][x] = '.'
			}
		}
	}

	// 2. Home station
	if m.stationExists {
		if x, y := m.project(m.stationLon, m.stationLat, viewWidth, viewHeight); inView(x, y) {
			grid[y][x] = 'H'
		}
	}

	// 3. Stations and objects, label centred underneath
	for _, label := range m.order {
		pkt := m.plotted[label]
		x, y := m.project(pkt.Lon, pkt.Lat, viewWidth, viewHeight)
		if !inView(x, y) {
			continue
		}

		mark := '*'
		if pkt.Type == packet.TypeObject {
			mark = '+'
		}
		grid[y][x] = mark

		if y+1 < viewHeight {
			runes := []rune(label)
			start := x - len(runes)/2
			for i, r := range runes {
				if plotX := start + i; plotX >= 0 && plotX < viewWidth && grid[y+1][plotX] == ' ' {
					grid[y+1][plotX] = r
				}
			}
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteRune('\n')
	}
	return b.String()
}

func (m Model) View() string {
	mapStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(m.width - 2).
		Height(m.height - 2)

	// Width and Height above exclude the border already.
	mapViewWidth := mapStyle.GetWidth() - mapStyle.GetHorizontalPadding()
	mapViewHeight := mapStyle.GetHeight() - mapStyle.GetVerticalPadding()

	return mapStyle.Render(strings.TrimSuffix(m.renderMapViewport(mapViewWidth, mapViewHeight), "\n"))
}
