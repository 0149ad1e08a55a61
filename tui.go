package main

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"aprsdecode/config"
	"aprsdecode/deviceid"
	"aprsdecode/feed"
	"aprsdecode/packet"
	"aprsdecode/ui/footer"
	"aprsdecode/ui/header"
	mapview "aprsdecode/ui/map"
	"aprsdecode/ui/msgbar"
	"aprsdecode/ui/sidebar"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// PacketClient is anything that delivers decoded packets to the UI.
type PacketClient interface {
	Start(chan<- *packet.Packet)
	Close()
}

// Layout
const (
	sidebarWidth = 20
	msgbarHeight = 7
)

// inputDoneMsg is sent once the packet channel is closed.
type inputDoneMsg struct{}

// model holds the application's state
type model struct {
	width  int
	height int

	headerModel  header.Model
	mapModel     mapview.Model
	msgbarModel  msgbar.Model
	footerModel  footer.Model
	sidebarModel sidebar.Model

	packetClient PacketClient
	packetChan   chan *packet.Packet
	logger       *log.Logger

	err error
}

// initialModel creates the starting model
func initialModel(conf config.Config, client PacketClient, pChan chan *packet.Packet, logger *log.Logger) model {
	m := model{
		width:        80,
		height:       60,
		packetClient: client,
		packetChan:   pChan,
		logger:       logger,
	}

	mapMod, err := mapview.New(conf)
	if err != nil {
		m.err = err
		return m
	}

	title := "aprsdecode"
	if conf.Station.Callsign != "" {
		title += " - " + conf.Station.Callsign
	}
	if path := conf.Input.Path; path != "" && path != "-" {
		title += " - " + filepath.Base(path)
	}

	mapName := ""
	if conf.Map.Shapefile != "" {
		mapName = filepath.Base(conf.Map.Shapefile)
	}

	m.headerModel = header.New(title)
	m.mapModel = mapMod
	m.msgbarModel = msgbar.New()
	m.footerModel = footer.New(mapName)
	m.sidebarModel = sidebar.New()
	m.footerModel.SetZoom(mapMod.GetZoomLevel())
	return m
}

// listenForPackets is a tea.Cmd that waits for the next packet
func (m model) listenForPackets() tea.Cmd {
	return func() tea.Msg {
		pkt, ok := <-m.packetChan
		if !ok {
			return inputDoneMsg{}
		}
		return pkt
	}
}

func (m model) Init() tea.Cmd {
	if m.err != nil {
		return nil
	}
	go m.packetClient.Start(m.packetChan)
	return m.listenForPackets()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Quit
		}
		return m, nil
	}

	var (
		headerCmd  tea.Cmd
		mapCmd     tea.Cmd
		msgbarCmd  tea.Cmd
		footerCmd  tea.Cmd
		sidebarCmd tea.Cmd
		cmds       []tea.Cmd
	)

	switch msg := msg.(type) {
	case *packet.Packet:
		m.mapModel, mapCmd = m.mapModel.Update(msg)
		m.msgbarModel, msgbarCmd = m.msgbarModel.Update(msg)
		m.sidebarModel.AddPacket(msg.Label())
		m.footerModel.SetLastPacket(msg.Label())
		m.footerModel.SetPlotted(m.mapModel.Plotted())
		cmds = append(cmds, mapCmd, msgbarCmd, m.listenForPackets())

	case inputDoneMsg:
		m.logger.Info("input ended")
		m.footerModel.SetDone()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 1
		footerHeight := 1
		mainHeight := max(m.height-headerHeight-msgbarHeight-footerHeight, 1)
		mapWidth := m.width - sidebarWidth

		m.headerModel, headerCmd = m.headerModel.Update(tea.WindowSizeMsg{Width: m.width, Height: headerHeight})
		m.sidebarModel, sidebarCmd = m.sidebarModel.Update(tea.WindowSizeMsg{Width: sidebarWidth, Height: mainHeight})
		m.mapModel, mapCmd = m.mapModel.Update(tea.WindowSizeMsg{Width: mapWidth, Height: mainHeight})
		m.msgbarModel, msgbarCmd = m.msgbarModel.Update(tea.WindowSizeMsg{Width: m.width, Height: msgbarHeight})
		m.footerModel, footerCmd = m.footerModel.Update(tea.WindowSizeMsg{Width: m.width, Height: footerHeight})

		cmds = append(cmds, headerCmd, sidebarCmd, mapCmd, msgbarCmd, footerCmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		default:
			m.mapModel, mapCmd = m.mapModel.Update(msg)
			cmds = append(cmds, mapCmd)
			m.footerModel.SetZoom(m.mapModel.GetZoomLevel())
		}
	}

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	if m.err != nil {
		errorStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Border(lipgloss.DoubleBorder(), true).
			BorderForeground(lipgloss.Color("9")).
			Padding(1).
			Align(lipgloss.Center, lipgloss.Center)
		return errorStyle.Render(
			"Error:\n\n" + m.err.Error() +
				"\n\nPress any key to quit.",
		)
	}

	middleStack := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebarModel.View(),
		m.mapModel.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerModel.View(),
		middleStack,
		m.msgbarModel.View(),
		m.footerModel.View(),
	)
}

// runTUI shows packets from src on the map until the user quits.
func runTUI(ctx context.Context, conf config.Config, src io.ReadCloser, logger *log.Logger, devices *deviceid.Registry) error {
	client := feed.NewClient(ctx, src, logger, devices)
	defer client.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if conf.Input.Path == "" || conf.Input.Path == "-" {
		// stdin carries packets, keys come from the terminal.
		opts = append(opts, tea.WithInputTTY())
	}

	p := tea.NewProgram(initialModel(conf, client, make(chan *packet.Packet), logger), opts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	stats := client.Stats()
	logger.Info("input done", "lines", stats.Lines, "decoded", stats.Decoded, "failed", stats.Failed)
	return nil
}
