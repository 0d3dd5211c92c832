// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Thermoquad/phare/pkg/phare"
)

var controlCmd = &cobra.Command{
	Use:   "control",
	Short: "Interactive TUI for controlling a PWM node",
	Long: `Control a Phare PWM node via an interactive terminal UI.

Commands typed at the prompt are framed, addressed with --from/--to, and
sent over the connection; every frame seen on the line is appended to the
log. F5 sends STATUS without touching the prompt.

Keys:
  enter   send the typed command
  F5      send STATUS
  pgup/pgdn  scroll the log
  ctrl+c  quit

Supports both serial and WebSocket connections.`,
	RunE: runControl,
}

func init() {
	rootCmd.AddCommand(controlCmd)
}

// Messages from the reader goroutine
type frameSeenMsg struct {
	frame *phare.Frame
	at    time.Time
	stats phare.Statistics
}

type connFailedMsg struct {
	err error
}

type logLineMsg string

// controlModel is the TUI state.
type controlModel struct {
	conn     Connection
	connInfo string

	input textinput.Model
	vp    viewport.Model
	lines []string
	stats phare.Statistics

	width  int
	height int
	ready  bool
	failed error
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	recvStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func initialControlModel(conn Connection, connInfo string) controlModel {
	input := textinput.New()
	input.Placeholder = "STATUS, ON, OFF, SET_FREQ <hz>, SET_DUTY_CYCLES <pct>..."
	input.Prompt = "> "
	input.Focus()

	return controlModel{
		conn:     conn,
		connInfo: connInfo,
		input:    input,
	}
}

func (m controlModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m controlModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		logHeight := m.height - 4 // title, status, input, help
		if logHeight < 1 {
			logHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(m.width, logHeight)
			m.ready = true
		} else {
			m.vp.Width = m.width
			m.vp.Height = logHeight
		}
		m.vp.SetContent(strings.Join(m.lines, "\n"))
		m.vp.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			return m, m.sendCommand(line)

		case tea.KeyF5:
			return m, m.sendCommand("STATUS")
		}

	case frameSeenMsg:
		m.stats = msg.stats
		prefix := recvStyle.Render("recv")
		if msg.frame.Sender == hostID {
			prefix = sentStyle.Render("echo")
		}
		m.appendLine(fmt.Sprintf("[%s] %s %s",
			msg.at.Format("15:04:05.000"), prefix, phare.FormatFrame(msg.frame)))
		return m, nil

	case logLineMsg:
		m.appendLine(string(msg))
		return m, nil

	case connFailedMsg:
		m.failed = msg.err
		m.appendLine(errStyle.Render(fmt.Sprintf("connection failed: %v", msg.err)))
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *controlModel) appendLine(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > 500 {
		m.lines = m.lines[len(m.lines)-500:]
	}
	if m.ready {
		m.vp.SetContent(strings.Join(m.lines, "\n"))
		m.vp.GotoBottom()
	}
}

// sendCommand frames and writes one command line.
func (m *controlModel) sendCommand(line string) tea.Cmd {
	conn := m.conn
	return func() tea.Msg {
		frame := &phare.Frame{
			Sender:   hostID,
			Receiver: nodeID,
			Data:     []byte(line),
		}

		encoded, err := frame.Serialize()
		if err != nil {
			return logLineMsg(errStyle.Render(fmt.Sprintf("cannot send: %v", err)))
		}
		if _, err := conn.Write(encoded); err != nil {
			return connFailedMsg{err: err}
		}
		return logLineMsg(fmt.Sprintf("[%s] %s %s",
			time.Now().Format("15:04:05.000"), sentStyle.Render("sent"), phare.FormatPayload(frame.Data)))
	}
}

func (m controlModel) View() string {
	if !m.ready {
		return "starting..."
	}

	title := titleStyle.Render("Phare Control")
	status := statusStyle.Render(fmt.Sprintf("%s | to node %d as %d | frames %d, crc errors %d, resyncs %d",
		m.connInfo, nodeID, hostID,
		m.stats.ValidFrames, m.stats.CRCErrors, m.stats.Resyncs))
	help := statusStyle.Render("enter: send | F5: STATUS | pgup/pgdn: scroll | ctrl+c: quit")

	return fmt.Sprintf("%s\n%s\n%s\n%s", title, m.vp.View(), status+"\n"+m.input.View(), help)
}

func runControl(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := openConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	m := initialControlModel(conn, connInfo)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Reader goroutine: every frame on the line becomes a TUI message.
	go func() {
		fr := newFrameReader(conn)
		for {
			frame, err := fr.next()
			if err != nil {
				p.Send(connFailedMsg{err: err})
				return
			}
			p.Send(frameSeenMsg{frame: frame, at: time.Now(), stats: fr.stats()})
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
