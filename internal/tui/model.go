package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/meshsim/internal/preset"
	"github.com/verte-zerg/meshsim/internal/report"
	"github.com/verte-zerg/meshsim/internal/sim"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	techStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	payloadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#73D216")).Bold(true)
	stoppedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

const (
	chromeHeight = 6 // title, technical, progress, status, blank, footer
	tickInterval = 100 * time.Millisecond
)

type packetMsg struct {
	index int
	total int
	chunk string
}

type summaryMsg struct {
	res sim.Result
}

type simErrMsg struct {
	err error
}

type tickMsg time.Time

// channelSink forwards simulator output into the Bubble Tea event loop.
type channelSink struct {
	events chan tea.Msg
}

func (s *channelSink) Packet(index, total int, chunk string) error {
	s.events <- packetMsg{index: index, total: total, chunk: chunk}
	return nil
}

func (s *channelSink) Summary(res sim.Result) error {
	s.events <- summaryMsg{res: res}
	return nil
}

// Model implements the Bubble Tea playback UI. It owns the cancellation
// scope of one Simulate run; segmentation and pacing stay in the sim core.
type Model struct {
	preset preset.Preset
	plan   sim.Plan
	text   string

	ctx    context.Context
	cancel context.CancelFunc
	events chan tea.Msg

	progress    progress.Model
	received    strings.Builder
	packetsSent int
	startedAt   time.Time
	stopping    bool

	wrapped      []string
	wrappedLen   int
	wrappedWidth int

	result *sim.Result
	err    error

	width  int
	height int
}

// NewModel constructs a playback model for one preset/payload pair. The
// run's cancellation scope derives from parent, so an external interrupt
// delivered to parent stops playback the same way the quit keys do.
func NewModel(parent context.Context, p preset.Preset, text string) *Model {
	ctx, cancel := context.WithCancel(parent)
	return &Model{
		preset:   p,
		plan:     sim.Estimate(p, text),
		text:     text,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan tea.Msg),
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

// Result returns the playback outcome once the run has finished.
func (m *Model) Result() (*sim.Result, error) {
	return m.result, m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.startedAt = time.Now()
	return tea.Batch(m.runSimulation(), m.waitForEvent(), m.tick())
}

func (m *Model) runSimulation() tea.Cmd {
	return func() tea.Msg {
		sink := &channelSink{events: m.events}
		if _, err := sim.Simulate(m.ctx, &m.preset, m.text, sink, sim.WallClock{}); err != nil {
			return simErrMsg{err: err}
		}
		return nil
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width - 4
		if barWidth > 60 {
			barWidth = 60
		}
		if barWidth < 10 {
			barWidth = 10
		}
		m.progress.Width = barWidth
		return m, nil
	case tea.KeyMsg:
		if m.result != nil || m.err != nil {
			return m, tea.Quit
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.requestStop()
			return m, nil
		case tea.KeyRunes:
			if string(msg.Runes) == "q" {
				m.requestStop()
			}
			return m, nil
		default:
			return m, nil
		}
	case packetMsg:
		m.packetsSent = msg.index + 1
		m.received.WriteString(msg.chunk)
		return m, m.waitForEvent()
	case summaryMsg:
		res := msg.res
		m.result = &res
		return m, nil
	case simErrMsg:
		m.err = msg.err
		return m, nil
	case tickMsg:
		if m.result != nil || m.err != nil {
			return m, nil
		}
		return m, m.tick()
	default:
		return m, nil
	}
}

func (m *Model) requestStop() {
	if m.stopping {
		return
	}
	m.stopping = true
	m.cancel()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Transmitting via %s (%s)", m.preset.Name, report.FormatRate(m.preset.BitRate))))
	b.WriteString("\n")
	b.WriteString(techStyle.Render(fmt.Sprintf("%s · range %s", m.preset.Technical, m.preset.Range)))
	b.WriteString("\n\n")

	pct := float64(m.packetsSent) / float64(m.plan.PacketCount)
	b.WriteString(m.progress.ViewAs(pct))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")

	bodyHeight := m.height - chromeHeight - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	lines := tailLines(m.wrappedLines(), bodyHeight)
	b.WriteString(payloadStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.footerText()))
	return b.String()
}

// wrappedLines re-wraps the received text only when new text arrived or the
// width changed; ticks redraw far more often than either.
func (m *Model) wrappedLines() []string {
	width := m.contentWidth()
	if m.wrappedLen != m.received.Len() || m.wrappedWidth != width {
		m.wrapped = wrapText(m.received.String(), width)
		m.wrappedLen = m.received.Len()
		m.wrappedWidth = width
	}
	return m.wrapped
}

func (m *Model) contentWidth() int {
	width := m.width - 2
	if width < 10 {
		width = 10
	}
	return width
}

func (m *Model) renderStatus() string {
	switch {
	case m.err != nil:
		return errStyle.Render(fmt.Sprintf("Error: %v", m.err))
	case m.result != nil && m.result.Cancelled:
		return stoppedStyle.Render(fmt.Sprintf("Stopped: %d of %d packets sent in %s (estimated %s)",
			m.result.PacketsSent, m.result.PacketCount,
			report.FormatDuration(m.result.Elapsed), report.FormatDuration(m.result.Estimated)))
	case m.result != nil:
		return doneStyle.Render(fmt.Sprintf("Complete: %d packets in %s (estimated %s)",
			m.result.PacketsSent, report.FormatDuration(m.result.Elapsed), report.FormatDuration(m.result.Estimated)))
	case m.stopping:
		return stoppedStyle.Render("Stopping after the in-flight packet...")
	default:
		elapsed := time.Since(m.startedAt)
		eta := m.plan.Duration - elapsed
		if eta < 0 {
			eta = 0
		}
		return statusStyle.Render(fmt.Sprintf("Packet %d/%d · elapsed %s · ETA %s",
			m.packetsSent, m.plan.PacketCount, report.FormatDuration(elapsed), report.FormatDuration(eta)))
	}
}

func (m *Model) footerText() string {
	if m.result != nil || m.err != nil {
		return "Press any key to exit"
	}
	return "q/esc/ctrl+c: stop transmission"
}
