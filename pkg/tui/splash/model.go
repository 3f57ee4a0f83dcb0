// Package splash renders the launch screen with its pulse animation and
// auto-dismiss timer.
package splash

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/notepad/pkg/schedule"
	"tableflip.dev/notepad/pkg/tui/theme"
)

const (
	// FrameInterval is the pulse animation step.
	FrameInterval = 150 * time.Millisecond
	// taglineFrame is the frame at which the tagline fades in.
	taglineFrame = 4
)

var pulseFrames = []string{
	"·",
	"∘",
	"○",
	"◯",
	"(  ◯  )",
	"(   ◯   )",
	"(    ◯    )",
	"",
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// DoneMsg reports that the splash finished, either by timeout or key press.
type DoneMsg struct{}

type tickMsg struct {
	id int
}

type dismissMsg struct {
	id int
}

// Model is the splash screen. Call Stop when it is torn down so pending
// timers are cancelled.
type Model struct {
	id     int
	delay  time.Duration
	frame  int
	width  int
	height int
	done   bool

	timers *schedule.Group
	theme  theme.SplashTheme
}

// New returns a splash that dismisses itself after delay.
func New(ctx context.Context, delay time.Duration, th theme.SplashTheme) *Model {
	return &Model{
		id:     nextID(),
		delay:  delay,
		timers: schedule.NewGroup(ctx),
		theme:  th,
	}
}

// Init starts the pulse and the dismiss timer.
func (m *Model) Init() tea.Cmd {
	id := m.id
	return tea.Batch(
		m.tick(),
		m.timers.After(m.delay, func(time.Time) tea.Msg { return dismissMsg{id: id} }),
	)
}

func (m *Model) tick() tea.Cmd {
	id := m.id
	return m.timers.After(FrameInterval, func(time.Time) tea.Msg { return tickMsg{id: id} })
}

// Update advances the animation and reports DoneMsg once.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tickMsg:
		if msg.id != m.id || m.done {
			return m, nil
		}
		m.frame++
		return m, m.tick()
	case dismissMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m, m.finish()
	case tea.KeyPressMsg:
		return m, m.finish()
	}
	return m, nil
}

func (m *Model) finish() tea.Cmd {
	if m.done {
		return nil
	}
	m.done = true
	m.timers.Stop()
	return func() tea.Msg { return DoneMsg{} }
}

// Stop cancels the pulse and dismiss timers.
func (m *Model) Stop() {
	m.done = true
	m.timers.Stop()
}

// Done reports whether the splash has finished or been stopped.
func (m *Model) Done() bool {
	return m.done
}

// Frame returns the current animation frame.
func (m *Model) Frame() int {
	return m.frame
}

// SetSize records the terminal size used to center the content.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the pulse ring, title and tagline centered on screen.
func (m *Model) View() string {
	ringStyle := m.theme.Ring
	step := m.frame % len(pulseFrames)
	if step >= len(pulseFrames)/2 {
		ringStyle = m.theme.Fade
	}
	ring := ringStyle.Render(pulseFrames[step])

	lines := []string{
		ring,
		"",
		theme.Gradient("Notepad", theme.BrandGradient, m.theme.Title),
	}
	if m.frame >= taglineFrame {
		lines = append(lines, m.theme.Tagline.Render("Catatan Harian Anda"))
	} else {
		lines = append(lines, "")
	}
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width == 0 || m.height == 0 {
		return strings.TrimRight(body, " ")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
