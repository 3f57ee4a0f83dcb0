// Package help renders the key reference overlay.
package help

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"
)

//go:embed help.md
var helpMarkdown string

const (
	minWidth  = 32
	minHeight = 8
)

// CloseMsg asks the owner to hide the overlay.
type CloseMsg struct{}

// Model shows the notepad key reference in a bordered, scrollable pane.
// The last inner row is a status line with the close hint and scroll position.
type Model struct {
	viewport viewport.Model
	width    int
	height   int

	frame  lipgloss.Style
	status lipgloss.Style
	err    error
}

// New returns the overlay sized to width x height, drawn inside border.
func New(width, height int, border lipgloss.Style) *Model {
	m := &Model{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		frame:    border,
		status:   lipgloss.NewStyle().Faint(true),
	}
	m.SetSize(width, height)
	return m
}

// Open scrolls back to the top. Call it each time the overlay is shown.
func (m *Model) Open() {
	m.viewport.SetYOffset(0)
}

// Update closes on ?, esc or q, jumps with g and G, and scrolls otherwise.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "?", "esc", "q":
			return m, func() tea.Msg { return CloseMsg{} }
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the reference and its status line inside the frame.
func (m *Model) View() string {
	body := m.viewport.View()
	if m.err != nil {
		body = "help unavailable: " + m.err.Error()
	}
	inner := lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine())
	return m.frame.Width(m.width).Height(m.height).Render(inner)
}

func (m *Model) statusLine() string {
	hint := "? close · g/G top/bottom"
	pos := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
	w := max(m.width-m.frame.GetHorizontalFrameSize(), 1)
	gap := max(w-lipgloss.Width(hint)-lipgloss.Width(pos), 1)
	return m.status.Render(hint + strings.Repeat(" ", gap) + pos)
}

// Err reports the last render failure.
func (m *Model) Err() error { return m.err }

// SetSize resizes the pane, never below 32x8, and re-renders the markdown to
// the new width.
func (m *Model) SetSize(width, height int) {
	width = max(width, minWidth)
	height = max(height, minHeight)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	inner := max(width-m.frame.GetHorizontalFrameSize(), 1)
	m.viewport.SetWidth(inner)
	m.viewport.SetHeight(max(height-m.frame.GetVerticalFrameSize()-1, 1))
	m.render(inner)
}

func (m *Model) render(wrap int) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(wrap-2, 10)),
	)
	if err == nil {
		var out string
		out, err = r.Render(strings.TrimSpace(helpMarkdown))
		if err == nil {
			m.viewport.SetContent(strings.Trim(out, "\n"))
			m.viewport.SetYOffset(0)
		}
	}
	m.err = err
}
