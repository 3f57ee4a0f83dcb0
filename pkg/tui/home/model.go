// Package home renders the note list: greeting header, note cards and the
// expand/complete interactions.
package home

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/notepad/pkg/app"
	"tableflip.dev/notepad/pkg/clock"
	"tableflip.dev/notepad/pkg/note"
	"tableflip.dev/notepad/pkg/store"
	"tableflip.dev/notepad/pkg/tui/help"
	"tableflip.dev/notepad/pkg/tui/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	headerHeight  = 3
	footerHeight  = 1
	cardGap       = 1
)

// Model is the note list screen.
type Model struct {
	svc *app.Service
	ctx context.Context

	cursor int
	offset int

	viewport viewport.Model
	width    int
	height   int
	vpHeight int

	// line span of each rendered card, used to keep the cursor in view
	spans []span

	help     *help.Model
	showHelp bool

	theme theme.HomeTheme
}

type span struct {
	top, bottom int
}

// New returns the home screen backed by svc.
func New(ctx context.Context, svc *app.Service, th theme.HomeTheme) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	vp := viewport.New(
		viewport.WithWidth(defaultWidth),
		viewport.WithHeight(defaultHeight-headerHeight-footerHeight),
	)
	m := &Model{
		svc:      svc,
		ctx:      ctx,
		viewport: vp,
		help:     help.New(defaultWidth, defaultHeight-headerHeight-footerHeight, th.HelpFrame),
		theme:    th,
	}
	m.SetSize(defaultWidth, defaultHeight)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update routes key presses to cursor movement and note taps.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case help.CloseMsg:
		m.showHelp = false
	case tea.KeyPressMsg:
		if m.showHelp {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.help.Open()
			m.showHelp = true
			return m, nil
		case "j", "down":
			m.MoveCursor(1)
		case "k", "up":
			m.MoveCursor(-1)
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = max(m.count()-1, 0)
		case "enter", "space":
			if id := m.CursorID(); id != "" {
				m.svc.OnNoteTap(m.ctx, id)
			}
		case "c":
			// The complete button only exists on the expanded card.
			if id := m.CursorID(); id != "" && m.svc.Snapshot(m.ctx).IsSelected(id) {
				m.svc.OnCompleteTap(m.ctx, id)
			}
		}
		m.refresh()
	}
	return m, nil
}

func (m *Model) count() int {
	return len(m.svc.Notes(m.ctx))
}

// MoveCursor moves the keyboard cursor by delta, clamped to the list.
func (m *Model) MoveCursor(delta int) {
	n := m.count()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
}

// CursorID returns the id of the note under the cursor.
func (m *Model) CursorID() string {
	notes := m.svc.Notes(m.ctx)
	if m.cursor < 0 || m.cursor >= len(notes) {
		return ""
	}
	return notes[m.cursor].ID
}

// SetSize resizes the list viewport.
func (m *Model) SetSize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	m.width = width
	m.height = height
	m.viewport.SetWidth(width)
	m.vpHeight = max(height-headerHeight-footerHeight, 1)
	m.viewport.SetHeight(m.vpHeight)
	if m.help != nil {
		m.help.SetSize(width, m.vpHeight)
	}
	m.refresh()
}

// HelpVisible reports whether the key reference is open.
func (m *Model) HelpVisible() bool { return m.showHelp }

func (m *Model) cardWidth() int {
	return max(m.width-4, 20)
}

// refresh re-renders the cards and scrolls so the cursor card is visible.
func (m *Model) refresh() {
	snap := m.svc.Snapshot(m.ctx)
	if m.cursor >= len(snap.Notes) {
		m.cursor = max(len(snap.Notes)-1, 0)
	}

	var b strings.Builder
	m.spans = m.spans[:0]
	line := 0
	for i, n := range snap.Notes {
		card := m.renderCard(n, snap, i == m.cursor)
		h := lipgloss.Height(card)
		m.spans = append(m.spans, span{top: line, bottom: line + h - 1})
		b.WriteString(card)
		line += h
		if i < len(snap.Notes)-1 {
			b.WriteString(strings.Repeat("\n", cardGap+1))
			line += cardGap
		}
	}
	m.viewport.SetContent(b.String())
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	if m.cursor >= len(m.spans) {
		m.offset = 0
		m.viewport.SetYOffset(0)
		return
	}
	height := m.vpHeight
	sp := m.spans[m.cursor]
	if sp.top < m.offset {
		m.offset = sp.top
	}
	if sp.bottom >= m.offset+height {
		m.offset = sp.bottom - height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
	m.viewport.SetYOffset(m.offset)
}

func (m *Model) renderCard(n note.Note, snap store.State, focused bool) string {
	selected := snap.IsSelected(n.ID) && !n.Completed
	style := m.theme.CardStyle(n.Color, focused, n.Completed).Width(m.cardWidth())
	if selected {
		style = style.PaddingTop(1).PaddingBottom(1)
	}
	inner := m.cardWidth() - style.GetHorizontalFrameSize()

	title := m.theme.Title.Strikethrough(n.Completed).Render(n.Title)
	badge := m.theme.Badge.Render("◷ " + m.svc.Timestamp(n))
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(badge), 1)
	header := title + strings.Repeat(" ", gap) + badge

	content := wordwrap.String(n.Content, max(inner, 10))
	rows := []string{header, m.theme.Content.Strikethrough(n.Completed).Render(content)}

	if selected {
		buttons := lipgloss.JoinHorizontal(lipgloss.Top,
			m.theme.CompleteButton.Render("✓ Completed"),
			"  ",
			m.theme.IconButton.Render("✎"),
			" ",
			m.theme.IconButton.Render("✕"),
		)
		rows = append(rows, "", lipgloss.PlaceHorizontal(inner, lipgloss.Right, buttons))
	}
	if n.Completed {
		rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Right, m.theme.Seal.Render("✔ selesai")))
	}

	card := style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	marker := "  "
	if focused {
		marker = m.theme.Cursor.Render("› ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, marker, card)
}

func (m *Model) header() string {
	greeting := m.svc.Greeting(m.ctx)
	icon := "☀"
	if m.svc.Bucket(m.ctx) == clock.Night {
		icon = "☾"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		" ",
		m.theme.Icon.Render(icon),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Greeting.Render(greeting),
			m.theme.Subtitle.Render(clock.Subtitle),
		),
	)
}

// View renders the greeting header, the card list (or empty state) and the
// key help.
func (m *Model) View() string {
	var body string
	switch {
	case m.showHelp:
		body = m.help.View()
	case m.count() == 0:
		empty := lipgloss.JoinVertical(lipgloss.Center,
			m.theme.Empty.Render("▤"),
			m.theme.Empty.Render("Belum ada catatan."),
		)
		body = lipgloss.Place(m.width, m.vpHeight, lipgloss.Center, lipgloss.Center, empty)
	default:
		body = m.viewport.View()
	}
	keys := m.theme.Help.Render("j/k move · enter expand · c complete · ? help · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), "", body, keys)
}
