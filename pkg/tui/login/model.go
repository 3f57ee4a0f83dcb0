// Package login renders the placeholder sign-in form. Nothing is verified:
// any input is accepted.
package login

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/notepad/pkg/tui/theme"
)

type field int

const (
	fieldUsername field = iota
	fieldPassword
)

// LoggedInMsg is emitted once the user dismisses the welcome alert.
type LoggedInMsg struct {
	Username string
}

// Model holds the form state.
type Model struct {
	username textinput.Model
	password textinput.Model
	focus    field
	secure   bool
	alert    bool

	width  int
	height int
	theme  theme.LoginTheme
}

// New returns an empty form with the username field focused.
func New(th theme.LoginTheme) *Model {
	user := textinput.New()
	user.Placeholder = "Username or Email"
	user.Prompt = ""
	user.CharLimit = 128

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.Prompt = ""
	pass.CharLimit = 128
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	m := &Model{
		username: user,
		password: pass,
		secure:   true,
		theme:    th,
	}
	m.username.Focus()
	return m
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.username.Focus(), textinput.Blink)
}

// Update handles field navigation, the visibility toggle and submission.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		if m.alert {
			switch msg.String() {
			case "enter", "space", "o":
				m.alert = false
				name := m.Username()
				return m, func() tea.Msg { return LoggedInMsg{Username: name} }
			}
			return m, nil
		}
		switch msg.String() {
		case "tab", "down", "shift+tab", "up":
			return m, m.switchField()
		case "ctrl+r":
			m.ToggleSecure()
			return m, nil
		case "enter":
			if m.focus == fieldUsername {
				return m, m.switchField()
			}
			m.alert = true
			m.username.Blur()
			m.password.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == fieldUsername {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *Model) switchField() tea.Cmd {
	if m.focus == fieldUsername {
		m.focus = fieldPassword
		m.username.Blur()
		return m.password.Focus()
	}
	m.focus = fieldUsername
	m.password.Blur()
	return m.username.Focus()
}

// ToggleSecure shows or hides the password.
func (m *Model) ToggleSecure() {
	m.secure = !m.secure
	if m.secure {
		m.password.EchoMode = textinput.EchoPassword
	} else {
		m.password.EchoMode = textinput.EchoNormal
	}
}

// Username returns the trimmed username.
func (m *Model) Username() string {
	return strings.TrimSpace(m.username.Value())
}

func welcome(name string) string {
	if name == "" {
		return "Selamat datang!"
	}
	return fmt.Sprintf("Selamat datang, %s!", name)
}

// Alerting reports whether the welcome alert is shown.
func (m *Model) Alerting() bool {
	return m.alert
}

// SetSize records the terminal size used to center the form.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders either the form or the welcome alert.
func (m *Model) View() string {
	var body string
	if m.alert {
		body = m.theme.Alert.Render(lipgloss.JoinVertical(lipgloss.Center,
			m.theme.AlertTitle.Render("Login Berhasil"),
			welcome(m.Username()),
			"",
			m.theme.Toggle.Render("[ OK ]"),
		))
	} else {
		userStyle, passStyle := m.theme.Field, m.theme.Field
		if m.focus == fieldUsername {
			userStyle = m.theme.FocusedField
		} else {
			passStyle = m.theme.FocusedField
		}
		eye := "◉ show"
		if !m.secure {
			eye = "◎ hide"
		}
		body = lipgloss.JoinVertical(lipgloss.Center,
			theme.Gradient("Notepad", theme.BrandGradient, lipgloss.NewStyle().Bold(true)),
			"",
			userStyle.Render(m.username.View()),
			lipgloss.JoinHorizontal(lipgloss.Center,
				passStyle.Render(m.password.View()),
				" ",
				m.theme.Toggle.Render(eye),
			),
			"",
			m.theme.Button.Render("Login"),
			"",
			m.theme.Hint.Render("tab switch field · ctrl+r show/hide password · enter login"),
		)
	}
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
