// Package teaui hosts the Bubble Tea program for the notepad TUI.
package teaui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/notepad/pkg/app"
	"tableflip.dev/notepad/pkg/tui/home"
	"tableflip.dev/notepad/pkg/tui/login"
	"tableflip.dev/notepad/pkg/tui/splash"
	"tableflip.dev/notepad/pkg/tui/theme"
)

type screen int

const (
	screenSplash screen = iota
	screenLogin
	screenHome
)

func (s screen) String() string {
	switch s {
	case screenSplash:
		return "splash"
	case screenLogin:
		return "login"
	default:
		return "home"
	}
}

// Options tunes the program.
type Options struct {
	// Splash is how long the splash stays up before login.
	Splash time.Duration
	// SkipSplash starts directly on the login screen.
	SkipSplash bool
}

// Model routes messages to the active screen: splash, then login, then home.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger

	screen screen
	splash *splash.Model
	login  *login.Model
	home   *home.Model

	user          string
	width, height int
}

// New creates the root model backed by svc.
func New(svc *app.Service, opts Options) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	th := theme.Default()
	log := svc.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := &Model{
		svc:    svc,
		ctx:    ctx,
		cancel: cancel,
		log:    log,
		splash: splash.New(ctx, opts.Splash, th.Splash),
		login:  login.New(th.Login),
		home:   home.New(ctx, svc, th.Home),
	}
	if opts.SkipSplash {
		m.splash.Stop()
		m.screen = screenLogin
	}
	return m
}

// Init starts the first screen.
func (m *Model) Init() tea.Cmd {
	if m.screen == screenLogin {
		return m.login.Init()
	}
	return m.splash.Init()
}

// Update handles screen transitions and forwards everything else.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.splash.SetSize(msg.Width, msg.Height)
		m.login.SetSize(msg.Width, msg.Height)
		m.home.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.teardown()
			return m, tea.Quit
		}
	case splash.DoneMsg:
		if m.screen != screenSplash {
			return m, nil
		}
		m.splash.Stop()
		m.switchTo(screenLogin)
		return m, m.login.Init()
	case login.LoggedInMsg:
		if m.screen != screenLogin {
			return m, nil
		}
		m.user = msg.Username
		m.log.Info("login", zap.String("username", msg.Username))
		m.switchTo(screenHome)
		return m, m.home.Init()
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenSplash:
		_, cmd = m.splash.Update(msg)
	case screenLogin:
		_, cmd = m.login.Update(msg)
	case screenHome:
		_, cmd = m.home.Update(msg)
	}
	return m, cmd
}

func (m *Model) switchTo(s screen) {
	m.log.Debug("screen", zap.Stringer("from", m.screen), zap.Stringer("to", s))
	m.screen = s
}

// teardown cancels every timer still bound to the program context.
func (m *Model) teardown() {
	m.splash.Stop()
	m.cancel()
}

// View renders the active screen.
func (m *Model) View() string {
	switch m.screen {
	case screenSplash:
		return m.splash.View()
	case screenLogin:
		return m.login.View()
	default:
		return m.home.View()
	}
}

// Run launches the Bubble Tea UI on the alternate screen.
func Run(svc *app.Service, opts Options) error {
	m := New(svc, opts)
	defer m.teardown()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
