package teaui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/notepad/pkg/app"
	"tableflip.dev/notepad/pkg/clock"
	"tableflip.dev/notepad/pkg/note"
	"tableflip.dev/notepad/pkg/tui/login"
	"tableflip.dev/notepad/pkg/tui/splash"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// evening is 16:00 in UTC+7.
var evening = time.Date(2025, time.June, 30, 9, 0, 0, 0, time.UTC)

func newModel(opts Options) *Model {
	svc := app.New(note.SampleSeeds(evening), "Georgia", clock.Fixed{At: evening}, nil)
	m := New(svc, opts)
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 36})
	return m
}

func TestSplashToLoginToHome(t *testing.T) {
	m := newModel(Options{Splash: time.Hour})
	defer m.teardown()

	if m.screen != screenSplash {
		t.Fatalf("expected splash first")
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "Notepad") {
		t.Fatalf("expected splash title; view=%q", view)
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected splash to finish on key press")
	}
	m.Update(cmd())
	if m.screen != screenLogin {
		t.Fatalf("expected login after splash, got %s", m.screen)
	}
	if !m.splash.Done() {
		t.Fatalf("expected splash stopped")
	}

	for _, r := range "georgia" {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected login to complete")
	}
	m.Update(cmd())
	if m.screen != screenHome {
		t.Fatalf("expected home after login, got %s", m.screen)
	}
	if m.user != "georgia" {
		t.Fatalf("expected username recorded, got %q", m.user)
	}

	view := stripANSI(m.View())
	if !strings.Contains(view, "Selamat sore, Georgia!") {
		t.Fatalf("expected evening greeting; view=%q", view)
	}
	if !strings.Contains(view, "16:00 (UTC+7)") {
		t.Fatalf("expected fixed-zone timestamp; view=%q", view)
	}
}

func TestSkipSplash(t *testing.T) {
	m := newModel(Options{SkipSplash: true})
	defer m.teardown()
	if m.screen != screenLogin {
		t.Fatalf("expected login first")
	}
	if m.Init() == nil {
		t.Fatalf("expected login init command")
	}
	m.Update(splash.DoneMsg{})
	if m.screen != screenLogin {
		t.Fatalf("late splash message must not change screen")
	}
}

func TestLateLoginMessageIgnored(t *testing.T) {
	m := newModel(Options{Splash: time.Hour})
	defer m.teardown()
	m.Update(login.LoggedInMsg{Username: "x"})
	if m.screen != screenSplash {
		t.Fatalf("login message before login screen must be ignored")
	}
}

func TestCtrlCQuitsAndCancels(t *testing.T) {
	m := newModel(Options{Splash: time.Hour})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if m.ctx.Err() != context.Canceled {
		t.Fatalf("expected program context cancelled")
	}
	if !m.splash.Done() {
		t.Fatalf("expected splash timers stopped")
	}
}
