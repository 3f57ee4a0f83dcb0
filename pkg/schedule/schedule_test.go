package schedule

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

type firedMsg struct{ at time.Time }

func fire(t time.Time) tea.Msg { return firedMsg{at: t} }

func TestAfterFires(t *testing.T) {
	g := NewGroup(context.Background())
	defer g.Stop()

	msg := g.After(time.Millisecond, fire)()
	if _, ok := msg.(firedMsg); !ok {
		t.Fatalf("expected firedMsg, got %T", msg)
	}
}

func TestStopCancelsPending(t *testing.T) {
	g := NewGroup(context.Background())
	cmd := g.After(time.Hour, fire)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	g.Stop()

	select {
	case msg := <-done:
		if msg != nil {
			t.Fatalf("expected nil message after stop, got %T", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("pending command did not return after stop")
	}
	if !g.Stopped() {
		t.Fatalf("expected group to report stopped")
	}
}

func TestAfterStopReturnsImmediately(t *testing.T) {
	g := NewGroup(nil)
	g.Stop()
	g.Stop()
	if msg := g.After(time.Hour, fire)(); msg != nil {
		t.Fatalf("expected nil message, got %T", msg)
	}
}

func TestParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := NewGroup(ctx)
	cancel()
	if !g.Stopped() {
		t.Fatalf("expected group stopped with parent")
	}
}
