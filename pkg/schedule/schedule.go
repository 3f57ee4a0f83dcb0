// Package schedule provides delayed Bubble Tea commands that can be cancelled
// when the view that scheduled them goes away.
package schedule

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// Group owns the delayed commands of one view. Stop cancels every command
// still waiting; cancelled commands resolve to a nil message.
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewGroup returns a group bound to parent.
func NewGroup(parent context.Context) *Group {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Group{ctx: ctx, cancel: cancel}
}

// After returns a command that waits d and then produces fn(now), unless the
// group is stopped first.
func (g *Group) After(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	ctx := g.ctx
	return func() tea.Msg {
		if ctx.Err() != nil {
			return nil
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C:
			if ctx.Err() != nil {
				return nil
			}
			return fn(now)
		}
	}
}

// Stop cancels all pending commands. It is safe to call more than once.
func (g *Group) Stop() {
	g.cancel()
}

// Stopped reports whether Stop has been called or the parent is done.
func (g *Group) Stopped() bool {
	return g.ctx.Err() != nil
}
