// Package app exposes the note list to the presentation layer.
package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/notepad/pkg/clock"
	"tableflip.dev/notepad/pkg/note"
	"tableflip.dev/notepad/pkg/store"
)

// Service is the call surface the UI and CLI share. It wraps the note store
// and the clock so every caller derives greetings and timestamps the same way.
type Service struct {
	Store  *store.Store
	Clock  clock.Clock
	Name   string
	Logger *zap.Logger
}

// New seeds a store and returns a Service around it. A nil clock means the
// system clock; a nil logger discards output.
func New(seeds []note.Seed, name string, c clock.Clock, log *zap.Logger, opts ...store.Option) *Service {
	if c == nil {
		c = clock.System{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		Store:  store.New(seeds, opts...),
		Clock:  c,
		Name:   name,
		Logger: log,
	}
}

func (s *Service) now() clock.Clock {
	if s.Clock == nil {
		return clock.System{}
	}
	return s.Clock
}

func (s *Service) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Greeting returns the greeting for the current instant.
func (s *Service) Greeting(_ context.Context) string {
	return s.GreetingAt(s.now().Now())
}

// GreetingAt returns the greeting for t.
func (s *Service) GreetingAt(t time.Time) string {
	return clock.Greeting(clock.GreetingBucket(t), s.Name)
}

// Bucket returns the part of the day for the current instant.
func (s *Service) Bucket(_ context.Context) clock.Bucket {
	return clock.GreetingBucket(s.now().Now())
}

// Notes returns the notes in display order.
func (s *Service) Notes(_ context.Context) []note.Note {
	return s.Store.Notes()
}

// Snapshot returns the notes and current selection.
func (s *Service) Snapshot(_ context.Context) store.State {
	return s.Store.Snapshot()
}

// Timestamp renders the creation time of n for display.
func (s *Service) Timestamp(n note.Note) string {
	return clock.FormatClock(n.CreatedAt)
}

// OnNoteTap expands or collapses the note with id.
func (s *Service) OnNoteTap(_ context.Context, id string) bool {
	changed := s.Store.ToggleSelect(id)
	s.trace("note tap", id, changed)
	return changed
}

// OnCompleteTap marks the note with id completed.
func (s *Service) OnCompleteTap(_ context.Context, id string) bool {
	changed := s.Store.Complete(id)
	s.trace("complete tap", id, changed)
	return changed
}

func (s *Service) trace(msg, id string, changed bool) {
	status, known := s.Store.StateOf(id)
	fields := []zap.Field{
		zap.String("id", id),
		zap.Bool("changed", changed),
	}
	if known {
		fields = append(fields, zap.Stringer("state", status))
	}
	s.log().Debug(msg, fields...)
}
