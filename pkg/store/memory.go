package store

import (
	"fmt"

	"github.com/google/uuid"

	"tableflip.dev/notepad/pkg/note"
)

// IDFunc generates note identifiers.
type IDFunc func() string

// Option configures a Store.
type Option func(*Store)

// WithIDFunc overrides the identifier generator (uuid by default).
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

const idAttempts = 8

// Store owns the ordered notes and the single selected id. It is meant to be
// driven from one goroutine (the UI loop) and is not safe for concurrent use.
type Store struct {
	notes    []note.Note
	index    map[string]int
	selected string
	newID    IDFunc
}

// New seeds a store with notes in the given order. Every note starts active
// and nothing is selected.
func New(seeds []note.Seed, opts ...Option) *Store {
	s := &Store{
		notes: make([]note.Note, 0, len(seeds)),
		index: make(map[string]int, len(seeds)),
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	for _, seed := range seeds {
		id := s.uniqueID()
		s.index[id] = len(s.notes)
		s.notes = append(s.notes, note.FromSeed(id, seed))
	}
	return s
}

func (s *Store) uniqueID() string {
	var id string
	for i := 0; i < idAttempts; i++ {
		id = s.newID()
		if _, taken := s.index[id]; id != "" && !taken {
			return id
		}
	}
	for n := len(s.notes) + 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if _, taken := s.index[candidate]; !taken {
			return candidate
		}
	}
}

// ToggleSelect expands or collapses the note with id. Unknown ids and
// completed notes are ignored. Selecting a note replaces any prior selection.
func (s *Store) ToggleSelect(id string) bool {
	i, ok := s.index[id]
	if !ok || s.notes[i].Completed {
		return false
	}
	if s.selected == id {
		s.selected = ""
	} else {
		s.selected = id
	}
	return true
}

// Complete marks the note with id completed and clears the selection. Unknown
// ids and already completed notes are ignored.
func (s *Store) Complete(id string) bool {
	i, ok := s.index[id]
	if !ok || s.notes[i].Completed {
		return false
	}
	s.notes[i].Completed = true
	s.selected = ""
	return true
}

// Len returns the number of notes.
func (s *Store) Len() int {
	return len(s.notes)
}

// Get returns a copy of the note with id.
func (s *Store) Get(id string) (note.Note, bool) {
	i, ok := s.index[id]
	if !ok {
		return note.Note{}, false
	}
	return s.notes[i], true
}

// Notes returns a copy of the notes in display order.
func (s *Store) Notes() []note.Note {
	out := make([]note.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// SelectedID returns the selected id, or "" when nothing is selected.
func (s *Store) SelectedID() string {
	return s.selected
}

// Selected returns the selected note, if any.
func (s *Store) Selected() (note.Note, bool) {
	if s.selected == "" {
		return note.Note{}, false
	}
	return s.Get(s.selected)
}

// StateOf reports the per-note state for id. Unknown ids report
// ActiveUnselected and false.
func (s *Store) StateOf(id string) (note.Status, bool) {
	i, ok := s.index[id]
	if !ok {
		return note.ActiveUnselected, false
	}
	switch {
	case s.notes[i].Completed:
		return note.Completed, true
	case s.selected == id:
		return note.ActiveSelected, true
	default:
		return note.ActiveUnselected, true
	}
}

// Snapshot returns a read-only copy of the store for rendering.
func (s *Store) Snapshot() State {
	return State{Notes: s.Notes(), SelectedID: s.selected}
}
