// Package store holds the in-memory note list and its selection/completion
// state machine.
package store

import "tableflip.dev/notepad/pkg/note"

// State is a point-in-time copy of a Store.
type State struct {
	Notes      []note.Note
	SelectedID string
}

// Selected returns the selected note in the snapshot, if any.
func (st State) Selected() (note.Note, bool) {
	if st.SelectedID == "" {
		return note.Note{}, false
	}
	for _, n := range st.Notes {
		if n.ID == st.SelectedID {
			return n, true
		}
	}
	return note.Note{}, false
}

// IsSelected reports whether id is the selected note.
func (st State) IsSelected(id string) bool {
	return id != "" && st.SelectedID == id
}

// Completed counts completed notes.
func (st State) Completed() int {
	n := 0
	for _, it := range st.Notes {
		if it.Completed {
			n++
		}
	}
	return n
}
