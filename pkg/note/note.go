// Package note defines the note entity shown on the home screen.
package note

import (
	"fmt"
	"strings"
	"time"
)

// ColorTag is a symbolic display category. It carries no behavior.
type ColorTag int

const (
	Yellow ColorTag = iota
	Green
	Blue
	Red
	Orange
	Purple
	Gray
)

var tagNames = []string{"yellow", "green", "blue", "red", "orange", "purple", "gray"}

func (c ColorTag) String() string {
	if c < 0 || int(c) >= len(tagNames) {
		return "gray"
	}
	return tagNames[c]
}

// Tags returns every known tag in declaration order.
func Tags() []ColorTag {
	out := make([]ColorTag, len(tagNames))
	for i := range tagNames {
		out[i] = ColorTag(i)
	}
	return out
}

// ParseColorTag resolves a tag by name, case-insensitively.
func ParseColorTag(s string) (ColorTag, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range tagNames {
		if n == name {
			return ColorTag(i), nil
		}
	}
	return Gray, fmt.Errorf("unknown color tag %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c ColorTag) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ColorTag) UnmarshalText(b []byte) error {
	tag, err := ParseColorTag(string(b))
	if err != nil {
		return err
	}
	*c = tag
	return nil
}

// Seed is note data supplied before an id is assigned.
type Seed struct {
	Title     string
	Content   string
	Color     ColorTag
	CreatedAt time.Time
}

// Note is one user note. Only Completed ever changes after creation.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     ColorTag  `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	Completed bool      `json:"isCompleted"`
}

// FromSeed builds an active note from s with the given id.
func FromSeed(id string, s Seed) Note {
	return Note{
		ID:        id,
		Title:     s.Title,
		Content:   s.Content,
		Color:     s.Color,
		CreatedAt: s.CreatedAt,
	}
}

// Status is the per-note state of the selection/completion machine.
type Status int

const (
	ActiveUnselected Status = iota
	ActiveSelected
	Completed
)

func (s Status) String() string {
	switch s {
	case ActiveSelected:
		return "active-selected"
	case Completed:
		return "completed"
	default:
		return "active-unselected"
	}
}
