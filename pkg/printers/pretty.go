// Package printers renders notes for non-interactive output.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/notepad/pkg/clock"
	"tableflip.dev/notepad/pkg/note"
	"tableflip.dev/notepad/pkg/store"
)

// PrettyPrint writes the note list for terminals.
type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

var tagAttr = map[note.ColorTag]color.Attribute{
	note.Yellow: color.FgYellow,
	note.Green:  color.FgGreen,
	note.Blue:   color.FgBlue,
	note.Red:    color.FgRed,
	note.Orange: color.FgHiRed,
	note.Purple: color.FgMagenta,
	note.Gray:   color.FgHiBlack,
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// Greeting prints the greeting header and subtitle.
func (pp *PrettyPrint) Greeting(greeting string) {
	t := color.New(color.Bold)
	f := color.New(color.Faint)
	_, _ = t.Fprintln(pp.out(), greeting)
	_, _ = f.Fprintln(pp.out(), clock.Subtitle)
	_, _ = fmt.Fprintln(pp.out())
}

// Marker returns the glyph for a note's state.
func Marker(st note.Status) string {
	switch st {
	case note.ActiveSelected:
		return "▾"
	case note.Completed:
		return "✔"
	default:
		return "▸"
	}
}

// Notes prints one row per note in display order. The selected note also
// shows its action buttons.
func (pp *PrettyPrint) Notes(snap store.State) {
	if len(snap.Notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), "Belum ada catatan.")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	tbl.Wrap = true

	for i, n := range snap.Notes {
		st := note.ActiveUnselected
		switch {
		case n.Completed:
			st = note.Completed
		case snap.IsSelected(n.ID):
			st = note.ActiveSelected
		}
		marker := color.New(tagAttr[n.Color]).Sprint(Marker(st))
		title := n.Title
		if n.Completed {
			title = color.New(color.CrossedOut, color.Faint).Sprint(title)
		}
		row := []interface{}{fmt.Sprintf("%d", i+1), marker, title, n.Content, clock.FormatClock(n.CreatedAt)}
		if pp.ShowID {
			row = append([]interface{}{n.ID}, row...)
		}
		tbl.AddRow(row...)
		if st == note.ActiveSelected {
			actions := []interface{}{"", "", "", "[✓ Completed] [✎] [✕]", ""}
			if pp.ShowID {
				actions = append([]interface{}{""}, actions...)
			}
			tbl.AddRow(actions...)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), strings.TrimRight(tbl.String(), "\n"))
}
