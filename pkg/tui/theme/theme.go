// Package theme holds the Lip Gloss styles and note color palette.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/notepad/pkg/note"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Splash SplashTheme
	Login  LoginTheme
	Home   HomeTheme
}

// SplashTheme styles the launch screen.
type SplashTheme struct {
	Title   lipgloss.Style
	Tagline lipgloss.Style
	Ring    lipgloss.Style
	Fade    lipgloss.Style
}

// LoginTheme styles the mock login form and its alert.
type LoginTheme struct {
	Field        lipgloss.Style
	FocusedField lipgloss.Style
	Button       lipgloss.Style
	Toggle       lipgloss.Style
	Alert        lipgloss.Style
	AlertTitle   lipgloss.Style
	Hint         lipgloss.Style
}

// HomeTheme styles the note list.
type HomeTheme struct {
	Icon           lipgloss.Style
	Greeting       lipgloss.Style
	Subtitle       lipgloss.Style
	Empty          lipgloss.Style
	Card           lipgloss.Style
	Title          lipgloss.Style
	Content        lipgloss.Style
	Badge          lipgloss.Style
	Seal           lipgloss.Style
	CompleteButton lipgloss.Style
	IconButton     lipgloss.Style
	Cursor         lipgloss.Style
	Help           lipgloss.Style
	HelpFrame      lipgloss.Style
}

// Background is the color card tints are blended toward.
var Background = colorful.Color{R: 0.11, G: 0.11, B: 0.12}

// BrandGradient runs from cyan through blue to purple.
var BrandGradient = []colorful.Color{
	mustHex("#22d3ee"),
	mustHex("#3b82f6"),
	mustHex("#a855f7"),
}

var tagHex = map[note.ColorTag]string{
	note.Yellow: "#facc15",
	note.Green:  "#22c55e",
	note.Blue:   "#3b82f6",
	note.Red:    "#ef4444",
	note.Orange: "#f97316",
	note.Purple: "#a855f7",
	note.Gray:   "#9ca3af",
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// TagColor returns the full-strength color for tag.
func TagColor(tag note.ColorTag) colorful.Color {
	hex, ok := tagHex[tag]
	if !ok {
		hex = tagHex[note.Gray]
	}
	return mustHex(hex)
}

// CardTint returns tag mixed into Background at the given strength (0-1).
func CardTint(tag note.ColorTag, strength float64) colorful.Color {
	return Background.BlendLab(TagColor(tag), strength).Clamped()
}

// Gradient renders s with colors interpolated across stops, one per rune.
func Gradient(s string, stops []colorful.Color, base lipgloss.Style) string {
	runes := []rune(s)
	if len(runes) == 0 || len(stops) == 0 {
		return base.Render(s)
	}
	out := ""
	for i, r := range runes {
		pos := 0.0
		if len(runes) > 1 {
			pos = float64(i) / float64(len(runes)-1)
		}
		out += base.Foreground(at(stops, pos)).Render(string(r))
	}
	return out
}

func at(stops []colorful.Color, pos float64) color.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	seg := pos * float64(len(stops)-1)
	i := int(seg)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].BlendLab(stops[i+1], seg-float64(i)).Clamped()
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	muted := lipgloss.Color("244")
	cyan := lipgloss.Color("#22d3ee")

	field := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(40)

	return Theme{
		Splash: SplashTheme{
			Title:   lipgloss.NewStyle().Bold(true),
			Tagline: lipgloss.NewStyle().Foreground(muted),
			Ring:    lipgloss.NewStyle().Foreground(cyan),
			Fade:    lipgloss.NewStyle().Foreground(cyan).Faint(true),
		},
		Login: LoginTheme{
			Field:        field,
			FocusedField: field.BorderForeground(cyan),
			Button: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffffff")).
				Background(BrandGradient[1]).
				Padding(0, 17),
			Toggle: lipgloss.NewStyle().Foreground(cyan),
			Alert: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(cyan).
				Padding(1, 3),
			AlertTitle: lipgloss.NewStyle().Bold(true),
			Hint:       lipgloss.NewStyle().Foreground(muted),
		},
		Home: HomeTheme{
			Icon:     lipgloss.NewStyle().Foreground(lipgloss.Color("#f97316")),
			Greeting: lipgloss.NewStyle().Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(muted),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Card: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 2),
			Title:   lipgloss.NewStyle().Bold(true),
			Content: lipgloss.NewStyle(),
			Badge: lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("238")).
				Bold(true).
				Padding(0, 1),
			Seal: lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
			CompleteButton: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color("#16a34a")).
				Padding(0, 1),
			IconButton: lipgloss.NewStyle().Padding(0, 1),
			Cursor:     lipgloss.NewStyle().Foreground(cyan).Bold(true),
			Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			HelpFrame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(cyan),
		},
	}
}

// CardStyle returns the frame for one note card.
func (h HomeTheme) CardStyle(tag note.ColorTag, focused, completed bool) lipgloss.Style {
	style := h.Card.
		BorderForeground(CardTint(tag, 0.55)).
		Background(CardTint(tag, 0.25))
	if focused {
		style = style.BorderForeground(TagColor(tag))
	}
	if completed {
		style = style.Faint(true)
	}
	return style
}
