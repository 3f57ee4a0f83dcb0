package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/notepad/pkg/note"
)

func TestTagColorsAreDistinct(t *testing.T) {
	seen := map[string]note.ColorTag{}
	for _, tag := range note.Tags() {
		hex := TagColor(tag).Hex()
		if prev, ok := seen[hex]; ok {
			t.Fatalf("%s and %s share color %s", prev, tag, hex)
		}
		seen[hex] = tag
	}
	if TagColor(note.ColorTag(99)).Hex() != TagColor(note.Gray).Hex() {
		t.Fatalf("expected unknown tags to fall back to gray")
	}
}

func TestCardTintBlendsTowardBackground(t *testing.T) {
	tint := CardTint(note.Yellow, 0.25)
	full := TagColor(note.Yellow)
	if tint.DistanceLab(Background) >= full.DistanceLab(Background) {
		t.Fatalf("expected tint %s to sit closer to background than %s", tint.Hex(), full.Hex())
	}
	if CardTint(note.Blue, 0).DistanceLab(Background) > 0.01 {
		t.Fatalf("expected zero strength to equal background")
	}
}

func TestGradientKeepsText(t *testing.T) {
	out := Gradient("Notepad", BrandGradient, lipgloss.NewStyle().Bold(true))
	if got := stripANSI(out); got != "Notepad" {
		t.Fatalf("expected plain text Notepad, got %q", got)
	}
	if Gradient("", BrandGradient, lipgloss.NewStyle()) != "" {
		t.Fatalf("expected empty gradient for empty text")
	}
}

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
