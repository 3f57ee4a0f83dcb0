package note

import "time"

// SampleSeeds returns the built-in notes, newest first, relative to now.
func SampleSeeds(now time.Time) []Seed {
	return []Seed{
		{Title: "Belanja", Content: "Beli telur, susu, roti", Color: Yellow, CreatedAt: now},
		{Title: "Meeting", Content: "Zoom jam 10 pagi", Color: Green, CreatedAt: now.Add(-time.Hour)},
		{Title: "Ide App", Content: "Buat aplikasi notepad di terminal", Color: Blue, CreatedAt: now.Add(-2 * time.Hour)},
	}
}
