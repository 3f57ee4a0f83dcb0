package clock

import "fmt"

// Subtitle is shown under every greeting.
const Subtitle = "Semoga harimu menyenangkan!"

var greetings = map[Bucket]string{
	Morning:   "Selamat pagi",
	Afternoon: "Selamat siang",
	Evening:   "Selamat sore",
	Night:     "Selamat malam",
}

// Greeting returns the fixed display string for b addressed to name.
func Greeting(b Bucket, name string) string {
	prefix, ok := greetings[b]
	if !ok {
		prefix = greetings[Night]
	}
	if name == "" {
		return prefix + "!"
	}
	return fmt.Sprintf("%s, %s!", prefix, name)
}
