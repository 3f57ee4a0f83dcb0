// Package clock derives greetings and display timestamps in the fixed UTC+7
// zone used across notepad, independent of the host's local zone.
package clock

import (
	"fmt"
	"time"
)

const (
	// ZoneOffset is the fixed target zone offset from UTC.
	ZoneOffset = 7 * time.Hour
	// ZoneLabel is appended to every formatted clock string.
	ZoneLabel = "(UTC+7)"

	clockLayout = "15:04"
)

// Zone is the fixed UTC+7 location. It never consults the tz database.
var Zone = time.FixedZone("UTC+7", int(ZoneOffset/time.Second))

// Bucket is a coarse part of the day.
type Bucket int

const (
	Morning Bucket = iota
	Afternoon
	Evening
	Night
)

func (b Bucket) String() string {
	switch b {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	default:
		return "night"
	}
}

// Hour returns the hour of day of t as observed in Zone.
func Hour(t time.Time) int {
	return t.In(Zone).Hour()
}

// GreetingBucket maps now to its part of the day in Zone. Boundaries are
// half-open: [4,11) morning, [11,15) afternoon, [15,18) evening, rest night.
func GreetingBucket(now time.Time) Bucket {
	return BucketForHour(Hour(now))
}

// BucketForHour maps an hour of day (0-23) to its bucket.
func BucketForHour(h int) Bucket {
	switch {
	case h >= 4 && h < 11:
		return Morning
	case h >= 11 && h < 15:
		return Afternoon
	case h >= 15 && h < 18:
		return Evening
	default:
		return Night
	}
}

// FormatClock renders t as "HH:mm (UTC+7)".
func FormatClock(t time.Time) string {
	return fmt.Sprintf("%s %s", t.In(Zone).Format(clockLayout), ZoneLabel)
}
