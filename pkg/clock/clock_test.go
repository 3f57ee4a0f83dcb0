package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m int) time.Time {
	return time.Date(2025, time.June, 30, h, m, 0, 0, Zone)
}

func TestBucketForEveryHour(t *testing.T) {
	for h := 0; h < 24; h++ {
		var want Bucket
		switch {
		case h >= 4 && h < 11:
			want = Morning
		case h >= 11 && h < 15:
			want = Afternoon
		case h >= 15 && h < 18:
			want = Evening
		default:
			want = Night
		}
		assert.Equal(t, want, GreetingBucket(at(h, 0)), "hour %d", h)
		assert.Equal(t, want, GreetingBucket(at(h, 59)), "hour %d:59", h)
	}
}

func TestBucketBoundaries(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want Bucket
	}{
		{"03:59 night", at(3, 59), Night},
		{"04:00 morning", at(4, 0), Morning},
		{"10:59 morning", at(10, 59), Morning},
		{"11:00 afternoon", at(11, 0), Afternoon},
		{"14:59 afternoon", at(14, 59), Afternoon},
		{"15:00 evening", at(15, 0), Evening},
		{"17:59 evening", at(17, 59), Evening},
		{"18:00 night", at(18, 0), Night},
		{"00:00 night", at(0, 0), Night},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GreetingBucket(tt.t))
		})
	}
}

func TestBucketIgnoresCallerZone(t *testing.T) {
	instant := at(9, 5)
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC-5", -5*3600),
		time.FixedZone("UTC+13", 13*3600),
		time.FixedZone("UTC+5:30", 5*3600+1800),
	}
	for _, z := range zones {
		local := instant.In(z)
		assert.Equal(t, Morning, GreetingBucket(local), z.String())
		assert.Equal(t, "09:05 (UTC+7)", FormatClock(local), z.String())
	}
}

func TestBucketIgnoresProcessLocal(t *testing.T) {
	saved := time.Local
	t.Cleanup(func() { time.Local = saved })

	instant := time.Date(2025, time.June, 30, 23, 30, 0, 0, time.UTC) // 06:30 UTC+7
	time.Local = time.FixedZone("UTC-8", -8*3600)
	first := GreetingBucket(instant.Local())
	time.Local = time.FixedZone("UTC+9", 9*3600)
	second := GreetingBucket(instant.Local())

	assert.Equal(t, Morning, first)
	assert.Equal(t, first, second)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05 (UTC+7)", FormatClock(at(9, 5)))
	assert.Equal(t, "00:00 (UTC+7)", FormatClock(at(0, 0)))
	assert.Equal(t, "23:59 (UTC+7)", FormatClock(at(23, 59)))

	utc := time.Date(2025, time.June, 30, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, "00:00 (UTC+7)", FormatClock(utc))
}

func TestGreeting(t *testing.T) {
	require.Equal(t, "Selamat pagi, Georgia!", Greeting(Morning, "Georgia"))
	assert.Equal(t, "Selamat siang, Georgia!", Greeting(Afternoon, "Georgia"))
	assert.Equal(t, "Selamat sore, Georgia!", Greeting(Evening, "Georgia"))
	assert.Equal(t, "Selamat malam, Georgia!", Greeting(Night, "Georgia"))
	assert.Equal(t, "Selamat malam!", Greeting(Night, ""))
	assert.Equal(t, "Selamat malam, Ana!", Greeting(Bucket(42), "Ana"))
}

func TestBucketString(t *testing.T) {
	assert.Equal(t, "morning", Morning.String())
	assert.Equal(t, "afternoon", Afternoon.String())
	assert.Equal(t, "evening", Evening.String())
	assert.Equal(t, "night", Night.String())
}

func TestFixedClock(t *testing.T) {
	want := at(12, 0)
	var c Clock = Fixed{At: want}
	assert.True(t, c.Now().Equal(want))
	assert.False(t, System{}.Now().IsZero())
}
