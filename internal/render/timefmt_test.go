package render

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	created := time.Date(2025, 9, 8, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"zero", 0, "now"},
		{"future", -5 * time.Minute, "now"},
		{"59s", 59 * time.Second, "now"},
		{"60s", time.Minute, "1 minute ago"},
		{"119s", 119 * time.Second, "1 minute ago"},
		{"2m", 2 * time.Minute, "2 minutes ago"},
		{"59m59s", time.Hour - time.Second, "59 minutes ago"},
		{"1h", time.Hour, "1 hour ago"},
		{"23h59m", 24*time.Hour - time.Minute, "23 hours ago"},
		{"24h", 24 * time.Hour, "1 day ago"},
		{"47h", 47 * time.Hour, "1 day ago"},
		{"3d", 72 * time.Hour, "3 days ago"},
		{"400d", 400 * 24 * time.Hour, "400 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(created, created.Add(tt.elapsed)))
		})
	}
}

// bucketRank orders labels from most recent to oldest.
func bucketRank(d time.Duration) int {
	switch {
	case d < time.Minute:
		return 0
	case d < time.Hour:
		return 1
	case d < 24*time.Hour:
		return 2
	default:
		return 3
	}
}

func TestRelativeTime_Monotonic(t *testing.T) {
	created := time.Date(2025, 9, 8, 12, 0, 0, 0, time.UTC)

	prevRank, prevN := -1, -1
	for s := int64(-120); s < 10*24*3600; s += 37 {
		d := time.Duration(s) * time.Second
		label := RelativeTime(created, created.Add(d))

		rank := bucketRank(d)
		var n int
		if rank > 0 {
			_, _ = fmt.Sscan(label, &n)
		}

		if rank < prevRank || (rank == prevRank && n < prevN) {
			t.Fatalf("label went backwards at %s: %q", d, label)
		}
		prevRank, prevN = rank, n
	}
}

func TestDateFormatter(t *testing.T) {
	at := time.Date(2025, 9, 8, 10, 5, 0, 0, time.UTC)
	madrid := time.FixedZone("CEST", 2*60*60)

	tests := []struct {
		name string
		f    DateFormatter
		want string
	}{
		{"spanish in madrid", DateFormatter{Locale: "es", Location: madrid}, "8 sept 12:05"},
		{"english in utc", DateFormatter{Locale: "en", Location: time.UTC}, "8 Sep 10:05"},
		{"unknown locale falls back to english", DateFormatter{Locale: "xx", Location: time.UTC}, "8 Sep 10:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Format(at))
		})
	}
}

func TestCountLabel(t *testing.T) {
	assert.Equal(t, "0 comments", CountLabel(0))
	assert.Equal(t, "1 comment", CountLabel(1))
	assert.Equal(t, "12 comments", CountLabel(12))
}
