package render

import (
	"fmt"
	"time"
)

// RelativeTime labels the time elapsed between createdAt and now, truncated to
// whole minutes, hours or days. Elapsed times under a minute, including
// negative ones from clock skew, are "now".
func RelativeTime(createdAt, now time.Time) string {
	d := now.Sub(createdAt)

	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return ago(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return ago(int(d/time.Hour), "hour")
	default:
		return ago(int(d/(24*time.Hour)), "day")
	}
}

func ago(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

var monthsShort = map[string][12]string{
	"es": {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// DateFormatter renders short absolute dates ("8 sept 12:00") for a locale
// and time zone.
type DateFormatter struct {
	Locale   string
	Location *time.Location
}

// Format renders t as day, abbreviated month and 24h time.
func (f DateFormatter) Format(t time.Time) string {
	if f.Location != nil {
		t = t.In(f.Location)
	}

	months, ok := monthsShort[f.Locale]
	if !ok {
		months = monthsShort["en"]
	}

	return fmt.Sprintf("%d %s %02d:%02d", t.Day(), months[t.Month()-1], t.Hour(), t.Minute())
}

// CountLabel renders the number of comments on the board.
func CountLabel(n int) string {
	if n == 1 {
		return "1 comment"
	}
	return fmt.Sprintf("%d comments", n)
}
