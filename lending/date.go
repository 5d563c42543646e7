package lending

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// Clock supplies the creation date of members and items. It is never consulted when
// deciding whether a contract can be made.
type Clock interface {
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Today() time.Time { return Day(time.Now()) }

// FixedClock always reports the same day.
type FixedClock time.Time

func (c FixedClock) Today() time.Time { return Day(time.Time(c)) }

// Day drops the time of day and location, keeping the calendar date of t.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// MustDate is ParseDate for literals known to be valid.
func MustDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween counts whole calendar days from start to end. The end day is not counted,
// so the result is zero or negative when end is not after start. It works on Unix
// seconds rather than time.Duration, which saturates after about 292 years.
func DaysBetween(start, end time.Time) int {
	return int((Day(end).Unix() - Day(start).Unix()) / secondsPerDay)
}

// rangesOverlap treats both ranges as inclusive on both ends.
func rangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(Day(aEnd).Before(Day(bStart)) || Day(aStart).After(Day(bEnd)))
}
