// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/simmer/internal/apperr"
)

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
)

var errParseDate = &apperr.Error{
	Message: "unable to understand the date '%s'",
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToSecs converts whole minutes to seconds.
func MinsToSecs(mins int) int {
	return mins * secondsInAMinute
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	if val < 0 {
		val = 0
	}

	return val / secondsInAMinute, val % secondsInAMinute
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// Clock formats a number of seconds as a countdown (e.g. 4:05 or 1:02:09).
func Clock(secs int) string {
	m, s := SecsToMinsAndSecs(secs)
	if m < minutesInAnHour {
		return fmt.Sprintf("%d:%02d", m, s)
	}

	h, m := MinsToHoursAndMins(m)

	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// HumanMinutes renders a minutes value like "1h 20m" or "45m".
func HumanMinutes(val int) string {
	hrs, mins := MinsToHoursAndMins(val)

	switch {
	case hrs == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hrs)
	default:
		return fmt.Sprintf("%dh %dm", hrs, mins)
	}
}

// FromStr parses an absolute or relative date such as "2024-05-01" or
// "2 weeks ago" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	d, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errParseDate.Fmt(s).Wrap(err)
	}

	return d.Time, nil
}
