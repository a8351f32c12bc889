// Package date parses due-date input and computes local day windows.
package date

import (
	"strings"
	"time"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/taskerr"
)

const (
	// LayoutDate is a due date without a time of day (midnight local).
	LayoutDate = "2006-01-02"
	// LayoutDateTime is a due date with a time of day.
	LayoutDateTime = "2006-01-02 15:04"
)

// Parse interprets s in the process's local time zone. A value
// containing a colon must match LayoutDateTime, anything else must
// match LayoutDate.
func Parse(s string) (time.Time, error) {
	if strings.Contains(s, ":") {
		t, err := time.ParseInLocation(LayoutDateTime, s, time.Local)
		if err != nil {
			return time.Time{}, taskerr.New(taskerr.InvalidDate, "invalid date %q: expected %s or %s", s, LayoutDate, LayoutDateTime)
		}
		return t, nil
	}
	t, err := time.ParseInLocation(LayoutDate, s, time.Local)
	if err != nil {
		return time.Time{}, taskerr.New(taskerr.InvalidDate, "invalid date %q: expected %s or %s", s, LayoutDate, LayoutDateTime)
	}
	return t, nil
}

// DayWindow returns the inclusive [00:00:00, 23:59:59] window of t's
// local calendar day.
func DayWindow(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end = time.Date(y, m, d, 23, 59, 59, 0, t.Location())
	return start, end
}
