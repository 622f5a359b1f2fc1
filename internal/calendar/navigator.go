// ABOUTME: Calendar view state: current view mode plus the reference date.
// ABOUTME: Previous/Next shift by one unit of the view; switching views keeps the date.
package calendar

import (
	"fmt"
	"time"

	"github.com/harperreed/broccoli/internal/models"
)

// MaxOffset bounds how many ranges a single Shift may move.
const MaxOffset = 10000

// Navigator holds the calendar's view mode and reference date.
type Navigator struct {
	View View
	Ref  time.Time
}

// NewNavigator starts at ref in the given view.
func NewNavigator(view View, ref time.Time) *Navigator {
	return &Navigator{View: view, Ref: models.StartOfDay(ref)}
}

// Previous moves back one week, month, or year.
func (n *Navigator) Previous() {
	n.shift(-1)
}

// Next moves forward one week, month, or year.
func (n *Navigator) Next() {
	n.shift(1)
}

// Shift moves n ranges at once: forward when n is positive, back when negative.
// Month and year shifts clamp the day once, against the final month.
func (n *Navigator) Shift(count int) error {
	if count > MaxOffset || count < -MaxOffset {
		return fmt.Errorf("offset %d out of range [-%d, %d]", count, MaxOffset, MaxOffset)
	}
	n.shift(count)
	return nil
}

// Today resets the reference date to now.
func (n *Navigator) Today(now time.Time) {
	n.Ref = models.StartOfDay(now)
}

// SetView changes the view without touching the reference date.
func (n *Navigator) SetView(v View) {
	n.View = v
}

// SelectMonth switches to the month view at the first day of month m of the current year.
func (n *Navigator) SelectMonth(m time.Month) {
	n.Ref = time.Date(n.Ref.Year(), m, 1, 0, 0, 0, 0, n.Ref.Location())
	n.View = Month
}

// Title renders the heading for the current range.
func (n *Navigator) Title() string {
	return Title(n.View, n.Ref)
}

// Build buckets records for the current range.
func (n *Navigator) Build(now time.Time, records []models.ExerciseRecord) Result {
	return Build(n.View, n.Ref, now, records)
}

func (n *Navigator) shift(dir int) {
	switch n.View {
	case Week:
		n.Ref = n.Ref.AddDate(0, 0, 7*dir)
	case Year:
		n.Ref = addMonths(n.Ref, 12*dir)
	default:
		n.Ref = addMonths(n.Ref, dir)
	}
}

// addMonths shifts t by months, clamping the day to the target month's length
// so Jan 31 + 1 month is the last day of February.
func addMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := models.DaysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
