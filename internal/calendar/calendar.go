// ABOUTME: Buckets exercise records into calendar days for week, month, and year views.
// ABOUTME: Bucket dates are local calendar days matched against exercise_date strings.
package calendar

import (
	"fmt"
	"time"

	"github.com/harperreed/broccoli/internal/models"
)

// View is the calendar granularity.
type View string

const (
	Week  View = "week"
	Month View = "month"
	Year  View = "year"
)

// ParseView validates a view name.
func ParseView(s string) (View, error) {
	switch View(s) {
	case Week, Month, Year:
		return View(s), nil
	default:
		return "", fmt.Errorf("unknown calendar view %q (want week, month, or year)", s)
	}
}

// Bucket is one calendar day and the records logged on it.
type Bucket struct {
	Date    string                  `json:"date"`
	Records []models.ExerciseRecord `json:"records"`
	// InRange is false for the padding days that align a month grid to whole weeks.
	InRange bool `json:"in_range"`
	IsToday bool `json:"is_today"`
}

// Count is the number of records in the bucket.
func (b Bucket) Count() int {
	return len(b.Records)
}

// Intensity is the heat-map tier of the bucket.
func (b Bucket) Intensity() Intensity {
	return IntensityFor(len(b.Records))
}

// MonthPanel groups a year view's days by month.
type MonthPanel struct {
	Month   time.Month `json:"month"`
	Buckets []Bucket   `json:"buckets"`
}

// Result is a rendered calendar range.
type Result struct {
	View    View         `json:"view"`
	Title   string       `json:"title"`
	Start   string       `json:"start"`
	End     string       `json:"end"`
	Buckets []Bucket     `json:"buckets"`
	Months  []MonthPanel `json:"months,omitempty"`
}

// index groups records by their calendar date key.
func index(records []models.ExerciseRecord) map[string][]models.ExerciseRecord {
	byDate := make(map[string][]models.ExerciseRecord)
	for _, r := range records {
		key := r.DateKey()
		byDate[key] = append(byDate[key], r)
	}
	return byDate
}

// days builds one bucket per day from start through end inclusive.
// Days outside [rangeStart, rangeEnd] are marked as padding.
func days(start, end, rangeStart, rangeEnd time.Time, byDate map[string][]models.ExerciseRecord, today string) []Bucket {
	var out []Bucket
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := models.FormatDate(d)
		out = append(out, Bucket{
			Date:    key,
			Records: byDate[key],
			InRange: !d.Before(rangeStart) && !d.After(rangeEnd),
			IsToday: key == today,
		})
	}
	return out
}

// Build buckets records for the view around ref. now marks today's bucket.
func Build(view View, ref, now time.Time, records []models.ExerciseRecord) Result {
	switch view {
	case Week:
		return BuildWeek(ref, now, records)
	case Year:
		return BuildYear(ref, now, records)
	default:
		return BuildMonth(ref, now, records)
	}
}

// BuildWeek returns the 7 days of ref's Sunday-start week.
func BuildWeek(ref, now time.Time, records []models.ExerciseRecord) Result {
	start := models.StartOfWeek(ref)
	end := start.AddDate(0, 0, 6)
	return Result{
		View:    Week,
		Title:   Title(Week, ref),
		Start:   models.FormatDate(start),
		End:     models.FormatDate(end),
		Buckets: days(start, end, start, end, index(records), models.FormatDate(now)),
	}
}

// BuildMonth returns ref's month padded with adjacent days to whole Sunday-start weeks.
func BuildMonth(ref, now time.Time, records []models.ExerciseRecord) Result {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)
	start := models.StartOfWeek(first)
	end := models.StartOfWeek(last).AddDate(0, 0, 6)
	return Result{
		View:    Month,
		Title:   Title(Month, ref),
		Start:   models.FormatDate(start),
		End:     models.FormatDate(end),
		Buckets: days(start, end, first, last, index(records), models.FormatDate(now)),
	}
}

// BuildYear returns every day of ref's year plus the same days split into 12 month panels.
func BuildYear(ref, now time.Time, records []models.ExerciseRecord) Result {
	first := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
	last := time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, ref.Location())
	all := days(first, last, first, last, index(records), models.FormatDate(now))

	months := make([]MonthPanel, 0, 12)
	offset := 0
	for m := time.January; m <= time.December; m++ {
		n := models.DaysIn(ref.Year(), m, ref.Location())
		months = append(months, MonthPanel{Month: m, Buckets: all[offset : offset+n]})
		offset += n
	}

	return Result{
		View:    Year,
		Title:   Title(Year, ref),
		Start:   models.FormatDate(first),
		End:     models.FormatDate(last),
		Buckets: all,
		Months:  months,
	}
}

// Title renders the heading for the range containing ref.
func Title(view View, ref time.Time) string {
	switch view {
	case Week:
		start := models.StartOfWeek(ref)
		end := start.AddDate(0, 0, 6)
		return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
	case Year:
		return ref.Format("2006")
	default:
		return ref.Format("January 2006")
	}
}
