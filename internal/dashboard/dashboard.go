// ABOUTME: Dashboard statistics over the full exercise record list.
// ABOUTME: Distinct workout days per period, last-7-days counts, and per-category totals.
package dashboard

import (
	"cmp"
	"slices"
	"time"

	"github.com/harperreed/broccoli/internal/models"
)

// Uncategorized labels records whose exercise carries no category.
const Uncategorized = "uncategorized"

// Stats are the dashboard headline numbers.
type Stats struct {
	TotalDays     int `json:"total_days"`
	MonthDays     int `json:"month_days"`
	WeekDays      int `json:"week_days"`
	TotalRecords  int `json:"total_records"`
	ServerRecords int `json:"server_records,omitempty"`
}

// DayCount is the number of records logged on one date.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CategoryCount is the number of records in one category.
type CategoryCount struct {
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

// Summary is everything the dashboard shows.
type Summary struct {
	Stats       Stats           `json:"stats"`
	Last7Days   []DayCount      `json:"last_7_days"`
	PerCategory []CategoryCount `json:"per_category"`
}

// Build computes the full dashboard relative to now.
func Build(records []models.ExerciseRecord, now time.Time) Summary {
	return Summary{
		Stats:       Compute(records, now),
		Last7Days:   Last7Days(records, now),
		PerCategory: PerCategory(records),
	}
}

// Compute counts distinct workout dates overall, in now's month, and in now's
// Sunday-start week, plus the total number of records.
func Compute(records []models.ExerciseRecord, now time.Time) Stats {
	monthPrefix := now.Format("2006-01")
	weekStart := models.FormatDate(models.StartOfWeek(now))
	weekEnd := models.FormatDate(models.StartOfWeek(now).AddDate(0, 0, 6))

	all := make(map[string]struct{})
	month := make(map[string]struct{})
	week := make(map[string]struct{})
	for _, r := range records {
		d := r.DateKey()
		all[d] = struct{}{}
		if len(d) >= len(monthPrefix) && d[:len(monthPrefix)] == monthPrefix {
			month[d] = struct{}{}
		}
		if d >= weekStart && d <= weekEnd {
			week[d] = struct{}{}
		}
	}

	return Stats{
		TotalDays:    len(all),
		MonthDays:    len(month),
		WeekDays:     len(week),
		TotalRecords: len(records),
	}
}

// Last7Days returns per-day record counts for the six days before now and now, oldest first.
func Last7Days(records []models.ExerciseRecord, now time.Time) []DayCount {
	today := models.StartOfDay(now)
	out := make([]DayCount, 7)
	pos := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		d := models.FormatDate(today.AddDate(0, 0, i-6))
		out[i] = DayCount{Date: d}
		pos[d] = i
	}
	for _, r := range records {
		if i, ok := pos[r.DateKey()]; ok {
			out[i].Count++
		}
	}
	return out
}

// PerCategory totals records by category, largest first and then by name.
func PerCategory(records []models.ExerciseRecord) []CategoryCount {
	byID := make(map[int]*CategoryCount)
	var order []int
	for _, r := range records {
		id := r.CategoryID()
		c, ok := byID[id]
		if !ok {
			c = &CategoryCount{CategoryID: id, Name: r.Exercise.CategoryName()}
			if c.Name == "" {
				c.Name = Uncategorized
			}
			byID[id] = c
			order = append(order, id)
		}
		c.Count++
	}

	out := make([]CategoryCount, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	slices.SortFunc(out, func(a, b CategoryCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
