// ABOUTME: Filters and paginates exercise records for the history table.
// ABOUTME: Filters run category, exercise, start date, end date; pages hold 100 rows.
package history

import (
	"cmp"
	"slices"

	"github.com/harperreed/broccoli/internal/models"
)

// PageSize is the number of rows per history page.
const PageSize = 100

// Filter narrows the record list. Zero values disable a stage.
type Filter struct {
	CategoryID int    `json:"category_id,omitempty"`
	ExerciseID int    `json:"exercise_id,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
}

// IsZero reports whether no filter stage is active.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Apply returns a new slice of the records that pass every active stage, in input order.
// Dates are compared as YYYY-MM-DD strings, inclusive on both ends.
func Apply(records []models.ExerciseRecord, f Filter) []models.ExerciseRecord {
	if f.IsZero() {
		return slices.Clone(records)
	}
	out := records
	if f.CategoryID != 0 {
		out = keep(out, func(r models.ExerciseRecord) bool { return r.CategoryID() == f.CategoryID })
	}
	if f.ExerciseID != 0 {
		out = keep(out, func(r models.ExerciseRecord) bool { return r.ExerciseID == f.ExerciseID })
	}
	if f.StartDate != "" {
		out = keep(out, func(r models.ExerciseRecord) bool { return r.DateKey() >= f.StartDate })
	}
	if f.EndDate != "" {
		out = keep(out, func(r models.ExerciseRecord) bool { return r.DateKey() <= f.EndDate })
	}
	return out
}

func keep(in []models.ExerciseRecord, pred func(models.ExerciseRecord) bool) []models.ExerciseRecord {
	out := make([]models.ExerciseRecord, 0, len(in))
	for _, r := range in {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// SortNewestFirst orders records by exercise_date descending, then id descending.
func SortNewestFirst(records []models.ExerciseRecord) {
	slices.SortStableFunc(records, func(a, b models.ExerciseRecord) int {
		if c := cmp.Compare(b.DateKey(), a.DateKey()); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

// TotalPages is ceil(count / PageSize).
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + PageSize - 1) / PageSize
}

// ClampPage keeps page within [1, max(1, TotalPages(count))].
func ClampPage(page, count int) int {
	last := max(1, TotalPages(count))
	return min(max(page, 1), last)
}

// Paginate returns rows [(page-1)*PageSize, page*PageSize) of records.
// An out-of-range page yields an empty slice.
func Paginate(records []models.ExerciseRecord, page int) []models.ExerciseRecord {
	if page < 1 {
		return nil
	}
	start := (page - 1) * PageSize
	if start >= len(records) {
		return nil
	}
	end := min(start+PageSize, len(records))
	return records[start:end]
}

// ExerciseOptions returns the exercises offered for categoryID, or all when it is 0.
func ExerciseOptions(exercises []models.Exercise, categoryID int) []models.Exercise {
	if categoryID == 0 {
		return slices.Clone(exercises)
	}
	out := make([]models.Exercise, 0, len(exercises))
	for _, e := range exercises {
		if e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out
}
