// ABOUTME: Tests for dashboard statistics.
// ABOUTME: Uses a fixed "now" so month and week windows are deterministic.
package dashboard

import (
	"testing"
	"time"

	"github.com/harperreed/broccoli/internal/models"
)

func rec(id int, date string, category *models.Category) models.ExerciseRecord {
	r := models.ExerciseRecord{ID: id, ExerciseDate: date, Rep: 1}
	if category != nil {
		r.Exercise = models.Exercise{CategoryID: category.ID, Category: category}
	}
	return r
}

// Wednesday 2025-02-12.
var now = time.Date(2025, time.February, 12, 18, 30, 0, 0, time.Local)

func TestCompute(t *testing.T) {
	records := []models.ExerciseRecord{
		rec(1, "2025-01-30", nil),
		rec(2, "2025-02-03", nil),
		rec(3, "2025-02-09", nil), // Sunday, starts the current week
		rec(4, "2025-02-09", nil),
		rec(5, "2025-02-12", nil),
		rec(6, "2025-02-15", nil), // Saturday, ends the current week
		rec(7, "2025-02-16", nil),
	}

	got := Compute(records, now)
	want := Stats{TotalDays: 6, MonthDays: 5, WeekDays: 3, TotalRecords: 7}
	if got != want {
		t.Errorf("Compute() = %+v, want %+v", got, want)
	}
}

func TestComputeEmpty(t *testing.T) {
	if got := Compute(nil, now); got != (Stats{}) {
		t.Errorf("Compute(nil) = %+v, want zero", got)
	}
}

func TestLast7Days(t *testing.T) {
	records := []models.ExerciseRecord{
		rec(1, "2025-02-05", nil), // seven days back, outside
		rec(2, "2025-02-06", nil),
		rec(3, "2025-02-12", nil),
		rec(4, "2025-02-12", nil),
	}

	got := Last7Days(records, now)
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	if got[0].Date != "2025-02-06" || got[6].Date != "2025-02-12" {
		t.Errorf("window = %s..%s", got[0].Date, got[6].Date)
	}
	if got[0].Count != 1 || got[6].Count != 2 {
		t.Errorf("counts = %+v", got)
	}
}

func TestPerCategory(t *testing.T) {
	legs := &models.Category{ID: 1, Name: "Legs"}
	back := &models.Category{ID: 2, Name: "Back"}
	arms := &models.Category{ID: 3, Name: "Arms"}
	records := []models.ExerciseRecord{
		rec(1, "2025-02-01", legs),
		rec(2, "2025-02-01", back),
		rec(3, "2025-02-02", legs),
		rec(4, "2025-02-02", arms),
		rec(5, "2025-02-03", nil),
	}

	got := PerCategory(records)
	want := []CategoryCount{
		{CategoryID: 1, Name: "Legs", Count: 2},
		{CategoryID: 3, Name: "Arms", Count: 1},
		{CategoryID: 2, Name: "Back", Count: 1},
		{CategoryID: 0, Name: Uncategorized, Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("PerCategory() = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PerCategory()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBuild(t *testing.T) {
	s := Build([]models.ExerciseRecord{rec(1, "2025-02-12", nil)}, now)
	if s.Stats.TotalRecords != 1 || s.Last7Days[6].Count != 1 || len(s.PerCategory) != 1 {
		t.Errorf("Build() = %+v", s)
	}
}
