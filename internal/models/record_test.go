// ABOUTME: Tests for ExerciseRecord helpers and date utilities.
// ABOUTME: Validates category resolution, date keys, and week/month math.
package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRecordCategoryIDPrefersSnapshot(t *testing.T) {
	r := ExerciseRecord{
		Exercise: Exercise{ID: 1, CategoryID: 2, Category: &Category{ID: 3, Name: "chest"}},
	}
	if got := r.CategoryID(); got != 3 {
		t.Errorf("CategoryID() = %d, want 3", got)
	}

	r.Exercise.Category = nil
	if got := r.CategoryID(); got != 2 {
		t.Errorf("CategoryID() without snapshot = %d, want 2", got)
	}
}

func TestRecordDateKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-01-25", "2025-01-25"},
		{"2025-01-25T00:00:00", "2025-01-25"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r := ExerciseRecord{ExerciseDate: tt.in}
			if got := r.DateKey(); got != tt.want {
				t.Errorf("DateKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordVolume(t *testing.T) {
	r := ExerciseRecord{Weight: 30, Rep: 10}
	if got := r.Volume(); got != 300 {
		t.Errorf("Volume() = %f, want 300", got)
	}
}

func TestRecordDecodesBackendJSON(t *testing.T) {
	raw := `{"id":1,"weight":30,"rep":10,"exercise_id":1,
		"exercise":{"id":1,"name":"chest press","category_id":1,"category":{"id":1,"name":"chest"}},
		"exercise_date":"2025-01-25"}`

	var r ExerciseRecord
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if r.Exercise.CategoryName() != "chest" {
		t.Errorf("CategoryName() = %q, want chest", r.Exercise.CategoryName())
	}
	if r.Weight != 30 || r.Rep != 10 {
		t.Errorf("got weight=%v rep=%d", r.Weight, r.Rep)
	}
}

func TestCreateBodyOmitsEmptyDate(t *testing.T) {
	data, err := json.Marshal(ExerciseRecordCreate{ExerciseID: 1, Weight: 30, Rep: 10})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"exercise_id":1,"weight":30,"rep":10}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2025-02-01 is a Saturday.
	d := time.Date(2025, time.February, 1, 15, 4, 0, 0, time.Local)
	got := StartOfWeek(d)
	if FormatDate(got) != "2025-01-26" {
		t.Errorf("StartOfWeek = %s, want 2025-01-26", FormatDate(got))
	}
	if got.Hour() != 0 {
		t.Errorf("StartOfWeek hour = %d, want 0", got.Hour())
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(2025, time.February, time.Local); got != 28 {
		t.Errorf("DaysIn(2025-02) = %d, want 28", got)
	}
	if got := DaysIn(2024, time.February, time.Local); got != 29 {
		t.Errorf("DaysIn(2024-02) = %d, want 29", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-15")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.June || d.Day() != 15 {
		t.Errorf("ParseDate returned %v", d)
	}
	if _, err := ParseDate("15-06-2025"); err == nil {
		t.Error("expected error for invalid layout")
	}
}
