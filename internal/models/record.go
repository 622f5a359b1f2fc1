// ABOUTME: ExerciseRecord model: one logged set (weight x reps) on one date.
// ABOUTME: Carries a denormalized snapshot of the exercise and its category.
package models

// ExerciseRecord represents one logged set on one date.
type ExerciseRecord struct {
	ID           int      `json:"id" yaml:"id"`
	ExerciseID   int      `json:"exercise_id" yaml:"exercise_id"`
	Exercise     Exercise `json:"exercise" yaml:"exercise"`
	Weight       float64  `json:"weight" yaml:"weight"`
	Rep          int      `json:"rep" yaml:"rep"`
	ExerciseDate string   `json:"exercise_date" yaml:"exercise_date"`
}

// DateKey returns the YYYY-MM-DD part of ExerciseDate.
func (r ExerciseRecord) DateKey() string {
	if len(r.ExerciseDate) > len(DateLayout) {
		return r.ExerciseDate[:len(DateLayout)]
	}
	return r.ExerciseDate
}

// CategoryID returns the id of the record's category, preferring the embedded
// snapshot over exercise.category_id.
func (r ExerciseRecord) CategoryID() int {
	if r.Exercise.Category != nil {
		return r.Exercise.Category.ID
	}
	return r.Exercise.CategoryID
}

// Volume is weight times reps.
func (r ExerciseRecord) Volume() float64 {
	return r.Weight * float64(r.Rep)
}

// ExerciseRecordCreate is the body for POST /exercise_records and PUT /exercise_records/{id}.
// An empty ExerciseDate lets the backend default to today.
type ExerciseRecordCreate struct {
	ExerciseID   int     `json:"exercise_id"`
	Weight       float64 `json:"weight"`
	Rep          int     `json:"rep"`
	ExerciseDate string  `json:"exercise_date,omitempty"`
}
