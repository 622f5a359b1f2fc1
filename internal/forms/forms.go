// ABOUTME: Editable form state for records, categories, and exercises.
// ABOUTME: Each form has a closed set of actions, a reducer, and validation.
package forms

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/harperreed/broccoli/internal/models"
)

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range fieldOrder {
		if msg, ok := e.Fields[f]; ok {
			parts = append(parts, f+": "+msg)
		}
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

var fieldOrder = []string{"name", "category", "exercise", "weight", "rep", "date"}

type checker map[string]string

func (c checker) add(field, format string, args ...any) {
	if _, ok := c[field]; !ok {
		c[field] = fmt.Sprintf(format, args...)
	}
}

func (c checker) err() error {
	if len(c) == 0 {
		return nil
	}
	return &ValidationError{Fields: c}
}

func checkName(c checker, name string) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		c.add("name", "is required")
	case utf8.RuneCountInString(name) > models.MaxNameLength:
		c.add("name", "must be at most %d characters", models.MaxNameLength)
	}
}

// CategoryForm is the category create/edit form.
type CategoryForm struct {
	Name string
}

// CategoryAction mutates a CategoryForm.
type CategoryAction interface {
	isCategoryAction()
}

// SetCategoryName replaces the category name.
type SetCategoryName struct{ Name string }

func (SetCategoryName) isCategoryAction() {}

// ReduceCategory applies one action. Unknown actions panic.
func ReduceCategory(f CategoryForm, a CategoryAction) CategoryForm {
	switch a := a.(type) {
	case SetCategoryName:
		f.Name = a.Name
	default:
		panic(fmt.Sprintf("forms: unknown category action %T", a))
	}
	return f
}

// Validate checks the form.
func (f CategoryForm) Validate() error {
	c := checker{}
	checkName(c, f.Name)
	return c.err()
}

// ToCreate validates the form and builds the request body.
func (f CategoryForm) ToCreate() (models.CategoryCreate, error) {
	if err := f.Validate(); err != nil {
		return models.CategoryCreate{}, err
	}
	return models.CategoryCreate{Name: strings.TrimSpace(f.Name)}, nil
}

// ExerciseForm is the exercise create/edit form.
type ExerciseForm struct {
	Name       string
	CategoryID int
}

// ExerciseAction mutates an ExerciseForm.
type ExerciseAction interface {
	isExerciseAction()
}

// SetExerciseName replaces the exercise name.
type SetExerciseName struct{ Name string }

// SetExerciseCategory moves the exercise to another category.
type SetExerciseCategory struct{ CategoryID int }

func (SetExerciseName) isExerciseAction()     {}
func (SetExerciseCategory) isExerciseAction() {}

// ReduceExercise applies one action. Unknown actions panic.
func ReduceExercise(f ExerciseForm, a ExerciseAction) ExerciseForm {
	switch a := a.(type) {
	case SetExerciseName:
		f.Name = a.Name
	case SetExerciseCategory:
		f.CategoryID = a.CategoryID
	default:
		panic(fmt.Sprintf("forms: unknown exercise action %T", a))
	}
	return f
}

// Validate checks the form.
func (f ExerciseForm) Validate() error {
	c := checker{}
	checkName(c, f.Name)
	if f.CategoryID <= 0 {
		c.add("category", "is required")
	}
	return c.err()
}

// ToCreate validates the form and builds the request body.
func (f ExerciseForm) ToCreate() (models.ExerciseCreate, error) {
	if err := f.Validate(); err != nil {
		return models.ExerciseCreate{}, err
	}
	return models.ExerciseCreate{Name: strings.TrimSpace(f.Name), CategoryID: f.CategoryID}, nil
}

// RecordForm is the workout entry form. CategoryID only narrows the exercise list.
type RecordForm struct {
	CategoryID int     `json:"category_id"`
	ExerciseID int     `json:"exercise_id"`
	Weight     float64 `json:"weight"`
	Rep        int     `json:"rep"`
	Date       string  `json:"exercise_date"`
}

// NewRecordForm returns the form's initial values: one rep, no weight, backend-default date.
func NewRecordForm() RecordForm {
	return RecordForm{Rep: 1}
}

// RecordAction mutates a RecordForm.
type RecordAction interface {
	isRecordAction()
}

// SelectCategory narrows the exercise choice and clears the selected exercise.
type SelectCategory struct{ CategoryID int }

// SelectExercise picks the exercise.
type SelectExercise struct{ ExerciseID int }

// SetWeight sets the weight.
type SetWeight struct{ Weight float64 }

// SetRep sets the rep count.
type SetRep struct{ Rep int }

// SetDate sets the YYYY-MM-DD date; empty means today on the backend.
type SetDate struct{ Date string }

func (SelectCategory) isRecordAction() {}
func (SelectExercise) isRecordAction() {}
func (SetWeight) isRecordAction()      {}
func (SetRep) isRecordAction()         {}
func (SetDate) isRecordAction()        {}

// ReduceRecord applies one action. Unknown actions panic.
func ReduceRecord(f RecordForm, a RecordAction) RecordForm {
	switch a := a.(type) {
	case SelectCategory:
		f.CategoryID = a.CategoryID
		f.ExerciseID = 0
	case SelectExercise:
		f.ExerciseID = a.ExerciseID
	case SetWeight:
		f.Weight = a.Weight
	case SetRep:
		f.Rep = a.Rep
	case SetDate:
		f.Date = a.Date
	default:
		panic(fmt.Sprintf("forms: unknown record action %T", a))
	}
	return f
}

// Validate checks the form.
func (f RecordForm) Validate() error {
	c := checker{}
	if f.ExerciseID <= 0 {
		c.add("exercise", "is required")
	}
	if f.Weight < 0 {
		c.add("weight", "must not be negative")
	}
	if f.Rep < 1 {
		c.add("rep", "must be at least 1")
	}
	if f.Date != "" {
		if _, err := models.ParseDate(f.Date); err != nil {
			c.add("date", "must be YYYY-MM-DD")
		}
	}
	return c.err()
}

// ToCreate validates the form and builds the request body.
func (f RecordForm) ToCreate() (models.ExerciseRecordCreate, error) {
	if err := f.Validate(); err != nil {
		return models.ExerciseRecordCreate{}, err
	}
	return models.ExerciseRecordCreate{
		ExerciseID:   f.ExerciseID,
		Weight:       f.Weight,
		Rep:          f.Rep,
		ExerciseDate: f.Date,
	}, nil
}
