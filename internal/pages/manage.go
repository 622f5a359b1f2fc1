// ABOUTME: Create, update, and delete flows for categories, exercises, and records.
// ABOUTME: Forms are validated before any request; deletes ask a Confirmer first.
package pages

import (
	"context"
	"fmt"

	"github.com/harperreed/broccoli/internal/forms"
	"github.com/harperreed/broccoli/internal/models"
	"github.com/harperreed/broccoli/internal/notify"
)

// WorkoutOptions returns the categories that have exercises, for the workout entry form.
func (s *Service) WorkoutOptions(ctx context.Context) ([]models.Category, error) {
	return result(s.assigned.Load(ctx, s.backend.ListAssignedCategories))
}

// ExercisesIn returns the exercises of one category, for the workout entry form.
func (s *Service) ExercisesIn(ctx context.Context, categoryID int) ([]models.Exercise, error) {
	return result(s.inCategory.Load(ctx, func(ctx context.Context) ([]models.Exercise, error) {
		return s.backend.ListExercisesByCategory(ctx, categoryID)
	}))
}

// LogRecord validates f and creates the record.
func (s *Service) LogRecord(ctx context.Context, f forms.RecordForm) (*models.ExerciseRecord, error) {
	body, err := f.ToCreate()
	if err != nil {
		return nil, err
	}
	return s.backend.CreateRecord(ctx, body)
}

// EditRecord validates f and replaces record id.
func (s *Service) EditRecord(ctx context.Context, id int, f forms.RecordForm) (*models.ExerciseRecord, error) {
	body, err := f.ToCreate()
	if err != nil {
		return nil, err
	}
	return s.backend.UpdateRecord(ctx, id, body)
}

// RecordForm loads record id into an editable form.
func (s *Service) RecordForm(ctx context.Context, id int) (forms.RecordForm, error) {
	r, err := s.backend.GetRecord(ctx, id)
	if err != nil {
		return forms.RecordForm{}, err
	}
	return forms.RecordForm{
		CategoryID: r.CategoryID(),
		ExerciseID: r.ExerciseID,
		Weight:     r.Weight,
		Rep:        r.Rep,
		Date:       r.DateKey(),
	}, nil
}

// AddCategory validates f and creates the category.
func (s *Service) AddCategory(ctx context.Context, f forms.CategoryForm) (*models.Category, error) {
	body, err := f.ToCreate()
	if err != nil {
		return nil, err
	}
	return s.backend.CreateCategory(ctx, body)
}

// RenameCategory validates f and updates category id.
func (s *Service) RenameCategory(ctx context.Context, id int, f forms.CategoryForm) (*models.Category, error) {
	body, err := f.ToCreate()
	if err != nil {
		return nil, err
	}
	return s.backend.UpdateCategory(ctx, id, body)
}

// AddExercise validates f and creates the exercise.
func (s *Service) AddExercise(ctx context.Context, f forms.ExerciseForm) (*models.Exercise, error) {
	body, err := f.ToCreate()
	if err != nil {
		return nil, err
	}
	return s.backend.CreateExercise(ctx, body)
}

// EditExercise validates f and updates exercise id.
func (s *Service) EditExercise(ctx context.Context, id int, f forms.ExerciseForm) (*models.Exercise, error) {
	body, err := f.ToCreate()
	if err != nil {
		return nil, err
	}
	return s.backend.UpdateExercise(ctx, id, body)
}

// DeleteCategory asks c, then deletes category id. It reports whether the delete happened.
func (s *Service) DeleteCategory(ctx context.Context, id int, c notify.Confirmer) (bool, error) {
	return s.confirmThen(ctx, c, fmt.Sprintf("Delete category %d?", id), func() error {
		return s.backend.DeleteCategory(ctx, id)
	})
}

// DeleteExercise asks c, then deletes exercise id.
func (s *Service) DeleteExercise(ctx context.Context, id int, c notify.Confirmer) (bool, error) {
	return s.confirmThen(ctx, c, fmt.Sprintf("Delete exercise %d?", id), func() error {
		return s.backend.DeleteExercise(ctx, id)
	})
}

// DeleteRecord asks c, then deletes record id.
func (s *Service) DeleteRecord(ctx context.Context, id int, c notify.Confirmer) (bool, error) {
	return s.confirmThen(ctx, c, fmt.Sprintf("Delete record %d?", id), func() error {
		return s.backend.DeleteRecord(ctx, id)
	})
}

func (s *Service) confirmThen(ctx context.Context, c notify.Confirmer, prompt string, del func() error) (bool, error) {
	ok, err := c.Confirm(ctx, prompt)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := del(); err != nil {
		return false, err
	}
	return true, nil
}
