// ABOUTME: Typed endpoint wrappers for categories, exercises, and exercise records.
// ABOUTME: One method per REST call; each maps JSON to the matching model.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/harperreed/broccoli/internal/models"
)

// ListCategories fetches every category.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.do(ctx, "list_categories", http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// ListAssignedCategories fetches the categories that have at least one exercise.
func (c *Client) ListAssignedCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.do(ctx, "list_assigned_categories", http.MethodGet, "/categories/assigned", nil, &out); err != nil {
		return nil, fmt.Errorf("list assigned categories: %w", err)
	}
	return out, nil
}

// GetCategory fetches one category. The backend answers unknown ids with null.
func (c *Client) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	var out *models.Category
	if err := c.do(ctx, "get_category", http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, &out); err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	if out == nil {
		return nil, fmt.Errorf("get category %d: %w", id, ErrNotFound)
	}
	return out, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, body models.CategoryCreate) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, "create_category", http.MethodPost, "/categories", body, &out); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &out, nil
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, id int, body models.CategoryCreate) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, "update_category", http.MethodPut, fmt.Sprintf("/categories/%d", id), body, &out); err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return &out, nil
}

// DeleteCategory deletes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	if err := c.do(ctx, "delete_category", http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}

// ListExercises fetches every exercise.
func (c *Client) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	var out []models.Exercise
	if err := c.do(ctx, "list_exercises", http.MethodGet, "/exercises", nil, &out); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return out, nil
}

// ListExercisesByCategory fetches the exercises of one category.
func (c *Client) ListExercisesByCategory(ctx context.Context, categoryID int) ([]models.Exercise, error) {
	var out []models.Exercise
	path := fmt.Sprintf("/exercises/category/%d", categoryID)
	if err := c.do(ctx, "list_exercises_by_category", http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("list exercises for category %d: %w", categoryID, err)
	}
	return out, nil
}

// GetExercise fetches one exercise.
func (c *Client) GetExercise(ctx context.Context, id int) (*models.Exercise, error) {
	var out *models.Exercise
	if err := c.do(ctx, "get_exercise", http.MethodGet, fmt.Sprintf("/exercises/%d", id), nil, &out); err != nil {
		return nil, fmt.Errorf("get exercise %d: %w", id, err)
	}
	if out == nil {
		return nil, fmt.Errorf("get exercise %d: %w", id, ErrNotFound)
	}
	return out, nil
}

// CreateExercise creates an exercise.
func (c *Client) CreateExercise(ctx context.Context, body models.ExerciseCreate) (*models.Exercise, error) {
	var out models.Exercise
	if err := c.do(ctx, "create_exercise", http.MethodPost, "/exercises", body, &out); err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	return &out, nil
}

// UpdateExercise updates an exercise.
func (c *Client) UpdateExercise(ctx context.Context, id int, body models.ExerciseCreate) (*models.Exercise, error) {
	var out models.Exercise
	if err := c.do(ctx, "update_exercise", http.MethodPut, fmt.Sprintf("/exercises/%d", id), body, &out); err != nil {
		return nil, fmt.Errorf("update exercise %d: %w", id, err)
	}
	return &out, nil
}

// DeleteExercise deletes an exercise.
func (c *Client) DeleteExercise(ctx context.Context, id int) error {
	if err := c.do(ctx, "delete_exercise", http.MethodDelete, fmt.Sprintf("/exercises/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete exercise %d: %w", id, err)
	}
	return nil
}

// ListRecords fetches every exercise record.
func (c *Client) ListRecords(ctx context.Context) ([]models.ExerciseRecord, error) {
	var out []models.ExerciseRecord
	if err := c.do(ctx, "list_records", http.MethodGet, "/exercise_records", nil, &out); err != nil {
		return nil, fmt.Errorf("list exercise records: %w", err)
	}
	return out, nil
}

// ListRecordsOn fetches the records the backend reports for one YYYY-MM-DD date.
func (c *Client) ListRecordsOn(ctx context.Context, date string) ([]models.ExerciseRecord, error) {
	var out []models.ExerciseRecord
	path := "/exercise_records?" + url.Values{"date": []string{date}}.Encode()
	if err := c.do(ctx, "list_records_on", http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("list exercise records on %s: %w", date, err)
	}
	return out, nil
}

// GetRecord fetches one exercise record.
func (c *Client) GetRecord(ctx context.Context, id int) (*models.ExerciseRecord, error) {
	var out *models.ExerciseRecord
	if err := c.do(ctx, "get_record", http.MethodGet, fmt.Sprintf("/exercise_records/%d", id), nil, &out); err != nil {
		return nil, fmt.Errorf("get exercise record %d: %w", id, err)
	}
	if out == nil {
		return nil, fmt.Errorf("get exercise record %d: %w", id, ErrNotFound)
	}
	return out, nil
}

// CreateRecord logs a set.
func (c *Client) CreateRecord(ctx context.Context, body models.ExerciseRecordCreate) (*models.ExerciseRecord, error) {
	var out models.ExerciseRecord
	if err := c.do(ctx, "create_record", http.MethodPost, "/exercise_records", body, &out); err != nil {
		return nil, fmt.Errorf("create exercise record: %w", err)
	}
	return &out, nil
}

// UpdateRecord updates a logged set.
func (c *Client) UpdateRecord(ctx context.Context, id int, body models.ExerciseRecordCreate) (*models.ExerciseRecord, error) {
	var out models.ExerciseRecord
	path := fmt.Sprintf("/exercise_records/%d", id)
	if err := c.do(ctx, "update_record", http.MethodPut, path, body, &out); err != nil {
		return nil, fmt.Errorf("update exercise record %d: %w", id, err)
	}
	return &out, nil
}

// DeleteRecord deletes a logged set.
func (c *Client) DeleteRecord(ctx context.Context, id int) error {
	path := fmt.Sprintf("/exercise_records/%d", id)
	if err := c.do(ctx, "delete_record", http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete exercise record %d: %w", id, err)
	}
	return nil
}

// CountRecords returns the number of records stored on the backend.
// Both a bare integer and {"count": n} are accepted.
func (c *Client) CountRecords(ctx context.Context) (int, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "count_records", http.MethodGet, "/exercise_records/count", nil, &raw); err != nil {
		return 0, fmt.Errorf("count exercise records: %w", err)
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var wrapped struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return 0, fmt.Errorf("decode exercise record count: %w", err)
	}
	return wrapped.Count, nil
}
