// ABOUTME: In-memory Backend for tests of views, commands, and servers.
// ABOUTME: Mimics the REST backend's embedding of exercises and categories.
package apitest

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/harperreed/broccoli/internal/api"
	"github.com/harperreed/broccoli/internal/models"
)

// Fake is a thread-safe in-memory api.Backend.
type Fake struct {
	mu         sync.Mutex
	nextID     int
	categories []models.Category
	exercises  []models.Exercise
	records    []models.ExerciseRecord

	// Err, when set, is returned by every call.
	Err error
	// Now supplies the default exercise_date for new records.
	Now func() time.Time
	// Calls counts calls by method name.
	Calls map[string]int
}

// NewFake returns an empty fake.
func NewFake() *Fake {
	return &Fake{Now: time.Now, Calls: make(map[string]int)}
}

var _ api.Backend = (*Fake)(nil)

func (f *Fake) enter(name string) error {
	f.Calls[name]++
	return f.Err
}

func (f *Fake) id() int {
	f.nextID++
	return f.nextID
}

func notFound(op, path string) error {
	return &api.Error{Op: op, Method: http.MethodGet, Path: path, StatusCode: http.StatusNotFound, Status: "404 Not Found"}
}

// AddCategory seeds a category and returns it.
func (f *Fake) AddCategory(name string) models.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := models.Category{ID: f.id(), Name: name}
	f.categories = append(f.categories, c)
	return c
}

// AddExercise seeds an exercise and returns it.
func (f *Fake) AddExercise(name string, categoryID int) models.Exercise {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := f.embedExercise(models.Exercise{ID: f.id(), Name: name, CategoryID: categoryID})
	f.exercises = append(f.exercises, e)
	return e
}

// AddRecord seeds a record and returns it.
func (f *Fake) AddRecord(exerciseID int, weight float64, rep int, date string) models.ExerciseRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := models.ExerciseRecord{ID: f.id(), ExerciseID: exerciseID, Weight: weight, Rep: rep, ExerciseDate: date}
	r.Exercise = f.findExercise(exerciseID)
	f.records = append(f.records, r)
	return r
}

func (f *Fake) embedExercise(e models.Exercise) models.Exercise {
	e.Category = nil
	for _, c := range f.categories {
		if c.ID == e.CategoryID {
			c := c
			e.Category = &c
		}
	}
	return e
}

func (f *Fake) findExercise(id int) models.Exercise {
	for _, e := range f.exercises {
		if e.ID == id {
			return e
		}
	}
	return models.Exercise{ID: id}
}

func (f *Fake) ListCategories(ctx context.Context) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ListCategories"); err != nil {
		return nil, err
	}
	return slices.Clone(f.categories), nil
}

func (f *Fake) ListAssignedCategories(ctx context.Context) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ListAssignedCategories"); err != nil {
		return nil, err
	}
	var out []models.Category
	for _, c := range f.categories {
		if slices.ContainsFunc(f.exercises, func(e models.Exercise) bool { return e.CategoryID == c.ID }) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *Fake) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("GetCategory"); err != nil {
		return nil, err
	}
	for _, c := range f.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("get category %d: %w", id, api.ErrNotFound)
}

func (f *Fake) CreateCategory(ctx context.Context, body models.CategoryCreate) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateCategory"); err != nil {
		return nil, err
	}
	c := models.Category{ID: f.id(), Name: body.Name}
	f.categories = append(f.categories, c)
	return &c, nil
}

func (f *Fake) UpdateCategory(ctx context.Context, id int, body models.CategoryCreate) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("UpdateCategory"); err != nil {
		return nil, err
	}
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories[i].Name = body.Name
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, notFound("update_category", fmt.Sprintf("/categories/%d", id))
}

func (f *Fake) DeleteCategory(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("DeleteCategory"); err != nil {
		return err
	}
	n := len(f.categories)
	f.categories = slices.DeleteFunc(f.categories, func(c models.Category) bool { return c.ID == id })
	if len(f.categories) == n {
		return notFound("delete_category", fmt.Sprintf("/categories/%d", id))
	}
	return nil
}

func (f *Fake) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ListExercises"); err != nil {
		return nil, err
	}
	return slices.Clone(f.exercises), nil
}

func (f *Fake) ListExercisesByCategory(ctx context.Context, categoryID int) ([]models.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ListExercisesByCategory"); err != nil {
		return nil, err
	}
	var out []models.Exercise
	for _, e := range f.exercises {
		if e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *Fake) GetExercise(ctx context.Context, id int) (*models.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("GetExercise"); err != nil {
		return nil, err
	}
	for _, e := range f.exercises {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("get exercise %d: %w", id, api.ErrNotFound)
}

func (f *Fake) CreateExercise(ctx context.Context, body models.ExerciseCreate) (*models.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateExercise"); err != nil {
		return nil, err
	}
	e := f.embedExercise(models.Exercise{ID: f.id(), Name: body.Name, CategoryID: body.CategoryID})
	f.exercises = append(f.exercises, e)
	return &e, nil
}

func (f *Fake) UpdateExercise(ctx context.Context, id int, body models.ExerciseCreate) (*models.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("UpdateExercise"); err != nil {
		return nil, err
	}
	for i := range f.exercises {
		if f.exercises[i].ID == id {
			f.exercises[i] = f.embedExercise(models.Exercise{ID: id, Name: body.Name, CategoryID: body.CategoryID})
			e := f.exercises[i]
			return &e, nil
		}
	}
	return nil, notFound("update_exercise", fmt.Sprintf("/exercises/%d", id))
}

func (f *Fake) DeleteExercise(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("DeleteExercise"); err != nil {
		return err
	}
	n := len(f.exercises)
	f.exercises = slices.DeleteFunc(f.exercises, func(e models.Exercise) bool { return e.ID == id })
	if len(f.exercises) == n {
		return notFound("delete_exercise", fmt.Sprintf("/exercises/%d", id))
	}
	return nil
}

func (f *Fake) ListRecords(ctx context.Context) ([]models.ExerciseRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ListRecords"); err != nil {
		return nil, err
	}
	return slices.Clone(f.records), nil
}

func (f *Fake) ListRecordsOn(ctx context.Context, date string) ([]models.ExerciseRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ListRecordsOn"); err != nil {
		return nil, err
	}
	var out []models.ExerciseRecord
	for _, r := range f.records {
		if r.DateKey() == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *Fake) GetRecord(ctx context.Context, id int) (*models.ExerciseRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("GetRecord"); err != nil {
		return nil, err
	}
	for _, r := range f.records {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, fmt.Errorf("get exercise record %d: %w", id, api.ErrNotFound)
}

func (f *Fake) CreateRecord(ctx context.Context, body models.ExerciseRecordCreate) (*models.ExerciseRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateRecord"); err != nil {
		return nil, err
	}
	date := body.ExerciseDate
	if date == "" {
		date = models.FormatDate(f.Now())
	}
	r := models.ExerciseRecord{
		ID:           f.id(),
		ExerciseID:   body.ExerciseID,
		Exercise:     f.findExercise(body.ExerciseID),
		Weight:       body.Weight,
		Rep:          body.Rep,
		ExerciseDate: date,
	}
	f.records = append(f.records, r)
	return &r, nil
}

func (f *Fake) UpdateRecord(ctx context.Context, id int, body models.ExerciseRecordCreate) (*models.ExerciseRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("UpdateRecord"); err != nil {
		return nil, err
	}
	for i := range f.records {
		if f.records[i].ID == id {
			r := &f.records[i]
			r.ExerciseID = body.ExerciseID
			r.Exercise = f.findExercise(body.ExerciseID)
			r.Weight = body.Weight
			r.Rep = body.Rep
			if body.ExerciseDate != "" {
				r.ExerciseDate = body.ExerciseDate
			}
			out := *r
			return &out, nil
		}
	}
	return nil, notFound("update_record", fmt.Sprintf("/exercise_records/%d", id))
}

func (f *Fake) DeleteRecord(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("DeleteRecord"); err != nil {
		return err
	}
	n := len(f.records)
	f.records = slices.DeleteFunc(f.records, func(r models.ExerciseRecord) bool { return r.ID == id })
	if len(f.records) == n {
		return notFound("delete_record", fmt.Sprintf("/exercise_records/%d", id))
	}
	return nil
}

func (f *Fake) CountRecords(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CountRecords"); err != nil {
		return 0, err
	}
	return len(f.records), nil
}
