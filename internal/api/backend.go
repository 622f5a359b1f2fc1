// ABOUTME: Backend interface for the workout REST API.
// ABOUTME: Lets views and commands swap the HTTP client for a fake in tests.
package api

import (
	"context"

	"github.com/harperreed/broccoli/internal/models"
)

// Backend is the REST surface consumed by the client.
type Backend interface {
	// Category operations
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListAssignedCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int) (*models.Category, error)
	CreateCategory(ctx context.Context, body models.CategoryCreate) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int, body models.CategoryCreate) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	// Exercise operations
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	ListExercisesByCategory(ctx context.Context, categoryID int) ([]models.Exercise, error)
	GetExercise(ctx context.Context, id int) (*models.Exercise, error)
	CreateExercise(ctx context.Context, body models.ExerciseCreate) (*models.Exercise, error)
	UpdateExercise(ctx context.Context, id int, body models.ExerciseCreate) (*models.Exercise, error)
	DeleteExercise(ctx context.Context, id int) error

	// Exercise record operations
	ListRecords(ctx context.Context) ([]models.ExerciseRecord, error)
	ListRecordsOn(ctx context.Context, date string) ([]models.ExerciseRecord, error)
	GetRecord(ctx context.Context, id int) (*models.ExerciseRecord, error)
	CreateRecord(ctx context.Context, body models.ExerciseRecordCreate) (*models.ExerciseRecord, error)
	UpdateRecord(ctx context.Context, id int, body models.ExerciseRecordCreate) (*models.ExerciseRecord, error)
	DeleteRecord(ctx context.Context, id int) error
	CountRecords(ctx context.Context) (int, error)
}

// Compile-time check that Client implements Backend.
var _ Backend = (*Client)(nil)
