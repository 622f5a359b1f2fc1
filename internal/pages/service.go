// ABOUTME: Page service composing backend fetches into dashboard, calendar, and history views.
// ABOUTME: Shared by the CLI, MCP server, and web server; every view fetches fresh data.
package pages

import (
	"context"
	"log/slog"
	"time"

	"github.com/harperreed/broccoli/internal/api"
	"github.com/harperreed/broccoli/internal/calendar"
	"github.com/harperreed/broccoli/internal/dashboard"
	"github.com/harperreed/broccoli/internal/fetchstate"
	"github.com/harperreed/broccoli/internal/history"
	"github.com/harperreed/broccoli/internal/models"
)

// Service builds page views from backend data. The full lists and the
// workout page's narrower lists live in separate stores.
type Service struct {
	backend    api.Backend
	categories *fetchstate.Store[models.Category]
	exercises  *fetchstate.Store[models.Exercise]
	records    *fetchstate.Store[models.ExerciseRecord]

	assigned     *fetchstate.Store[models.Category]
	inCategory   *fetchstate.Store[models.Exercise]
	recordsOnDay *fetchstate.Store[models.ExerciseRecord]
}

// NewService wraps a backend.
func NewService(backend api.Backend) *Service {
	return &Service{
		backend:      backend,
		categories:   fetchstate.NewStore[models.Category](),
		exercises:    fetchstate.NewStore[models.Exercise](),
		records:      fetchstate.NewStore[models.ExerciseRecord](),
		assigned:     fetchstate.NewStore[models.Category](),
		inCategory:   fetchstate.NewStore[models.Exercise](),
		recordsOnDay: fetchstate.NewStore[models.ExerciseRecord](),
	}
}

// Backend exposes the underlying backend.
func (s *Service) Backend() api.Backend {
	return s.backend
}

func result[T any](st fetchstate.State[T]) ([]T, error) {
	if st.RequestState == fetchstate.Error {
		return nil, st.Err
	}
	return st.Items, nil
}

// Categories fetches every category.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return result(s.categories.Load(ctx, s.backend.ListCategories))
}

// Exercises fetches every exercise.
func (s *Service) Exercises(ctx context.Context) ([]models.Exercise, error) {
	return result(s.exercises.Load(ctx, s.backend.ListExercises))
}

// Records fetches every exercise record.
func (s *Service) Records(ctx context.Context) ([]models.ExerciseRecord, error) {
	return result(s.records.Load(ctx, s.backend.ListRecords))
}

// CategoriesState returns the last category fetch state.
func (s *Service) CategoriesState() fetchstate.State[models.Category] {
	return s.categories.Snapshot()
}

// ExercisesState returns the last exercise fetch state.
func (s *Service) ExercisesState() fetchstate.State[models.Exercise] {
	return s.exercises.Snapshot()
}

// RecordsState returns the last record fetch state.
func (s *Service) RecordsState() fetchstate.State[models.ExerciseRecord] {
	return s.records.Snapshot()
}

// TodayState returns the last single-day record fetch state.
func (s *Service) TodayState() fetchstate.State[models.ExerciseRecord] {
	return s.recordsOnDay.Snapshot()
}

// serverCount asks the backend for its record count. Failures are logged and
// reported as zero so the surrounding view still renders.
func (s *Service) serverCount(ctx context.Context) int {
	n, err := s.backend.CountRecords(ctx)
	if err != nil {
		slog.Debug("count records failed", "error", err)
		return 0
	}
	return n
}

// Dashboard builds the dashboard relative to now.
func (s *Service) Dashboard(ctx context.Context, now time.Time) (dashboard.Summary, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}
	summary := dashboard.Build(records, now)
	summary.Stats.ServerRecords = s.serverCount(ctx)
	return summary, nil
}

// Calendar buckets every record into nav's current range.
func (s *Service) Calendar(ctx context.Context, nav *calendar.Navigator, now time.Time) (calendar.Result, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return calendar.Result{}, err
	}
	return nav.Build(now, records), nil
}

// HistoryView is one history page plus the backend's total record count.
type HistoryView struct {
	history.Page
	Filter        history.Filter `json:"filter"`
	ServerRecords int            `json:"server_records"`
}

// History filters and pages every record according to q.
func (s *Service) History(ctx context.Context, q *history.Query) (HistoryView, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return HistoryView{}, err
	}
	return HistoryView{
		Page:          q.Run(records),
		Filter:        q.Filter,
		ServerRecords: s.serverCount(ctx),
	}, nil
}

// ExerciseOptions returns the exercises selectable under categoryID, or all when it is 0.
func (s *Service) ExerciseOptions(ctx context.Context, categoryID int) ([]models.Exercise, error) {
	exercises, err := s.Exercises(ctx)
	if err != nil {
		return nil, err
	}
	return history.ExerciseOptions(exercises, categoryID), nil
}

// TodayRecords returns the records logged on now's calendar date.
func (s *Service) TodayRecords(ctx context.Context, now time.Time) ([]models.ExerciseRecord, error) {
	return result(s.recordsOnDay.Load(ctx, func(ctx context.Context) ([]models.ExerciseRecord, error) {
		return s.backend.ListRecordsOn(ctx, models.FormatDate(now))
	}))
}
