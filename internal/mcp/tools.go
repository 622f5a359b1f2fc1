// ABOUTME: MCP tool implementations for the workout tracker.
// ABOUTME: Exposes category/exercise/record management and the dashboard, calendar, and history views.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/broccoli/internal/calendar"
	"github.com/harperreed/broccoli/internal/dashboard"
	"github.com/harperreed/broccoli/internal/forms"
	"github.com/harperreed/broccoli/internal/history"
	"github.com/harperreed/broccoli/internal/models"
	"github.com/harperreed/broccoli/internal/notify"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_categories
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_categories",
		Description: "List exercise categories, optionally only those that have exercises",
	}, s.handleListCategories)

	// add_category
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_category",
		Description: "Create an exercise category (chest, legs, back, ...)",
	}, s.handleAddCategory)

	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List exercises, optionally filtered by category",
	}, s.handleListExercises)

	// add_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Create an exercise in a category",
	}, s.handleAddExercise)

	// log_record
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_record",
		Description: "Log a set (weight x reps) for an exercise, on today or a given date",
	}, s.handleLogRecord)

	// list_records_on
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_records_on",
		Description: "List the sets logged on one date (defaults to today)",
	}, s.handleListRecordsOn)

	// delete_record
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_record",
		Description: "Delete a logged set by id; requires confirm=true",
	}, s.handleDeleteRecord)

	// history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "history",
		Description: "Filter logged sets by category, exercise, and date range, 100 per page, newest first",
	}, s.handleHistory)

	// calendar
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calendar",
		Description: "Per-day set counts and heat-map intensity for a week, month, or year",
	}, s.handleCalendar)

	// dashboard
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "dashboard",
		Description: "Workout day counts, last 7 days activity, and per-category totals",
	}, s.handleDashboard)
}

// Tool input/output types

type listCategoriesInput struct {
	Assigned bool `json:"assigned,omitempty" jsonschema:"Only categories that have at least one exercise"`
}

type categoriesOutput struct {
	Categories []models.Category `json:"categories"`
	Count      int               `json:"count"`
}

type addCategoryInput struct {
	Name string `json:"name" jsonschema:"Category name (max 64 characters)"`
}

type categoryOutput struct {
	Category models.Category `json:"category"`
	Message  string          `json:"message"`
}

type listExercisesInput struct {
	CategoryID int `json:"category_id,omitempty" jsonschema:"Only exercises in this category"`
}

type exercisesOutput struct {
	Exercises []models.Exercise `json:"exercises"`
	Count     int               `json:"count"`
}

type addExerciseInput struct {
	Name       string `json:"name" jsonschema:"Exercise name (max 64 characters)"`
	CategoryID int    `json:"category_id" jsonschema:"Category the exercise belongs to"`
}

type exerciseOutput struct {
	Exercise models.Exercise `json:"exercise"`
	Message  string          `json:"message"`
}

type logRecordInput struct {
	ExerciseID int     `json:"exercise_id" jsonschema:"Exercise id"`
	Weight     float64 `json:"weight,omitempty" jsonschema:"Weight lifted"`
	Rep        int     `json:"rep" jsonschema:"Number of repetitions (at least 1)"`
	Date       string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type recordOutput struct {
	Record  models.ExerciseRecord `json:"record"`
	Message string                `json:"message"`
}

type listRecordsOnInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type recordsOutput struct {
	Date    string                  `json:"date"`
	Records []models.ExerciseRecord `json:"records"`
	Count   int                     `json:"count"`
}

type deleteRecordInput struct {
	ID      int  `json:"id" jsonschema:"Record id"`
	Confirm bool `json:"confirm" jsonschema:"Must be true to delete"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type historyInput struct {
	CategoryID int    `json:"category_id,omitempty" jsonschema:"Filter by category id"`
	ExerciseID int    `json:"exercise_id,omitempty" jsonschema:"Filter by exercise id"`
	StartDate  string `json:"start_date,omitempty" jsonschema:"Start date inclusive (YYYY-MM-DD)"`
	EndDate    string `json:"end_date,omitempty" jsonschema:"End date inclusive (YYYY-MM-DD)"`
	Page       int    `json:"page,omitempty" jsonschema:"Page number, starting at 1"`
}

type historyOutput struct {
	Records       []models.ExerciseRecord `json:"records"`
	Page          int                     `json:"page"`
	TotalPages    int                     `json:"total_pages"`
	Filtered      int                     `json:"filtered"`
	Total         int                     `json:"total"`
	ServerRecords int                     `json:"server_records"`
}

type calendarInput struct {
	View string `json:"view,omitempty" jsonschema:"week, month, or year (default month)"`
	Date string `json:"date,omitempty" jsonschema:"Any date inside the range (YYYY-MM-DD), defaults to today"`
}

type calendarDay struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Intensity string `json:"intensity"`
	InRange   bool   `json:"in_range"`
}

type calendarOutput struct {
	View       string        `json:"view"`
	Title      string        `json:"title"`
	Start      string        `json:"start"`
	End        string        `json:"end"`
	Days       []calendarDay `json:"days"`
	ActiveDays int           `json:"active_days"`
}

type dashboardInput struct{}

// Tool handlers

func (s *Server) handleListCategories(ctx context.Context, req *mcp.CallToolRequest, input listCategoriesInput) (*mcp.CallToolResult, categoriesOutput, error) {
	var (
		categories []models.Category
		err        error
	)
	if input.Assigned {
		categories, err = s.svc.WorkoutOptions(ctx)
	} else {
		categories, err = s.svc.Categories(ctx)
	}
	if err != nil {
		return nil, categoriesOutput{}, fmt.Errorf("failed to list categories: %w", err)
	}
	return nil, categoriesOutput{Categories: categories, Count: len(categories)}, nil
}

func (s *Server) handleAddCategory(ctx context.Context, req *mcp.CallToolRequest, input addCategoryInput) (*mcp.CallToolResult, categoryOutput, error) {
	c, err := s.svc.AddCategory(ctx, forms.CategoryForm{Name: input.Name})
	if err != nil {
		return nil, categoryOutput{}, fmt.Errorf("failed to create category: %w", err)
	}
	return nil, categoryOutput{
		Category: *c,
		Message:  fmt.Sprintf("Added category %s (ID: %d)", c.Name, c.ID),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, exercisesOutput, error) {
	exercises, err := s.svc.ExerciseOptions(ctx, input.CategoryID)
	if err != nil {
		return nil, exercisesOutput{}, fmt.Errorf("failed to list exercises: %w", err)
	}
	return nil, exercisesOutput{Exercises: exercises, Count: len(exercises)}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	e, err := s.svc.AddExercise(ctx, forms.ExerciseForm{Name: input.Name, CategoryID: input.CategoryID})
	if err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil, exerciseOutput{
		Exercise: *e,
		Message:  fmt.Sprintf("Added exercise %s (ID: %d)", e.Name, e.ID),
	}, nil
}

func (s *Server) handleLogRecord(ctx context.Context, req *mcp.CallToolRequest, input logRecordInput) (*mcp.CallToolResult, recordOutput, error) {
	r, err := s.svc.LogRecord(ctx, forms.RecordForm{
		ExerciseID: input.ExerciseID,
		Weight:     input.Weight,
		Rep:        input.Rep,
		Date:       input.Date,
	})
	if err != nil {
		return nil, recordOutput{}, fmt.Errorf("failed to log record: %w", err)
	}
	return nil, recordOutput{
		Record:  *r,
		Message: fmt.Sprintf("Logged %g x %d on %s (ID: %d)", r.Weight, r.Rep, r.DateKey(), r.ID),
	}, nil
}

func (s *Server) handleListRecordsOn(ctx context.Context, req *mcp.CallToolRequest, input listRecordsOnInput) (*mcp.CallToolResult, recordsOutput, error) {
	day := s.now()
	if input.Date != "" {
		d, err := models.ParseDate(input.Date)
		if err != nil {
			return nil, recordsOutput{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", input.Date)
		}
		day = d
	}
	records, err := s.svc.TodayRecords(ctx, day)
	if err != nil {
		return nil, recordsOutput{}, fmt.Errorf("failed to list records: %w", err)
	}
	return nil, recordsOutput{Date: models.FormatDate(day), Records: records, Count: len(records)}, nil
}

func (s *Server) handleDeleteRecord(ctx context.Context, req *mcp.CallToolRequest, input deleteRecordInput) (*mcp.CallToolResult, simpleOutput, error) {
	deleted, err := s.svc.DeleteRecord(ctx, input.ID, notify.Fixed(input.Confirm))
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete record: %w", err)
	}
	if !deleted {
		return nil, simpleOutput{Message: fmt.Sprintf("Not deleted: set confirm=true to delete record %d", input.ID)}, nil
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted record: %d", input.ID)}, nil
}

func (s *Server) handleHistory(ctx context.Context, req *mcp.CallToolRequest, input historyInput) (*mcp.CallToolResult, historyOutput, error) {
	q := history.NewQuery()
	q.SetCategory(input.CategoryID)
	q.SetExercise(input.ExerciseID)
	q.SetStartDate(input.StartDate)
	q.SetEndDate(input.EndDate)
	if input.Page > 0 {
		q.SetPage(input.Page)
	}

	view, err := s.svc.History(ctx, q)
	if err != nil {
		return nil, historyOutput{}, fmt.Errorf("failed to load history: %w", err)
	}
	return nil, historyOutput{
		Records:       view.Records,
		Page:          view.Page.Page,
		TotalPages:    view.TotalPages,
		Filtered:      view.Filtered,
		Total:         view.Total,
		ServerRecords: view.ServerRecords,
	}, nil
}

func (s *Server) handleCalendar(ctx context.Context, req *mcp.CallToolRequest, input calendarInput) (*mcp.CallToolResult, calendarOutput, error) {
	view := calendar.Month
	if input.View != "" {
		v, err := calendar.ParseView(input.View)
		if err != nil {
			return nil, calendarOutput{}, err
		}
		view = v
	}

	now := s.now()
	ref := now
	if input.Date != "" {
		d, err := models.ParseDate(input.Date)
		if err != nil {
			return nil, calendarOutput{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", input.Date)
		}
		ref = d
	}

	res, err := s.svc.Calendar(ctx, calendar.NewNavigator(view, ref), now)
	if err != nil {
		return nil, calendarOutput{}, fmt.Errorf("failed to load calendar: %w", err)
	}

	out := calendarOutput{
		View:  string(res.View),
		Title: res.Title,
		Start: res.Start,
		End:   res.End,
		Days:  make([]calendarDay, 0, len(res.Buckets)),
	}
	for _, b := range res.Buckets {
		out.Days = append(out.Days, calendarDay{
			Date:      b.Date,
			Count:     b.Count(),
			Intensity: b.Intensity().String(),
			InRange:   b.InRange,
		})
		if b.InRange && b.Count() > 0 {
			out.ActiveDays++
		}
	}
	return nil, out, nil
}

func (s *Server) handleDashboard(ctx context.Context, req *mcp.CallToolRequest, input dashboardInput) (*mcp.CallToolResult, dashboard.Summary, error) {
	summary, err := s.svc.Dashboard(ctx, s.now())
	if err != nil {
		return nil, dashboard.Summary{}, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return nil, summary, nil
}
