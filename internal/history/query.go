// ABOUTME: History query state: the active filter plus the current page.
// ABOUTME: Any filter change resets to page 1; a new category clears the exercise.
package history

import "github.com/harperreed/broccoli/internal/models"

// Query is the history page's interactive state.
type Query struct {
	Filter Filter `json:"filter"`
	Page   int    `json:"page"`
}

// NewQuery starts on page 1 with no filters.
func NewQuery() *Query {
	return &Query{Page: 1}
}

// SetCategory selects a category and resets the exercise to all.
func (q *Query) SetCategory(id int) {
	q.Filter.CategoryID = id
	q.Filter.ExerciseID = 0
	q.Page = 1
}

// SetExercise selects an exercise.
func (q *Query) SetExercise(id int) {
	q.Filter.ExerciseID = id
	q.Page = 1
}

// SetStartDate sets the inclusive lower date bound.
func (q *Query) SetStartDate(date string) {
	q.Filter.StartDate = date
	q.Page = 1
}

// SetEndDate sets the inclusive upper date bound.
func (q *Query) SetEndDate(date string) {
	q.Filter.EndDate = date
	q.Page = 1
}

// SetPage jumps to page.
func (q *Query) SetPage(page int) {
	q.Page = page
}

// Reset clears every filter and returns to page 1.
func (q *Query) Reset() {
	q.Filter = Filter{}
	q.Page = 1
}

// Page is one rendered history page.
type Page struct {
	Records    []models.ExerciseRecord `json:"records"`
	Page       int                     `json:"page"`
	TotalPages int                     `json:"total_pages"`
	Filtered   int                     `json:"filtered"`
	Total      int                     `json:"total"`
}

// Run filters, sorts newest first, and slices out the query's page.
// The page number is clamped into range.
func (q *Query) Run(records []models.ExerciseRecord) Page {
	filtered := Apply(records, q.Filter)
	SortNewestFirst(filtered)

	page := ClampPage(q.Page, len(filtered))
	return Page{
		Records:    Paginate(filtered, page),
		Page:       page,
		TotalPages: TotalPages(len(filtered)),
		Filtered:   len(filtered),
		Total:      len(records),
	}
}
