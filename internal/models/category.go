// ABOUTME: Category and Exercise models mirroring the backend schemas.
// ABOUTME: Includes the request bodies used to create and update them.
package models

// MaxNameLength is the longest category or exercise name the backend accepts.
const MaxNameLength = 64

// Category groups exercises (chest, legs, back, ...).
type Category struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CategoryCreate is the body for POST /categories and PUT /categories/{id}.
type CategoryCreate struct {
	Name string `json:"name"`
}

// Exercise is a named movement that belongs to exactly one Category.
// The embedded Category may be nil in transit.
type Exercise struct {
	ID         int       `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	CategoryID int       `json:"category_id" yaml:"category_id"`
	Category   *Category `json:"category,omitempty" yaml:"category,omitempty"`
}

// CategoryName returns the embedded category name, or "" when it was not sent.
func (e Exercise) CategoryName() string {
	if e.Category == nil {
		return ""
	}
	return e.Category.Name
}

// ExerciseCreate is the body for POST /exercises and PUT /exercises/{id}.
type ExerciseCreate struct {
	Name       string `json:"name"`
	CategoryID int    `json:"category_id"`
}
