// ABOUTME: Export and import of workout data fetched from the backend.
// ABOUTME: Supports JSON, YAML, and Markdown export formats and JSON import.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/broccoli/internal/api"
	"github.com/harperreed/broccoli/internal/history"
	"github.com/harperreed/broccoli/internal/models"
	"gopkg.in/yaml.v3"
)

// Data is the full export document.
type Data struct {
	Version    string                  `json:"version" yaml:"version"`
	ExportedAt time.Time               `json:"exported_at" yaml:"exported_at"`
	Tool       string                  `json:"tool" yaml:"tool"`
	Categories []models.Category       `json:"categories" yaml:"categories"`
	Exercises  []models.Exercise       `json:"exercises" yaml:"exercises"`
	Records    []models.ExerciseRecord `json:"records" yaml:"records"`
}

// Collect fetches everything from the backend. A non-empty since keeps only
// records dated on or after it.
func Collect(ctx context.Context, b api.Backend, since string, now time.Time) (*Data, error) {
	categories, err := b.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	exercises, err := b.ListExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	records, err := b.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	records = history.Apply(records, history.Filter{StartDate: since})
	history.SortNewestFirst(records)

	return &Data{
		Version:    "1.0",
		ExportedAt: now,
		Tool:       "broccoli",
		Categories: categories,
		Exercises:  exercises,
		Records:    records,
	}, nil
}

// JSON renders d as indented JSON.
func JSON(d *Data) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML renders d with records grouped by date.
func YAML(d *Data) ([]byte, error) {
	yamlData := struct {
		Version    string                  `yaml:"version"`
		ExportedAt string                  `yaml:"exported_at"`
		Tool       string                  `yaml:"tool"`
		Categories []yamlCategory          `yaml:"categories"`
		Records    map[string][]yamlRecord `yaml:"records"`
	}{
		Version:    d.Version,
		ExportedAt: d.ExportedAt.Format(time.RFC3339),
		Tool:       d.Tool,
		Categories: make([]yamlCategory, 0, len(d.Categories)),
		Records:    make(map[string][]yamlRecord),
	}

	for _, c := range d.Categories {
		yc := yamlCategory{Name: c.Name}
		for _, e := range d.Exercises {
			if e.CategoryID == c.ID {
				yc.Exercises = append(yc.Exercises, e.Name)
			}
		}
		yamlData.Categories = append(yamlData.Categories, yc)
	}

	for _, r := range d.Records {
		date := r.DateKey()
		yamlData.Records[date] = append(yamlData.Records[date], yamlRecord{
			Exercise: exerciseName(r),
			Weight:   r.Weight,
			Rep:      r.Rep,
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlCategory struct {
	Name      string   `yaml:"name"`
	Exercises []string `yaml:"exercises,omitempty"`
}

type yamlRecord struct {
	Exercise string  `yaml:"exercise"`
	Weight   float64 `yaml:"weight"`
	Rep      int     `yaml:"rep"`
}

func exerciseName(r models.ExerciseRecord) string {
	if r.Exercise.Name != "" {
		return r.Exercise.Name
	}
	return fmt.Sprintf("exercise #%d", r.ExerciseID)
}

// Markdown renders d as one table per workout date, newest first.
func Markdown(d *Data) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Workout Export - %s\n\n", d.ExportedAt.Format(models.DateLayout)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", d.ExportedAt.Format(time.RFC3339)))

	grouped := make(map[string][]models.ExerciseRecord)
	for _, r := range d.Records {
		grouped[r.DateKey()] = append(grouped[r.DateKey()], r)
	}

	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	for _, date := range dates {
		sb.WriteString(fmt.Sprintf("## %s\n\n", date))
		sb.WriteString("| Exercise | Category | Weight | Reps |\n")
		sb.WriteString("|----------|----------|--------|------|\n")
		for _, r := range grouped[date] {
			sb.WriteString(fmt.Sprintf("| %s | %s | %g | %d |\n",
				exerciseName(r), r.Exercise.CategoryName(), r.Weight, r.Rep))
		}
		sb.WriteString("\n")
	}

	if len(d.Categories) > 0 {
		sb.WriteString("## Categories\n\n")
		for _, c := range d.Categories {
			var names []string
			for _, e := range d.Exercises {
				if e.CategoryID == c.ID {
					names = append(names, e.Name)
				}
			}
			if len(names) == 0 {
				sb.WriteString(fmt.Sprintf("- %s\n", c.Name))
				continue
			}
			sb.WriteString(fmt.Sprintf("- %s: %s\n", c.Name, strings.Join(names, ", ")))
		}
	}

	return sb.String()
}

// ImportJSON parses a JSON export and replays it into the backend.
func ImportJSON(ctx context.Context, b api.Backend, raw []byte) (*ImportResult, error) {
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return Import(ctx, b, &d)
}

// ImportResult counts what an import created.
type ImportResult struct {
	Categories int `json:"categories"`
	Exercises  int `json:"exercises"`
	Records    int `json:"records"`
}

// Import recreates d's categories, exercises, and records on the backend.
// The backend assigns new ids; references are remapped as entities are created.
func Import(ctx context.Context, b api.Backend, d *Data) (*ImportResult, error) {
	res := &ImportResult{}
	categoryIDs := make(map[int]int, len(d.Categories))
	exerciseIDs := make(map[int]int, len(d.Exercises))

	for _, c := range d.Categories {
		created, err := b.CreateCategory(ctx, models.CategoryCreate{Name: c.Name})
		if err != nil {
			return res, fmt.Errorf("import category %q: %w", c.Name, err)
		}
		categoryIDs[c.ID] = created.ID
		res.Categories++
	}

	for _, e := range d.Exercises {
		categoryID, ok := categoryIDs[e.CategoryID]
		if !ok {
			return res, fmt.Errorf("import exercise %q: unknown category %d", e.Name, e.CategoryID)
		}
		created, err := b.CreateExercise(ctx, models.ExerciseCreate{Name: e.Name, CategoryID: categoryID})
		if err != nil {
			return res, fmt.Errorf("import exercise %q: %w", e.Name, err)
		}
		exerciseIDs[e.ID] = created.ID
		res.Exercises++
	}

	for _, r := range d.Records {
		exerciseID, ok := exerciseIDs[r.ExerciseID]
		if !ok {
			return res, fmt.Errorf("import record %d: unknown exercise %d", r.ID, r.ExerciseID)
		}
		_, err := b.CreateRecord(ctx, models.ExerciseRecordCreate{
			ExerciseID:   exerciseID,
			Weight:       r.Weight,
			Rep:          r.Rep,
			ExerciseDate: r.DateKey(),
		})
		if err != nil {
			return res, fmt.Errorf("import record %d: %w", r.ID, err)
		}
		res.Records++
	}

	return res, nil
}
