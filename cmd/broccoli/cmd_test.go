// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Commands run through rootCmd against an in-memory fake backend.
package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/broccoli/internal/api"
	"github.com/harperreed/broccoli/internal/api/apitest"
	"github.com/harperreed/broccoli/internal/config"
	"github.com/harperreed/broccoli/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func init() {
	color.NoColor = true
}

func TestParseID(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseID(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("parseID(%q) = %d, %v; want %d", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string no truncation", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world this is a long string", 10, "hello w..."},
		{"empty string", "", 10, ""},
		{"very short maxLen", "hello", 3, "..."},
		{"multibyte", "Überkopfdrücken", 8, "Überk..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{"needs padding", "abc", 6, "abc   "},
		{"exact length", "abcdef", 6, "abcdef"},
		{"longer than length", "abcdefgh", 6, "abcdefgh"},
		{"empty string", "", 3, "   "},
		{"multibyte", "Rücken", 8, "Rücken  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.input, tt.length); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestRootCmd(t *testing.T) {
	if rootCmd.Use != "broccoli" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "broccoli")
	}

	for _, name := range []string{"yes", "verbose", "no-color", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected --%s persistent flag", name)
		}
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range []string{"category", "exercise", "record", "history", "calendar", "dashboard", "export", "import", "mcp", "serve", "prefs", "version"} {
		if !registered[name] {
			t.Errorf("Expected %s command to be registered", name)
		}
	}
}

func TestSubcommands(t *testing.T) {
	tests := []struct {
		parent *cobra.Command
		want   []string
	}{
		{categoryCmd, []string{"add", "delete", "edit", "list"}},
		{exerciseCmd, []string{"add", "delete", "edit", "list"}},
		{recordCmd, []string{"add", "delete", "edit", "show", "today"}},
		{prefsCmd, []string{"get", "list", "set", "unset"}},
	}

	for _, tt := range tests {
		t.Run(tt.parent.Name(), func(t *testing.T) {
			names := make(map[string]bool)
			for _, c := range tt.parent.Commands() {
				names[c.Name()] = true
			}
			for _, want := range tt.want {
				if !names[want] {
					t.Errorf("Expected %s %s subcommand", tt.parent.Name(), want)
				}
			}
		})
	}
}

func TestHistoryCmdFlags(t *testing.T) {
	page := historyCmd.Flags().Lookup("page")
	if page == nil {
		t.Fatal("Expected --page flag on history command")
	}
	if page.DefValue != "1" {
		t.Errorf("Expected default page 1, got %s", page.DefValue)
	}
	for _, name := range []string{"category", "exercise", "from", "to"} {
		if historyCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag on history command", name)
		}
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	want := map[string]bool{"json": true, "yaml": true, "markdown": true}
	for _, a := range exportCmd.ValidArgs {
		delete(want, a)
	}
	if len(want) != 0 {
		t.Errorf("missing export formats: %v", want)
	}
}

// resetFlags restores every flag to its default so runs don't leak into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

var today = models.FormatDate(time.Now())

// setupTestCLI points config and data dirs at temp dirs and swaps in a seeded fake backend.
// Seeded ids: Legs 1, Back 2, Squat 3, Row 4, records 5 (today) and 6 (2020-01-15).
func setupTestCLI(t *testing.T) *apitest.Fake {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv(config.EnvBaseURL, "")
	t.Setenv("LOG_LEVEL", "")

	fake := apitest.NewFake()
	legs := fake.AddCategory("Legs")
	back := fake.AddCategory("Back")
	squat := fake.AddExercise("Squat", legs.ID)
	row := fake.AddExercise("Row", back.ID)
	fake.AddRecord(squat.ID, 100, 5, today)
	fake.AddRecord(row.ID, 60, 10, "2020-01-15")

	original := newBackend
	newBackend = func(*config.Config, prometheus.Registerer) api.Backend { return fake }
	t.Cleanup(func() { newBackend = original })

	return fake
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	if cerr := closePrefs(); cerr != nil {
		t.Errorf("closing preferences: %v", cerr)
	}
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "broccoli dev") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCategoryList(t *testing.T) {
	fake := setupTestCLI(t)
	fake.AddCategory("Core")

	out, err := runCLI(t, "", "category", "list")
	if err != nil {
		t.Fatalf("category list failed: %v", err)
	}
	for _, name := range []string{"Legs", "Back", "Core"} {
		if !strings.Contains(out, name) {
			t.Errorf("Expected %s in output:\n%s", name, out)
		}
	}

	out, err = runCLI(t, "", "category", "list", "--assigned")
	if err != nil {
		t.Fatalf("category list --assigned failed: %v", err)
	}
	if strings.Contains(out, "Core") {
		t.Errorf("Core has no exercises but was listed:\n%s", out)
	}
}

func TestCategoryAdd(t *testing.T) {
	fake := setupTestCLI(t)

	out, err := runCLI(t, "", "category", "add", "Chest")
	if err != nil {
		t.Fatalf("category add failed: %v", err)
	}
	if !strings.Contains(out, "✓ Added category Chest") {
		t.Errorf("unexpected output %q", out)
	}
	if fake.Calls["CreateCategory"] != 1 {
		t.Errorf("CreateCategory calls = %d, want 1", fake.Calls["CreateCategory"])
	}

	_, err = runCLI(t, "", "category", "add", "   ")
	if err == nil {
		t.Fatal("Expected validation error for blank name")
	}
	if !strings.Contains(err.Error(), "name: is required") {
		t.Errorf("unexpected error %v", err)
	}
	if fake.Calls["CreateCategory"] != 1 {
		t.Error("invalid form reached the backend")
	}
}

func TestCategoryEdit(t *testing.T) {
	fake := setupTestCLI(t)

	if _, err := runCLI(t, "", "category", "edit", "2", "Upper back"); err != nil {
		t.Fatalf("category edit failed: %v", err)
	}
	c, err := fake.GetCategory(context.Background(), 2)
	if err != nil || c.Name != "Upper back" {
		t.Errorf("category 2 = %+v, %v", c, err)
	}

	if _, err := runCLI(t, "", "category", "edit", "x", "Name"); err == nil {
		t.Error("Expected error for invalid id")
	}
}

func TestCategoryDeleteConfirmation(t *testing.T) {
	fake := setupTestCLI(t)

	out, err := runCLI(t, "n\n", "category", "delete", "2")
	if err != nil {
		t.Fatalf("category delete failed: %v", err)
	}
	if !strings.Contains(out, "Delete category 2?") || !strings.Contains(out, "Cancelled.") {
		t.Errorf("unexpected output %q", out)
	}
	if fake.Calls["DeleteCategory"] != 0 {
		t.Error("declined delete reached the backend")
	}

	out, err = runCLI(t, "y\n", "category", "delete", "2")
	if err != nil {
		t.Fatalf("category delete failed: %v", err)
	}
	if !strings.Contains(out, "✓ Deleted category 2") {
		t.Errorf("unexpected output %q", out)
	}

	out, err = runCLI(t, "", "category", "delete", "2", "--yes")
	if err == nil {
		t.Fatal("Expected error deleting a missing category")
	}
	if !strings.Contains(out, "✗ Failed to delete category") {
		t.Errorf("Expected failure notice, got %q", out)
	}
}

func TestExerciseList(t *testing.T) {
	setupTestCLI(t)

	out, err := runCLI(t, "", "exercise", "list", "--category", "2")
	if err != nil {
		t.Fatalf("exercise list failed: %v", err)
	}
	if !strings.Contains(out, "Row") || strings.Contains(out, "Squat") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = runCLI(t, "", "exercise", "list")
	if err != nil {
		t.Fatalf("exercise list failed: %v", err)
	}
	if !strings.Contains(out, "Row") || !strings.Contains(out, "Squat") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestExerciseAdd(t *testing.T) {
	fake := setupTestCLI(t)

	if _, err := runCLI(t, "", "exercise", "add", "Lunge"); err == nil {
		t.Error("Expected error without --category")
	}

	out, err := runCLI(t, "", "exercise", "add", "Lunge", "-c", "1")
	if err != nil {
		t.Fatalf("exercise add failed: %v", err)
	}
	if !strings.Contains(out, "✓ Added exercise Lunge") {
		t.Errorf("unexpected output %q", out)
	}
	if fake.Calls["CreateExercise"] != 1 {
		t.Errorf("CreateExercise calls = %d, want 1", fake.Calls["CreateExercise"])
	}
}

func TestExerciseEdit(t *testing.T) {
	fake := setupTestCLI(t)

	if _, err := runCLI(t, "", "exercise", "edit", "3", "--name", "Back squat"); err != nil {
		t.Fatalf("exercise edit failed: %v", err)
	}
	e, err := fake.GetExercise(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if e.Name != "Back squat" || e.CategoryID != 1 {
		t.Errorf("exercise 3 = %+v, want renamed and still in category 1", e)
	}
}

func TestRecordAdd(t *testing.T) {
	fake := setupTestCLI(t)

	out, err := runCLI(t, "", "record", "add", "3", "102.5", "5")
	if err != nil {
		t.Fatalf("record add failed: %v", err)
	}
	if !strings.Contains(out, "✓ Logged Squat") || !strings.Contains(out, "102.5 x 5") {
		t.Errorf("unexpected output %q", out)
	}

	out, err = runCLI(t, "", "record", "add", "4", "0", "12", "--date", "2025-02-01")
	if err != nil {
		t.Fatalf("record add --date failed: %v", err)
	}
	if !strings.Contains(out, "2025-02-01") {
		t.Errorf("Expected date in output %q", out)
	}
	if fake.Calls["CreateRecord"] != 2 {
		t.Errorf("CreateRecord calls = %d, want 2", fake.Calls["CreateRecord"])
	}
}

func TestRecordAddInvalid(t *testing.T) {
	fake := setupTestCLI(t)

	tests := []struct {
		name      string
		args      []string
		errSubstr string
	}{
		{"bad weight", []string{"record", "add", "3", "heavy", "5"}, "invalid weight"},
		{"bad reps", []string{"record", "add", "3", "100", "five"}, "invalid reps"},
		{"zero reps", []string{"record", "add", "3", "100", "0"}, "rep: must be at least 1"},
		{"negative weight", []string{"record", "add", "--", "3", "-5", "5"}, "weight: must not be negative"},
		{"bad date", []string{"record", "add", "3", "100", "5", "--date", "01/02/2025"}, "date: must be YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, "", tt.args...)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errSubstr) {
				t.Errorf("Expected error containing %q, got %q", tt.errSubstr, err.Error())
			}
		})
	}

	if fake.Calls["CreateRecord"] != 0 {
		t.Error("invalid records reached the backend")
	}
}

func TestRecordToday(t *testing.T) {
	setupTestCLI(t)

	out, err := runCLI(t, "", "record", "today")
	if err != nil {
		t.Fatalf("record today failed: %v", err)
	}
	if !strings.Contains(out, "Squat") || !strings.Contains(out, "1 sets, volume 500") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = runCLI(t, "", "record", "today", "--date", "2019-06-01")
	if err != nil {
		t.Fatalf("record today --date failed: %v", err)
	}
	if !strings.Contains(out, "No sets logged on 2019-06-01") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRecordShow(t *testing.T) {
	setupTestCLI(t)

	out, err := runCLI(t, "", "record", "show", "6")
	if err != nil {
		t.Fatalf("record show failed: %v", err)
	}
	for _, want := range []string{"Record: 6", "Date: 2020-01-15", "Exercise: Row (4)", "Category: Back", "Volume: 600"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}

	if _, err := runCLI(t, "", "record", "show", "99"); !errors.Is(err, api.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRecordEdit(t *testing.T) {
	fake := setupTestCLI(t)

	if _, err := runCLI(t, "", "record", "edit", "6", "--weight", "65"); err != nil {
		t.Fatalf("record edit failed: %v", err)
	}
	r, err := fake.GetRecord(context.Background(), 6)
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if r.Weight != 65 || r.Rep != 10 || r.ExerciseDate != "2020-01-15" || r.ExerciseID != 4 {
		t.Errorf("record 6 = %+v, want only weight changed", r)
	}
}

func TestRecordDelete(t *testing.T) {
	fake := setupTestCLI(t)

	out, err := runCLI(t, "", "record", "delete", "5", "--yes")
	if err != nil {
		t.Fatalf("record delete failed: %v", err)
	}
	if strings.Contains(out, "[y/N]") {
		t.Errorf("--yes should not prompt: %q", out)
	}
	if fake.Calls["DeleteRecord"] != 1 {
		t.Errorf("DeleteRecord calls = %d, want 1", fake.Calls["DeleteRecord"])
	}
}

func TestHistoryCmd(t *testing.T) {
	setupTestCLI(t)

	out, err := runCLI(t, "", "history", "--category", "2")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "Row") || strings.Contains(out, "Squat") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Page 1 of 1  (1 of 2 sets match, 2 on server)") {
		t.Errorf("unexpected summary:\n%s", out)
	}

	out, err = runCLI(t, "", "history", "--from", "2030-01-01")
	if err != nil {
		t.Fatalf("history --from failed: %v", err)
	}
	if !strings.Contains(out, "No sets found.") {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := runCLI(t, "", "history", "--to", "soon"); err == nil {
		t.Error("Expected error for invalid --to date")
	}
}

func TestCalendarCmd(t *testing.T) {
	setupTestCLI(t)

	out, err := runCLI(t, "", "calendar", "--date", "2020-01-15")
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	if !strings.Contains(out, "January 2020") || !strings.Contains(out, "1 workout days, 1 sets") {
		t.Errorf("unexpected month output:\n%s", out)
	}
	// January 2020 starts on a Wednesday: 29 Dec - 1 Feb is 5 weeks.
	if lines := strings.Count(out, "\n"); lines < 7 {
		t.Errorf("Expected at least 7 lines, got %d:\n%s", lines, out)
	}

	out, err = runCLI(t, "", "calendar", "--date", "2020-01-15", "--offset", "1")
	if err != nil {
		t.Fatalf("calendar --offset failed: %v", err)
	}
	if !strings.Contains(out, "February 2020") || !strings.Contains(out, "0 workout days") {
		t.Errorf("unexpected next-month output:\n%s", out)
	}

	out, err = runCLI(t, "", "calendar", "--view", "year", "--date", "2020-06-01")
	if err != nil {
		t.Fatalf("calendar year failed: %v", err)
	}
	if !strings.Contains(out, "Jan ") || !strings.Contains(out, "Dec ") {
		t.Errorf("unexpected year output:\n%s", out)
	}

	if _, err := runCLI(t, "", "calendar", "--view", "decade"); err == nil {
		t.Error("Expected error for unknown view")
	}
	if _, err := runCLI(t, "", "calendar", "--offset", "20000000"); err == nil {
		t.Error("Expected error for offset out of range")
	}
}

func TestDashboardCmd(t *testing.T) {
	setupTestCLI(t)

	out, err := runCLI(t, "", "dashboard")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if !strings.Contains(out, padRight("Total days", 14)+" 2") {
		t.Errorf("unexpected total days:\n%s", out)
	}
	if !strings.Contains(out, "(2 on server)") {
		t.Errorf("Expected server count:\n%s", out)
	}
	if !strings.Contains(out, "Last 7 days") || !strings.Contains(out, today) {
		t.Errorf("Expected last 7 days section:\n%s", out)
	}
	if !strings.Contains(out, "By category") || !strings.Contains(out, "Legs") {
		t.Errorf("Expected per-category section:\n%s", out)
	}
}

func TestDashboardCollapsed(t *testing.T) {
	setupTestCLI(t)

	if _, err := runCLI(t, "", "prefs", "set", "expanded", "false"); err != nil {
		t.Fatalf("prefs set failed: %v", err)
	}
	out, err := runCLI(t, "", "dashboard")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if !strings.Contains(out, padRight("Total days", 14)+" 2") {
		t.Errorf("collapsed dashboard should keep the counts:\n%s", out)
	}
	if strings.Contains(out, "Last 7 days") || strings.Contains(out, "By category") {
		t.Errorf("collapsed dashboard should hide the detail sections:\n%s", out)
	}
}

func TestBackendFailure(t *testing.T) {
	fake := setupTestCLI(t)
	fake.Err = &api.Error{Op: "list_records", Method: "GET", Path: "/exercise_records", StatusCode: 500, Status: "500 Internal Server Error"}

	out, err := runCLI(t, "", "dashboard")
	if !errors.Is(err, api.ErrRequestFailed) {
		t.Fatalf("Expected ErrRequestFailed, got %v", err)
	}
	if !strings.Contains(out, "✗ Failed to load dashboard") {
		t.Errorf("Expected failure notice, got %q", out)
	}
	if strings.Contains(out, "500") {
		t.Errorf("error details should only show with --verbose: %q", out)
	}

	out, _ = runCLI(t, "", "dashboard", "--verbose")
	if !strings.Contains(out, "500 Internal Server Error") {
		t.Errorf("Expected error detail with --verbose, got %q", out)
	}
}

func TestExportCmd(t *testing.T) {
	setupTestCLI(t)

	out, err := runCLI(t, "", "export", "json")
	if err != nil {
		t.Fatalf("export json failed: %v", err)
	}
	if !strings.Contains(out, `"tool": "broccoli"`) || !strings.Contains(out, "Squat") {
		t.Errorf("unexpected JSON export:\n%s", out)
	}

	out, err = runCLI(t, "", "export", "markdown", "--since", "2021-01-01")
	if err != nil {
		t.Fatalf("export markdown failed: %v", err)
	}
	if strings.Contains(out, "2020-01-15") {
		t.Errorf("--since did not filter:\n%s", out)
	}

	if _, err := runCLI(t, "", "export", "csv"); err == nil {
		t.Error("Expected error for unknown format")
	}
	if _, err := runCLI(t, "", "export", "json", "--since", "last week"); err == nil {
		t.Error("Expected error for invalid --since")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	setupTestCLI(t)

	file := filepath.Join(t.TempDir(), "backup.json")
	if _, err := runCLI(t, "", "export", "json", "-o", file); err != nil {
		t.Fatalf("export to file failed: %v", err)
	}
	if _, err := os.Stat(file); err != nil {
		t.Fatalf("Expected export file: %v", err)
	}

	target := apitest.NewFake()
	newBackend = func(*config.Config, prometheus.Registerer) api.Backend { return target }

	out, err := runCLI(t, "", "import", file)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if !strings.Contains(out, "Imported 2 categories, 2 exercises, 2 sets") {
		t.Errorf("unexpected output %q", out)
	}
	records, _ := target.ListRecords(context.Background())
	if len(records) != 2 {
		t.Errorf("Expected 2 imported records, got %d", len(records))
	}
}

func TestPrefsCmd(t *testing.T) {
	setupTestCLI(t)

	out, err := runCLI(t, "", "prefs", "get", "calendar_view")
	if err != nil {
		t.Fatalf("prefs get failed: %v", err)
	}
	if strings.TrimSpace(out) != "month" {
		t.Errorf("default calendar_view = %q, want month", out)
	}

	if _, err := runCLI(t, "", "prefs", "set", "calendar_view", "week"); err != nil {
		t.Fatalf("prefs set failed: %v", err)
	}
	out, _ = runCLI(t, "", "prefs", "get", "calendar_view")
	if strings.TrimSpace(out) != "week" {
		t.Errorf("calendar_view = %q, want week", out)
	}

	// The calendar picks up the stored default view.
	out, err = runCLI(t, "", "calendar", "--date", "2020-01-15")
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	if !strings.Contains(out, "Jan 12, 2020 - Jan 18, 2020") {
		t.Errorf("Expected week view title:\n%s", out)
	}

	out, _ = runCLI(t, "", "prefs", "list")
	if !strings.Contains(out, "theme") || !strings.Contains(out, "(default)") {
		t.Errorf("unexpected prefs list:\n%s", out)
	}

	if _, err := runCLI(t, "", "prefs", "set", "calendar_view", "decade"); err == nil {
		t.Error("Expected error for invalid value")
	}
	if _, err := runCLI(t, "", "prefs", "unset", "calendar_view"); err != nil {
		t.Fatalf("prefs unset failed: %v", err)
	}
	out, _ = runCLI(t, "", "prefs", "get", "calendar_view")
	if strings.TrimSpace(out) != "month" {
		t.Errorf("calendar_view after unset = %q, want month", out)
	}
}
