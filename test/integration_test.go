// ABOUTME: Integration tests for the broccoli CLI.
// ABOUTME: Builds the binary and drives a full workflow against an in-process REST backend.
package test

import (
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/broccoli/internal/api/apitest"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "broccoli")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/broccoli")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	backend := httptest.NewServer(apitest.NewHandler(apitest.NewFake()))
	defer backend.Close()

	home := t.TempDir()
	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, append([]string{"--no-color"}, args...)...)
		cmd.Env = append(os.Environ(),
			"BROCCOLI_API_BASE_URL="+backend.URL,
			"XDG_CONFIG_HOME="+filepath.Join(home, "config"),
			"XDG_DATA_HOME="+filepath.Join(home, "data"),
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	output, err := run("category", "add", "Legs")
	if err != nil {
		t.Fatalf("Failed to add category: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added category Legs") {
		t.Errorf("Expected 'Added category Legs' in output, got: %s", output)
	}

	output, err = run("exercise", "add", "Squat", "--category", "1")
	if err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added exercise Squat") {
		t.Errorf("Expected 'Added exercise Squat' in output, got: %s", output)
	}

	output, err = run("record", "add", "2", "100", "5")
	if err != nil {
		t.Fatalf("Failed to log record: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged Squat") {
		t.Errorf("Expected 'Logged Squat' in output, got: %s", output)
	}

	output, err = run("record", "today")
	if err != nil {
		t.Fatalf("Failed to list today: %v\n%s", err, output)
	}
	if !strings.Contains(output, "1 sets, volume 500") {
		t.Errorf("Expected today's summary, got: %s", output)
	}

	output, err = run("dashboard")
	if err != nil {
		t.Fatalf("Failed to show dashboard: %v\n%s", err, output)
	}
	if !strings.Contains(output, "(1 on server)") {
		t.Errorf("Expected server count in dashboard, got: %s", output)
	}

	output, err = run("history", "--category", "1")
	if err != nil {
		t.Fatalf("Failed to show history: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Squat") {
		t.Errorf("Expected 'Squat' in history, got: %s", output)
	}

	output, err = run("record", "delete", "3", "--yes")
	if err != nil {
		t.Fatalf("Failed to delete record: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Deleted record 3") {
		t.Errorf("Expected 'Deleted record 3', got: %s", output)
	}

	output, err = run("record", "delete", "3", "--yes")
	if err == nil {
		t.Errorf("Expected deleting a missing record to fail, got: %s", output)
	}
}
