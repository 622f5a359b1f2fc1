// ABOUTME: Round-trip tests: the real HTTP client against a Fake served over REST.
// ABOUTME: Checks embedding, null lookups, 404 mapping, and the date query.
package apitest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harperreed/broccoli/internal/api"
	"github.com/harperreed/broccoli/internal/api/apitest"
	"github.com/harperreed/broccoli/internal/models"
)

func setup(t *testing.T) (*api.Client, *apitest.Fake) {
	t.Helper()
	fake := apitest.NewFake()
	srv := httptest.NewServer(apitest.NewHandler(fake))
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL), fake
}

func TestClientRoundTrip(t *testing.T) {
	client, fake := setup(t)
	ctx := context.Background()

	legs, err := client.CreateCategory(ctx, models.CategoryCreate{Name: "Legs"})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	squat, err := client.CreateExercise(ctx, models.ExerciseCreate{Name: "Squat", CategoryID: legs.ID})
	if err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}
	if squat.CategoryName() != "Legs" {
		t.Errorf("exercise category not embedded: %+v", squat)
	}

	r, err := client.CreateRecord(ctx, models.ExerciseRecordCreate{ExerciseID: squat.ID, Weight: 100, Rep: 5, ExerciseDate: "2025-02-12"})
	if err != nil {
		t.Fatalf("CreateRecord failed: %v", err)
	}
	if r.Exercise.Name != "Squat" || r.CategoryID() != legs.ID {
		t.Errorf("record snapshot not embedded: %+v", r)
	}

	on, err := client.ListRecordsOn(ctx, "2025-02-12")
	if err != nil || len(on) != 1 {
		t.Errorf("ListRecordsOn = %v, %v", on, err)
	}
	none, err := client.ListRecordsOn(ctx, "2025-02-13")
	if err != nil || len(none) != 0 {
		t.Errorf("ListRecordsOn(other day) = %v, %v", none, err)
	}

	n, err := client.CountRecords(ctx)
	if err != nil || n != 1 {
		t.Errorf("CountRecords = %d, %v", n, err)
	}

	assigned, err := client.ListAssignedCategories(ctx)
	if err != nil || len(assigned) != 1 {
		t.Errorf("ListAssignedCategories = %v, %v", assigned, err)
	}

	if fake.Calls["CreateRecord"] != 1 {
		t.Errorf("CreateRecord calls = %d", fake.Calls["CreateRecord"])
	}
}

func TestClientMissingIDs(t *testing.T) {
	client, _ := setup(t)
	ctx := context.Background()

	if _, err := client.GetRecord(ctx, 42); !errors.Is(err, api.ErrNotFound) {
		t.Errorf("GetRecord(42) error = %v, want ErrNotFound", err)
	}
	if _, err := client.GetCategory(ctx, 42); !errors.Is(err, api.ErrNotFound) {
		t.Errorf("GetCategory(42) error = %v, want ErrNotFound", err)
	}

	err := client.DeleteRecord(ctx, 42)
	if !errors.Is(err, api.ErrRequestFailed) || !api.IsStatus(err, http.StatusNotFound) {
		t.Errorf("DeleteRecord(42) error = %v, want 404 request failure", err)
	}
}

func TestClientBackendError(t *testing.T) {
	client, fake := setup(t)
	fake.Err = errors.New("database is locked")

	_, err := client.ListCategories(context.Background())
	if !api.IsStatus(err, http.StatusInternalServerError) {
		t.Errorf("ListCategories error = %v, want 500", err)
	}
}
