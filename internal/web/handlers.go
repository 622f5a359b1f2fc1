// ABOUTME: HTTP handlers that render page views as JSON.
// ABOUTME: Query parameters mirror the interactive controls of each page.
package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/harperreed/broccoli/internal/api"
	"github.com/harperreed/broccoli/internal/calendar"
	"github.com/harperreed/broccoli/internal/forms"
	"github.com/harperreed/broccoli/internal/history"
	"github.com/harperreed/broccoli/internal/models"
	"github.com/harperreed/broccoli/internal/notify"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeFailure maps a service error to a status code. Backend details are
// logged, not returned.
func writeFailure(w http.ResponseWriter, err error) {
	var verr *forms.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form", Fields: verr.Fields})
	case errors.Is(err, api.ErrNotFound), api.IsStatus(err, http.StatusNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		slog.Debug("backend request failed", "error", err)
		writeError(w, http.StatusBadGateway, "backend request failed")
	}
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New(key + " must be a non-negative integer")
	}
	return n, nil
}

func queryDate(r *http.Request, key string) (string, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return "", nil
	}
	if _, err := models.ParseDate(v); err != nil {
		return "", errors.New(key + " must be YYYY-MM-DD")
	}
	return v, nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Dashboard(r.Context(), s.now())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// handleCalendar renders ?view=week|month|year around ?date, shifted by ?offset ranges.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	view := calendar.Month
	if v := r.URL.Query().Get("view"); v != "" {
		parsed, err := calendar.ParseView(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		view = parsed
	}

	now := s.now()
	ref := now
	if d, err := queryDate(r, "date"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	} else if d != "" {
		ref, _ = models.ParseDate(d)
	}

	nav := calendar.NewNavigator(view, ref)
	if v := r.URL.Query().Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "offset must be an integer")
			return
		}
		if err := nav.Shift(offset); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	res, err := s.svc.Calendar(r.Context(), nav, now)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	q := history.NewQuery()

	categoryID, err := queryInt(r, "category")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	exerciseID, err := queryInt(r, "exercise")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	start, err := queryDate(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := queryDate(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	q.SetCategory(categoryID)
	q.SetExercise(exerciseID)
	q.SetStartDate(start)
	q.SetEndDate(end)
	if page > 0 {
		q.SetPage(page)
	}

	view, err := s.svc.History(r.Context(), q)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	var (
		categories []models.Category
		err        error
	)
	if r.URL.Query().Get("assigned") == "true" {
		categories, err = s.svc.WorkoutOptions(r.Context())
	} else {
		categories, err = s.svc.Categories(r.Context())
	}
	if err != nil {
		writeFailure(w, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (s *Server) handleExerciseOptions(w http.ResponseWriter, r *http.Request) {
	categoryID, err := queryInt(r, "category")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	exercises, err := s.svc.ExerciseOptions(r.Context(), categoryID)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"exercises": exercises})
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	day := s.now()
	if d, err := queryDate(r, "date"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	} else if d != "" {
		day, _ = models.ParseDate(d)
	}

	records, err := s.svc.TodayRecords(r.Context(), day)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if records == nil {
		records = []models.ExerciseRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"date":    models.FormatDate(day),
		"records": records,
	})
}

func (s *Server) handleLogRecord(w http.ResponseWriter, r *http.Request) {
	form := forms.NewRecordForm()
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	rec, err := s.svc.LogRecord(r.Context(), form)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// handleDeleteRecord deletes without prompting; the DELETE verb is the confirmation.
func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "record id out of range")
		return
	}
	if _, err := s.svc.DeleteRecord(r.Context(), id, notify.Fixed(true)); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
