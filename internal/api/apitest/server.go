// ABOUTME: REST handler exposing any Backend over the workout API's HTTP surface.
// ABOUTME: Lets tests run the real HTTP client, or the built binary, against a Fake.
package apitest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/harperreed/broccoli/internal/api"
	"github.com/harperreed/broccoli/internal/models"
)

// NewHandler routes the REST surface to b. Lookups of unknown ids answer
// 200 with null, like the real backend.
func NewHandler(b api.Backend) http.Handler {
	h := &restHandler{b: b}
	r := mux.NewRouter()

	r.HandleFunc("/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/categories/assigned", h.listAssignedCategories).Methods("GET")
	r.HandleFunc("/categories/{id:[0-9]+}", h.getCategory).Methods("GET")
	r.HandleFunc("/categories/{id:[0-9]+}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/categories/{id:[0-9]+}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/exercises", h.listExercises).Methods("GET")
	r.HandleFunc("/exercises", h.createExercise).Methods("POST")
	r.HandleFunc("/exercises/category/{id:[0-9]+}", h.listExercisesByCategory).Methods("GET")
	r.HandleFunc("/exercises/{id:[0-9]+}", h.getExercise).Methods("GET")
	r.HandleFunc("/exercises/{id:[0-9]+}", h.updateExercise).Methods("PUT")
	r.HandleFunc("/exercises/{id:[0-9]+}", h.deleteExercise).Methods("DELETE")

	r.HandleFunc("/exercise_records", h.listRecords).Methods("GET")
	r.HandleFunc("/exercise_records", h.createRecord).Methods("POST")
	r.HandleFunc("/exercise_records/count", h.countRecords).Methods("GET")
	r.HandleFunc("/exercise_records/{id:[0-9]+}", h.getRecord).Methods("GET")
	r.HandleFunc("/exercise_records/{id:[0-9]+}", h.updateRecord).Methods("PUT")
	r.HandleFunc("/exercise_records/{id:[0-9]+}", h.deleteRecord).Methods("DELETE")

	return r
}

type restHandler struct {
	b api.Backend
}

func pathID(r *http.Request) int {
	n, _ := strconv.Atoi(mux.Vars(r)["id"])
	return n
}

func reply(w http.ResponseWriter, v any, err error) {
	if errors.Is(err, api.ErrNotFound) {
		v, err = nil, nil
	}
	if err != nil {
		status := http.StatusInternalServerError
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
			status = apiErr.StatusCode
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var body T
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusUnprocessableEntity)
		return body, false
	}
	return body, true
}

func (h *restHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	v, err := h.b.ListCategories(r.Context())
	reply(w, nonNil(v), err)
}

func (h *restHandler) listAssignedCategories(w http.ResponseWriter, r *http.Request) {
	v, err := h.b.ListAssignedCategories(r.Context())
	reply(w, nonNil(v), err)
}

func (h *restHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	v, err := h.b.GetCategory(r.Context(), pathID(r))
	reply(w, v, err)
}

func (h *restHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[models.CategoryCreate](w, r)
	if !ok {
		return
	}
	v, err := h.b.CreateCategory(r.Context(), body)
	reply(w, v, err)
}

func (h *restHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[models.CategoryCreate](w, r)
	if !ok {
		return
	}
	v, err := h.b.UpdateCategory(r.Context(), pathID(r), body)
	reply(w, v, err)
}

func (h *restHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	reply(w, map[string]bool{"ok": true}, h.b.DeleteCategory(r.Context(), pathID(r)))
}

func (h *restHandler) listExercises(w http.ResponseWriter, r *http.Request) {
	v, err := h.b.ListExercises(r.Context())
	reply(w, nonNil(v), err)
}

func (h *restHandler) listExercisesByCategory(w http.ResponseWriter, r *http.Request) {
	v, err := h.b.ListExercisesByCategory(r.Context(), pathID(r))
	reply(w, nonNil(v), err)
}

func (h *restHandler) getExercise(w http.ResponseWriter, r *http.Request) {
	v, err := h.b.GetExercise(r.Context(), pathID(r))
	reply(w, v, err)
}

func (h *restHandler) createExercise(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[models.ExerciseCreate](w, r)
	if !ok {
		return
	}
	v, err := h.b.CreateExercise(r.Context(), body)
	reply(w, v, err)
}

func (h *restHandler) updateExercise(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[models.ExerciseCreate](w, r)
	if !ok {
		return
	}
	v, err := h.b.UpdateExercise(r.Context(), pathID(r), body)
	reply(w, v, err)
}

func (h *restHandler) deleteExercise(w http.ResponseWriter, r *http.Request) {
	reply(w, map[string]bool{"ok": true}, h.b.DeleteExercise(r.Context(), pathID(r)))
}

func (h *restHandler) listRecords(w http.ResponseWriter, r *http.Request) {
	var (
		v   []models.ExerciseRecord
		err error
	)
	if date := r.URL.Query().Get("date"); date != "" {
		v, err = h.b.ListRecordsOn(r.Context(), date)
	} else {
		v, err = h.b.ListRecords(r.Context())
	}
	reply(w, nonNil(v), err)
}

func (h *restHandler) countRecords(w http.ResponseWriter, r *http.Request) {
	n, err := h.b.CountRecords(r.Context())
	reply(w, map[string]int{"count": n}, err)
}

func (h *restHandler) getRecord(w http.ResponseWriter, r *http.Request) {
	v, err := h.b.GetRecord(r.Context(), pathID(r))
	reply(w, v, err)
}

func (h *restHandler) createRecord(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[models.ExerciseRecordCreate](w, r)
	if !ok {
		return
	}
	v, err := h.b.CreateRecord(r.Context(), body)
	reply(w, v, err)
}

func (h *restHandler) updateRecord(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[models.ExerciseRecordCreate](w, r)
	if !ok {
		return
	}
	v, err := h.b.UpdateRecord(r.Context(), pathID(r), body)
	reply(w, v, err)
}

func (h *restHandler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	reply(w, map[string]bool{"ok": true}, h.b.DeleteRecord(r.Context(), pathID(r)))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
