package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claude/liftcoach/internal/models"
	"github.com/claude/liftcoach/internal/storage"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	sets    []models.SetRow
	records []models.PersonalRecord
}

func (f *fakeStore) InsertSet(_ context.Context, userID int, set models.WorkoutSet) (*models.SetRow, error) {
	row := models.SetRow{
		ID: "set-1", UserID: userID, ExerciseID: set.ExerciseID,
		ExerciseName: set.ExerciseName, WeightKg: set.WeightKg,
		Reps: set.Reps, RPE: set.RPE, Notes: set.Notes,
	}
	f.sets = append(f.sets, row)
	return &row, nil
}

func (f *fakeStore) LastSet(_ context.Context, _ int, exerciseID string) (*models.SetRow, error) {
	for i := len(f.sets) - 1; i >= 0; i-- {
		if f.sets[i].ExerciseID == exerciseID {
			return &f.sets[i], nil
		}
	}
	return nil, storage.ErrNoSets
}

func (f *fakeStore) RecentSets(_ context.Context, _ int, _ int) ([]models.SetRow, error) {
	return f.sets, nil
}

func (f *fakeStore) UpsertPersonalRecord(_ context.Context, record models.PersonalRecord) (bool, error) {
	f.records = append(f.records, record)
	return true, nil
}

func (f *fakeStore) ListPersonalRecords(_ context.Context, _ int) ([]models.PersonalRecord, error) {
	return f.records, nil
}

func newTestServer(store Store) *Server {
	log := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	return New(store, nil, "test-key", log)
}

// TestHandleInsertSet verifies set logging through the router including auth.
func TestHandleInsertSet(t *testing.T) {
	store := &fakeStore{}
	srv := newTestServer(store)

	body, _ := json.Marshal(models.WorkoutSet{
		ExerciseID: "bench", ExerciseName: "Bench Press", WeightKg: 100, Reps: 5,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sets", bytes.NewReader(body))
	req.Header.Set("X-API-Key", "test-key")
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var row models.SetRow
	if err := json.NewDecoder(rec.Body).Decode(&row); err != nil {
		t.Fatal(err)
	}
	if row.ExerciseID != "bench" || row.UserID != 1 {
		t.Errorf("row = %+v", row)
	}
	if len(store.sets) != 1 {
		t.Errorf("stored %d sets, want 1", len(store.sets))
	}
}

// TestHandleInsertSetUnauthorized verifies the sets route requires the API key.
func TestHandleInsertSetUnauthorized(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sets", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// TestHandleInsertSetValidation verifies bad set payloads get 400.
func TestHandleInsertSetValidation(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	for _, body := range []string{
		`{"exercise_id":"","weight_kg":100,"reps":5}`,
		`{"exercise_id":"bench","weight_kg":-1,"reps":5}`,
		`{"exercise_id":"bench","weight_kg":100,"reps":0}`,
		`{"exercise_id":"bench","weight_kg":100,"reps":5,"rpe":11}`,
		`not json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sets", strings.NewReader(body))
		req.Header.Set("X-API-Key", "test-key")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

// TestHandleLastSet verifies the last-set lookup and 404 behavior.
func TestHandleLastSet(t *testing.T) {
	store := &fakeStore{sets: []models.SetRow{
		{ID: "s1", ExerciseID: "squat", WeightKg: 140, Reps: 5},
	}}
	srv := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sets/last?exercise=squat", nil)
	req.Header.Set("X-API-Key", "test-key")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/sets/last?exercise=deadlift", nil)
	req.Header.Set("X-API-Key", "test-key")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// TestHandleProgression verifies the progression endpoint with an explicit
// last performance.
func TestHandleProgression(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	body := `{"exercise_id":"bench","exercise_name":"Bench Press","last_weight_kg":100,"last_reps":8,"last_rpe":7,"equipment":"barbell"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/progression", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var recc models.ProgressionRecommendation
	if err := json.NewDecoder(rec.Body).Decode(&recc); err != nil {
		t.Fatal(err)
	}
	if recc.RecommendedWeight != 102.5 {
		t.Errorf("recommended weight = %.1f, want 102.5", recc.RecommendedWeight)
	}
}

// TestHandleProgressionFallback verifies the history fallback path through
// the store.
func TestHandleProgressionFallback(t *testing.T) {
	rpe := 10
	store := &fakeStore{sets: []models.SetRow{
		{ID: "s1", ExerciseID: "squat", WeightKg: 140, Reps: 5, RPE: &rpe},
	}}
	srv := newTestServer(store)

	body := `{"exercise_id":"squat","exercise_name":"Back Squat","equipment":"barbell"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/progression", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var recc models.ProgressionRecommendation
	if err := json.NewDecoder(rec.Body).Decode(&recc); err != nil {
		t.Fatal(err)
	}
	if recc.Trend != models.TrendDeloadNeeded {
		t.Errorf("trend = %q, want deload_needed", recc.Trend)
	}
	if recc.RecommendedWeight != 126 {
		t.Errorf("recommended weight = %.1f, want 126", recc.RecommendedWeight)
	}
}

// TestHandlePeriodization verifies query parsing and validation.
func TestHandlePeriodization(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/periodization?weeks=8&goal=strength&deload=true", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var weeks []models.PhaseWeek
	if err := json.NewDecoder(rec.Body).Decode(&weeks); err != nil {
		t.Fatal(err)
	}
	if len(weeks) != 8 {
		t.Errorf("got %d weeks, want 8", len(weeks))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/periodization?weeks=20&goal=strength", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("weeks=20: status = %d, want 400", rec.Code)
	}
}

// TestHandleSchedule verifies the hybrid schedule endpoint.
func TestHandleSchedule(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule?strength=3&cardio=2&type=running&prioritize=balanced", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out struct {
		Schedule []models.ScheduleEntry `json:"schedule"`
		Tips     []string               `json:"tips"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Schedule) != 7 {
		t.Errorf("got %d entries, want 7", len(out.Schedule))
	}
}

// TestHandleExerciseCatalog verifies the catalog endpoint is open and
// non-empty.
func TestHandleExerciseCatalog(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var catalog []models.Exercise
	if err := json.NewDecoder(rec.Body).Decode(&catalog); err != nil {
		t.Fatal(err)
	}
	if len(catalog) == 0 {
		t.Error("catalog is empty")
	}
}

// TestHandleUpsertRecord verifies PR upserts set the server-side user ID.
func TestHandleUpsertRecord(t *testing.T) {
	store := &fakeStore{}
	srv := newTestServer(store)

	body := `{"user_id":99,"exercise_id":"bench","exercise_name":"Bench Press","weight_kg":100,"reps":5,"estimated_1rm":116.7}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/records", strings.NewReader(body))
	req.Header.Set("X-API-Key", "test-key")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if len(store.records) != 1 {
		t.Fatalf("stored %d records, want 1", len(store.records))
	}
	if store.records[0].UserID != 1 {
		t.Errorf("stored user_id = %d, want 1 (server-assigned)", store.records[0].UserID)
	}
}
