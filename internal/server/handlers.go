package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/claude/liftcoach/internal/coach"
	"github.com/claude/liftcoach/internal/models"
	"github.com/claude/liftcoach/internal/storage"
)

// Single-user deployment; the MCP transport layer injects real user IDs.
const defaultUserID = 1

func (s *Server) handleInsertSet(w http.ResponseWriter, r *http.Request) {
	var set models.WorkoutSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if set.ExerciseID == "" || set.WeightKg <= 0 || set.Reps <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise_id, positive weight_kg and reps required"})
		return
	}
	if set.RPE != nil && (*set.RPE < 1 || *set.RPE > 10) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "rpe must be between 1 and 10"})
		return
	}

	row, err := s.store.InsertSet(r.Context(), defaultUserID, set)
	if err != nil {
		s.log.Error("insert set", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleRecentSets(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	sets, err := s.store.RecentSets(r.Context(), defaultUserID, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sets)
}

func (s *Server) handleLastSet(w http.ResponseWriter, r *http.Request) {
	exerciseID := r.URL.Query().Get("exercise")
	if exerciseID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}

	row, err := s.store.LastSet(r.Context(), defaultUserID, exerciseID)
	if errors.Is(err, storage.ErrNoSets) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no sets logged for " + exerciseID})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListPersonalRecords(r.Context(), defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleUpsertRecord(w http.ResponseWriter, r *http.Request) {
	var record models.PersonalRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	record.UserID = defaultUserID

	updated, err := s.store.UpsertPersonalRecord(r.Context(), record)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": updated})
}

// progressionRequest is the POST /api/v1/progression body.
type progressionRequest struct {
	ExerciseID   string           `json:"exercise_id"`
	ExerciseName string           `json:"exercise_name"`
	LastWeightKg float64          `json:"last_weight_kg"`
	LastReps     int              `json:"last_reps"`
	LastRPE      *int             `json:"last_rpe,omitempty"`
	Equipment    models.Equipment `json:"equipment"`
}

func (s *Server) handleProgression(w http.ResponseWriter, r *http.Request) {
	var req progressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.ExerciseID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise_id required"})
		return
	}
	if req.LastRPE != nil && (*req.LastRPE < 1 || *req.LastRPE > 10) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "last_rpe must be between 1 and 10"})
		return
	}

	last := coach.LastPerformance{
		ExerciseID:   req.ExerciseID,
		ExerciseName: req.ExerciseName,
		WeightKg:     req.LastWeightKg,
		Reps:         req.LastReps,
		RPE:          req.LastRPE,
		Equipment:    req.Equipment,
	}

	// No explicit last performance: read it from the log.
	if last.WeightKg <= 0 || last.Reps <= 0 {
		row, err := s.store.LastSet(r.Context(), defaultUserID, req.ExerciseID)
		if errors.Is(err, storage.ErrNoSets) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no sets logged for " + req.ExerciseID})
			return
		}
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		last.WeightKg = row.WeightKg
		last.Reps = row.Reps
		if last.RPE == nil {
			last.RPE = row.RPE
		}
	}

	writeJSON(w, http.StatusOK, coach.Recommend(last))
}

// planRequest is the POST /api/v1/plans body.
type planRequest struct {
	Name          string           `json:"name"`
	SplitType     models.SplitType `json:"split_type"`
	DaysPerWeek   int              `json:"days_per_week"`
	Goal          models.Goal      `json:"goal"`
	IncludeCardio bool             `json:"include_cardio"`
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.DaysPerWeek < 2 || req.DaysPerWeek > 6 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "days_per_week must be between 2 and 6"})
		return
	}

	plan := coach.GeneratePlan(req.Name, req.SplitType, req.DaysPerWeek, req.Goal, req.IncludeCardio)
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleInterpretEffort(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Description == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "description required"})
		return
	}
	writeJSON(w, http.StatusOK, coach.InterpretEffort(req.Description))
}

func (s *Server) handlePeriodization(w http.ResponseWriter, r *http.Request) {
	weeks, err := strconv.Atoi(r.URL.Query().Get("weeks"))
	if err != nil || weeks < 4 || weeks > 16 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weeks must be between 4 and 16"})
		return
	}
	goal := models.PeriodizationGoal(r.URL.Query().Get("goal"))
	deload := r.URL.Query().Get("deload") == "true"

	writeJSON(w, http.StatusOK, coach.Periodize(weeks, goal, deload))
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	strength, err := strconv.Atoi(r.URL.Query().Get("strength"))
	if err != nil || strength < 2 || strength > 4 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "strength must be between 2 and 4"})
		return
	}
	cardio, err := strconv.Atoi(r.URL.Query().Get("cardio"))
	if err != nil || cardio < 1 || cardio > 3 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cardio must be between 1 and 3"})
		return
	}
	cardioType := models.CardioType(r.URL.Query().Get("type"))
	priority := models.Priority(r.URL.Query().Get("prioritize"))

	writeJSON(w, http.StatusOK, map[string]any{
		"schedule": coach.OptimizeSchedule(strength, cardio, cardioType, priority),
		"tips":     coach.ScheduleTips(priority),
	})
}

func (s *Server) handleFormCues(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}
	writeJSON(w, http.StatusOK, coach.FormCues(exercise))
}

func (s *Server) handleSplitRecommendations(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 2 || days > 6 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "days must be between 2 and 6"})
		return
	}
	level := models.ExperienceLevel(r.URL.Query().Get("level"))
	goal := models.Goal(r.URL.Query().Get("goal"))

	writeJSON(w, http.StatusOK, coach.RecommendSplits(level, days, goal))
}

func (s *Server) handleExerciseCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, coach.Catalog)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
