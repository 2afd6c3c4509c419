package models

import "time"

// WorkoutSet is one completed set as reported by the lifter.
// RPE and Notes are optional.
type WorkoutSet struct {
	ExerciseID   string  `json:"exercise_id"`
	ExerciseName string  `json:"exercise_name"`
	WeightKg     float64 `json:"weight_kg"`
	Reps         int     `json:"reps"`
	RPE          *int    `json:"rpe,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// SetRow is a persisted workout set.
type SetRow struct {
	ID           string    `json:"id"`
	UserID       int       `json:"user_id"`
	ExerciseID   string    `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name"`
	WeightKg     float64   `json:"weight_kg"`
	Reps         int       `json:"reps"`
	RPE          *int      `json:"rpe,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	LoggedAt     time.Time `json:"logged_at"`
}

// PersonalRecord is the best recorded performance for an exercise,
// ranked by estimated one-rep max.
type PersonalRecord struct {
	UserID       int       `json:"user_id"`
	ExerciseID   string    `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name"`
	WeightKg     float64   `json:"weight_kg"`
	Reps         int       `json:"reps"`
	Estimated1RM float64   `json:"estimated_1rm"`
	AchievedAt   time.Time `json:"achieved_at"`
}

// Trend labels the direction a lift is moving in.
type Trend string

const (
	TrendProgressing  Trend = "progressing"
	TrendPlateau      Trend = "plateau"
	TrendRegressing   Trend = "regressing"
	TrendDeloadNeeded Trend = "deload_needed"
)

// Confidence labels how much data backed a recommendation.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// RepRange is an inclusive target repetition band.
type RepRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ProgressionRecommendation is the progression engine's output for one exercise.
type ProgressionRecommendation struct {
	ExerciseID        string     `json:"exercise_id"`
	ExerciseName      string     `json:"exercise_name"`
	RecommendedWeight float64    `json:"recommended_weight"`
	RecommendedReps   RepRange   `json:"recommended_reps"`
	PreviousWeight    float64    `json:"previous_weight"`
	PreviousReps      int        `json:"previous_reps"`
	Reasoning         string     `json:"reasoning"`
	Trend             Trend      `json:"trend"`
	Confidence        Confidence `json:"confidence"`
}
