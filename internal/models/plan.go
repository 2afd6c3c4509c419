package models

// Goal is a training goal driving set/rep prescriptions.
type Goal string

const (
	GoalHypertrophy Goal = "hypertrophy"
	GoalStrength    Goal = "strength"
	GoalEndurance   Goal = "endurance"
)

// SplitType tags a weekly training split template.
type SplitType string

const (
	SplitPPL3       SplitType = "ppl_3"
	SplitPPL6       SplitType = "ppl_6"
	SplitUpperLower SplitType = "upper_lower_4"
	SplitFullBody   SplitType = "full_body_3"
	SplitArnold     SplitType = "arnold_6"
	SplitBro        SplitType = "bro_5"
)

// WorkoutType tags what a training day focuses on.
type WorkoutType string

const (
	WorkoutPush     WorkoutType = "push"
	WorkoutPull     WorkoutType = "pull"
	WorkoutLegs     WorkoutType = "legs"
	WorkoutUpper    WorkoutType = "upper"
	WorkoutLower    WorkoutType = "lower"
	WorkoutFullBody WorkoutType = "full_body"
	WorkoutArms     WorkoutType = "arms"
	WorkoutCardio   WorkoutType = "cardio"
	WorkoutCustom   WorkoutType = "custom"
)

// TrainingPlan is a multi-day periodized program.
type TrainingPlan struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DaysPerWeek int       `json:"days_per_week"`
	SplitType   SplitType `json:"split_type"`
	Goal        Goal      `json:"goal"`
	Days        []PlanDay `json:"days"`
}

// PlanDay is one training day within a plan. DayNumber is 1-indexed
// and unique within the plan.
type PlanDay struct {
	DayNumber   int            `json:"day_number"`
	Name        string         `json:"name"`
	WorkoutType WorkoutType    `json:"workout_type"`
	Exercises   []PlanExercise `json:"exercises"`
}

// PlanExercise is a slot within a plan day. Order is 1-indexed and
// unique within the day.
type PlanExercise struct {
	ExerciseID string   `json:"exercise_id"`
	Order      int      `json:"order"`
	TargetSets int      `json:"target_sets"`
	TargetReps RepRange `json:"target_reps"`
	Notes      string   `json:"notes,omitempty"`
}
