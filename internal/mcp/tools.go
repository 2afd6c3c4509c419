package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/liftcoach/internal/coach"
	"github.com/claude/liftcoach/internal/models"
	"github.com/claude/liftcoach/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetProgression = mcp.NewTool("get_progression",
	mcp.WithDescription("Compute next-session weight and rep targets from the last performed set. Omit lastWeight/lastReps to use the most recently logged set for the exercise."),
	mcp.WithString("exerciseId", mcp.Required(), mcp.Description("Catalog exercise ID (e.g. 'bench', 'squat')")),
	mcp.WithString("exerciseName", mcp.Required(), mcp.Description("Display name of the exercise")),
	mcp.WithNumber("lastWeight", mcp.Description("Weight of the last set in kg. Defaults to the last logged set.")),
	mcp.WithNumber("lastReps", mcp.Description("Reps of the last set. Defaults to the last logged set.")),
	mcp.WithNumber("lastRPE", mcp.Description("RPE of the last set (1-10). Optional; lowers confidence when absent."), mcp.Min(1), mcp.Max(10)),
	mcp.WithString("equipment", mcp.Required(), mcp.Description("Equipment kind; determines the load increment."),
		mcp.Enum("barbell", "ez_bar", "dumbbell", "kettlebell", "machine", "cable", "bodyweight")),
)

var toolLogSet = mcp.NewTool("log_set",
	mcp.WithDescription("Log one completed set. Returns estimated 1RM, set volume, an intensity read, and coaching feedback. Updates the personal record when the estimated 1RM improves."),
	mcp.WithString("exerciseId", mcp.Required(), mcp.Description("Catalog exercise ID")),
	mcp.WithString("exerciseName", mcp.Required(), mcp.Description("Display name of the exercise")),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight in kg, > 0")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Completed reps, > 0")),
	mcp.WithNumber("rpe", mcp.Description("RPE 1-10"), mcp.Min(1), mcp.Max(10)),
	mcp.WithString("notes", mcp.Description("Free-text notes for the set")),
)

var toolInterpretEffort = mcp.NewTool("interpret_effort",
	mcp.WithDescription("Map a free-text effort description (English or German) to the 1-10 RPE scale. Never fails; unrecognized text defaults to RPE 7."),
	mcp.WithString("description", mcp.Required(), mcp.Description("How the set felt, in the lifter's own words")),
)

var toolGetFormCues = mcp.NewTool("get_form_cues",
	mcp.WithDescription("Look up coaching form cues for an exercise. Unknown exercises get generic cues."),
	mcp.WithString("exerciseName", mcp.Required(), mcp.Description("Exercise name; matched by substring")),
)

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Generate a structured multi-day training plan from a split template and a goal."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Plan name")),
	mcp.WithString("splitType", mcp.Required(), mcp.Description("Split template tag"),
		mcp.Enum("ppl_3", "ppl_6", "upper_lower_4", "full_body_3", "arnold_6", "bro_5")),
	mcp.WithNumber("daysPerWeek", mcp.Required(), mcp.Description("Training days per week (2-6)"), mcp.Min(2), mcp.Max(6)),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Training goal"),
		mcp.Enum("hypertrophy", "strength", "endurance")),
	mcp.WithBoolean("includeCardio", mcp.Description("Append an easy cardio day when the split has fewer days than requested")),
)

var toolGetSplitRecommendations = mcp.NewTool("get_split_recommendations",
	mcp.WithDescription("Rank training splits for an experience level, weekly availability, and goal."),
	mcp.WithString("experienceLevel", mcp.Required(), mcp.Description("Training experience"),
		mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithNumber("availableDays", mcp.Required(), mcp.Description("Days available per week (2-6)"), mcp.Min(2), mcp.Max(6)),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Training goal"),
		mcp.Enum("hypertrophy", "strength", "endurance")),
)

var toolCalculatePeriodization = mcp.NewTool("calculate_periodization",
	mcp.WithDescription("Partition a training block into labeled weekly phases with intensity and volume bands."),
	mcp.WithNumber("totalWeeks", mcp.Required(), mcp.Description("Block length in weeks (4-16)"), mcp.Min(4), mcp.Max(16)),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Block goal"),
		mcp.Enum("hypertrophy", "strength", "peaking")),
	mcp.WithBoolean("includeDeload", mcp.Description("Schedule deload weeks")),
)

var toolOptimizeHybridSchedule = mcp.NewTool("optimize_hybrid_schedule",
	mcp.WithDescription("Assign strength and cardio sessions to weekday slots. Always returns a full 7-day week."),
	mcp.WithNumber("strengthDays", mcp.Required(), mcp.Description("Strength sessions per week (2-4)"), mcp.Min(2), mcp.Max(4)),
	mcp.WithNumber("cardioDays", mcp.Required(), mcp.Description("Cardio sessions per week (1-3)"), mcp.Min(1), mcp.Max(3)),
	mcp.WithString("cardioType", mcp.Required(), mcp.Description("Cardio modality"),
		mcp.Enum("running", "cycling", "swimming", "rowing")),
	mcp.WithString("prioritize", mcp.Required(), mcp.Description("Which discipline gets the preferred slots"),
		mcp.Enum("strength", "cardio", "balanced")),
)

// --- Tool handlers ---

func (h *handlers) getProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireString("exerciseId")
	if err != nil {
		return mcp.NewToolResultError("exerciseId parameter is required"), nil
	}
	exerciseName, err := req.RequireString("exerciseName")
	if err != nil {
		return mcp.NewToolResultError("exerciseName parameter is required"), nil
	}
	equipment, err := req.RequireString("equipment")
	if err != nil {
		return mcp.NewToolResultError("equipment parameter is required"), nil
	}

	last := coach.LastPerformance{
		ExerciseID:   exerciseID,
		ExerciseName: exerciseName,
		WeightKg:     req.GetFloat("lastWeight", 0),
		Reps:         req.GetInt("lastReps", 0),
		Equipment:    models.Equipment(equipment),
	}
	if rpe := req.GetInt("lastRPE", 0); rpe != 0 {
		if rpe < 1 || rpe > 10 {
			return mcp.NewToolResultError("lastRPE must be between 1 and 10"), nil
		}
		last.RPE = &rpe
	}

	// Fall back to the logged history when the caller did not supply the
	// last performance.
	if last.WeightKg <= 0 || last.Reps <= 0 {
		uid := UserIDFromContext(ctx)
		row, err := h.ds.LastSet(ctx, uid, exerciseID)
		if errors.Is(err, storage.ErrNoSets) {
			return mcp.NewToolResultError("no logged sets for " + exerciseID + "; provide lastWeight and lastReps"), nil
		}
		if err != nil {
			h.log.Error("mcp get_progression history", "error", err)
			return mcp.NewToolResultError("history lookup failed: " + err.Error()), nil
		}
		last.WeightKg = row.WeightKg
		last.Reps = row.Reps
		if last.RPE == nil {
			last.RPE = row.RPE
		}
	}

	rec := coach.Recommend(last)
	result, err := mcp.NewToolResultJSON(rec)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) logSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireString("exerciseId")
	if err != nil {
		return mcp.NewToolResultError("exerciseId parameter is required"), nil
	}
	exerciseName, err := req.RequireString("exerciseName")
	if err != nil {
		return mcp.NewToolResultError("exerciseName parameter is required"), nil
	}
	weight, err := req.RequireFloat("weight")
	if err != nil || weight <= 0 {
		return mcp.NewToolResultError("weight must be a positive number"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil || reps <= 0 {
		return mcp.NewToolResultError("reps must be a positive integer"), nil
	}

	set := models.WorkoutSet{
		ExerciseID:   exerciseID,
		ExerciseName: exerciseName,
		WeightKg:     weight,
		Reps:         reps,
		Notes:        req.GetString("notes", ""),
	}
	if rpe := req.GetInt("rpe", 0); rpe != 0 {
		if rpe < 1 || rpe > 10 {
			return mcp.NewToolResultError("rpe must be between 1 and 10"), nil
		}
		set.RPE = &rpe
	}

	uid := UserIDFromContext(ctx)
	row, err := h.ds.InsertSet(ctx, uid, set)
	if err != nil {
		h.log.Error("mcp log_set insert", "error", err)
		return mcp.NewToolResultError("logging failed: " + err.Error()), nil
	}

	est := coach.Estimate1RM(weight, reps)
	newPR, err := h.ds.UpsertPersonalRecord(ctx, models.PersonalRecord{
		UserID:       uid,
		ExerciseID:   exerciseID,
		ExerciseName: exerciseName,
		WeightKg:     weight,
		Reps:         reps,
		Estimated1RM: est,
		AchievedAt:   time.Now().UTC(),
	})
	if err != nil {
		h.log.Warn("mcp log_set record update", "error", err)
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"success": true,
		"logged":  row,
		"stats": map[string]any{
			"estimated1RM": est,
			"volume":       weight * float64(reps),
			"intensity":    intensityLabel(set.RPE),
		},
		"feedback": setFeedback(exerciseName, weight, reps, set.RPE, newPR),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) interpretEffort(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description, err := req.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("description parameter is required"), nil
	}

	assessment := coach.InterpretEffort(description)
	result, err := mcp.NewToolResultJSON(map[string]any{
		"rpe":                 assessment.RPE,
		"reasoning":           assessment.Reasoning,
		"originalDescription": description,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getFormCues(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("exerciseName")
	if err != nil {
		return mcp.NewToolResultError("exerciseName parameter is required"), nil
	}

	result, err := mcp.NewToolResultJSON(coach.FormCues(name))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) generatePlan(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	splitType, err := req.RequireString("splitType")
	if err != nil {
		return mcp.NewToolResultError("splitType parameter is required"), nil
	}
	daysPerWeek, err := req.RequireInt("daysPerWeek")
	if err != nil || daysPerWeek < 2 || daysPerWeek > 6 {
		return mcp.NewToolResultError("daysPerWeek must be between 2 and 6"), nil
	}
	goal, err := req.RequireString("goal")
	if err != nil {
		return mcp.NewToolResultError("goal parameter is required"), nil
	}
	includeCardio := req.GetBool("includeCardio", false)

	plan := coach.GeneratePlan(name, models.SplitType(splitType), daysPerWeek, models.Goal(goal), includeCardio)

	exercisesPerDay := 0
	if len(plan.Days) > 0 {
		exercisesPerDay = len(plan.Days[0].Exercises)
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"success": true,
		"plan":    plan,
		"summary": map[string]any{
			"totalDays":        len(plan.Days),
			"exercisesPerDay":  exercisesPerDay,
			"splitExplanation": coach.SplitExplanations[plan.SplitType],
		},
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSplitRecommendations(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	level, err := req.RequireString("experienceLevel")
	if err != nil {
		return mcp.NewToolResultError("experienceLevel parameter is required"), nil
	}
	availableDays, err := req.RequireInt("availableDays")
	if err != nil || availableDays < 2 || availableDays > 6 {
		return mcp.NewToolResultError("availableDays must be between 2 and 6"), nil
	}
	goal, err := req.RequireString("goal")
	if err != nil {
		return mcp.NewToolResultError("goal parameter is required"), nil
	}

	suggestions := coach.RecommendSplits(models.ExperienceLevel(level), availableDays, models.Goal(goal))
	result, err := mcp.NewToolResultJSON(map[string]any{
		"experienceLevel": level,
		"availableDays":   availableDays,
		"goal":            goal,
		"suggestions":     suggestions,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) calculatePeriodization(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	totalWeeks, err := req.RequireInt("totalWeeks")
	if err != nil || totalWeeks < 4 || totalWeeks > 16 {
		return mcp.NewToolResultError("totalWeeks must be between 4 and 16"), nil
	}
	goal, err := req.RequireString("goal")
	if err != nil {
		return mcp.NewToolResultError("goal parameter is required"), nil
	}
	includeDeload := req.GetBool("includeDeload", false)

	phases := coach.Periodize(totalWeeks, models.PeriodizationGoal(goal), includeDeload)

	phaseCounts := map[models.Phase]int{}
	for _, w := range phases {
		phaseCounts[w.Phase]++
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"totalWeeks":     totalWeeks,
		"goal":           goal,
		"includesDeload": includeDeload,
		"phases":         phases,
		"summary":        map[string]any{"phaseCounts": phaseCounts},
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) optimizeHybridSchedule(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	strengthDays, err := req.RequireInt("strengthDays")
	if err != nil || strengthDays < 2 || strengthDays > 4 {
		return mcp.NewToolResultError("strengthDays must be between 2 and 4"), nil
	}
	cardioDays, err := req.RequireInt("cardioDays")
	if err != nil || cardioDays < 1 || cardioDays > 3 {
		return mcp.NewToolResultError("cardioDays must be between 1 and 3"), nil
	}
	cardioType, err := req.RequireString("cardioType")
	if err != nil {
		return mcp.NewToolResultError("cardioType parameter is required"), nil
	}
	prioritize, err := req.RequireString("prioritize")
	if err != nil {
		return mcp.NewToolResultError("prioritize parameter is required"), nil
	}

	priority := models.Priority(prioritize)
	schedule := coach.OptimizeSchedule(strengthDays, cardioDays, models.CardioType(cardioType), priority)

	result, err := mcp.NewToolResultJSON(map[string]any{
		"configuration": map[string]any{
			"strengthDays": strengthDays,
			"cardioDays":   cardioDays,
			"cardioType":   cardioType,
			"prioritize":   prioritize,
		},
		"schedule": schedule,
		"tips":     coach.ScheduleTips(priority),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// intensityLabel reads a logged RPE into a coarse intensity bucket.
func intensityLabel(rpe *int) string {
	if rpe == nil {
		return "logged"
	}
	switch {
	case *rpe <= 6:
		return "light"
	case *rpe <= 8:
		return "moderate"
	default:
		return "maximal"
	}
}

// setFeedback builds the human-readable log_set response line.
func setFeedback(name string, weight float64, reps int, rpe *int, newPR bool) string {
	msg := fmt.Sprintf("Logged %s: %.1f kg x %d.", name, weight, reps)
	if newPR {
		msg += " New estimated 1RM personal record!"
	}
	if rpe != nil && *rpe >= 9 {
		msg += " That was near-maximal; plan an easier session next time."
	}
	return msg
}
