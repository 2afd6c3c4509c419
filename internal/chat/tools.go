package chat

import (
	"encoding/json"
	"fmt"

	"github.com/claude/liftcoach/internal/coach"
	"github.com/claude/liftcoach/internal/models"
	"github.com/openai/openai-go/v3"
)

// toolDefs declares the coaching functions exposed to the model.
var toolDefs = []openai.ChatCompletionToolUnionParam{
	openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name:        "estimate_1rm",
		Description: openai.String("Estimate a one-rep max from a weight and rep count using the Epley formula"),
		Parameters: openai.FunctionParameters{
			"type": "object",
			"properties": map[string]any{
				"weight_kg": map[string]any{"type": "number", "description": "Weight lifted in kg"},
				"reps":      map[string]any{"type": "integer", "description": "Reps completed"},
			},
			"required": []string{"weight_kg", "reps"},
		},
	}),
	openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name:        "get_progression",
		Description: openai.String("Recommend next-session weight and reps from the last performed set"),
		Parameters: openai.FunctionParameters{
			"type": "object",
			"properties": map[string]any{
				"exercise_id":    map[string]any{"type": "string"},
				"exercise_name":  map[string]any{"type": "string"},
				"last_weight_kg": map[string]any{"type": "number"},
				"last_reps":      map[string]any{"type": "integer"},
				"last_rpe":       map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
				"equipment": map[string]any{
					"type": "string",
					"enum": []string{"barbell", "ez_bar", "dumbbell", "kettlebell", "machine", "cable", "bodyweight"},
				},
			},
			"required": []string{"exercise_id", "exercise_name", "last_weight_kg", "last_reps", "equipment"},
		},
	}),
	openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name:        "generate_plan",
		Description: openai.String("Generate a structured multi-day training plan"),
		Parameters: openai.FunctionParameters{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
				"split_type": map[string]any{
					"type": "string",
					"enum": []string{"ppl_3", "ppl_6", "upper_lower_4", "full_body_3", "arnold_6", "bro_5"},
				},
				"days_per_week":  map[string]any{"type": "integer", "minimum": 2, "maximum": 6},
				"goal":           map[string]any{"type": "string", "enum": []string{"hypertrophy", "strength", "endurance"}},
				"include_cardio": map[string]any{"type": "boolean"},
			},
			"required": []string{"name", "split_type", "days_per_week", "goal"},
		},
	}),
	openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name:        "calculate_periodization",
		Description: openai.String("Break a training block into weekly phases with intensity and volume bands"),
		Parameters: openai.FunctionParameters{
			"type": "object",
			"properties": map[string]any{
				"total_weeks":    map[string]any{"type": "integer", "minimum": 4, "maximum": 16},
				"goal":           map[string]any{"type": "string", "enum": []string{"hypertrophy", "strength", "peaking"}},
				"include_deload": map[string]any{"type": "boolean"},
			},
			"required": []string{"total_weeks", "goal"},
		},
	}),
	openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name:        "optimize_hybrid_schedule",
		Description: openai.String("Assign strength and cardio sessions to weekdays for a hybrid training week"),
		Parameters: openai.FunctionParameters{
			"type": "object",
			"properties": map[string]any{
				"strength_days": map[string]any{"type": "integer", "minimum": 2, "maximum": 4},
				"cardio_days":   map[string]any{"type": "integer", "minimum": 1, "maximum": 3},
				"cardio_type":   map[string]any{"type": "string", "enum": []string{"running", "cycling", "swimming", "rowing"}},
				"prioritize":    map[string]any{"type": "string", "enum": []string{"strength", "cardio", "balanced"}},
			},
			"required": []string{"strength_days", "cardio_days", "cardio_type", "prioritize"},
		},
	}),
	openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name:        "interpret_effort",
		Description: openai.String("Convert a free-text effort description into an RPE value"),
		Parameters: openai.FunctionParameters{
			"type": "object",
			"properties": map[string]any{
				"description": map[string]any{"type": "string"},
			},
			"required": []string{"description"},
		},
	}),
	openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name:        "get_form_cues",
		Description: openai.String("Look up technique cues for an exercise"),
		Parameters: openai.FunctionParameters{
			"type": "object",
			"properties": map[string]any{
				"exercise_name": map[string]any{"type": "string"},
			},
			"required": []string{"exercise_name"},
		},
	}),
	openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name:        "get_split_recommendations",
		Description: openai.String("Rank weekly training splits for an experience level, availability, and goal"),
		Parameters: openai.FunctionParameters{
			"type": "object",
			"properties": map[string]any{
				"experience_level": map[string]any{"type": "string", "enum": []string{"beginner", "intermediate", "advanced"}},
				"available_days":   map[string]any{"type": "integer", "minimum": 2, "maximum": 6},
				"goal":             map[string]any{"type": "string", "enum": []string{"hypertrophy", "strength", "endurance"}},
			},
			"required": []string{"experience_level", "available_days", "goal"},
		},
	}),
}

// dispatch executes one tool call and returns the JSON result for the model.
func dispatch(name, arguments string) (string, error) {
	switch name {
	case "estimate_1rm":
		var args struct {
			WeightKg float64 `json:"weight_kg"`
			Reps     int     `json:"reps"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("estimate_1rm arguments: %w", err)
		}
		if args.WeightKg <= 0 || args.Reps <= 0 {
			return "", fmt.Errorf("estimate_1rm needs positive weight_kg and reps")
		}
		return marshal(map[string]any{
			"estimated_1rm": coach.Estimate1RM(args.WeightKg, args.Reps),
		})

	case "get_progression":
		var args struct {
			ExerciseID   string           `json:"exercise_id"`
			ExerciseName string           `json:"exercise_name"`
			LastWeightKg float64          `json:"last_weight_kg"`
			LastReps     int              `json:"last_reps"`
			LastRPE      *int             `json:"last_rpe"`
			Equipment    models.Equipment `json:"equipment"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("get_progression arguments: %w", err)
		}
		if args.LastWeightKg <= 0 || args.LastReps <= 0 {
			return "", fmt.Errorf("get_progression needs positive last_weight_kg and last_reps")
		}
		return marshal(coach.Recommend(coach.LastPerformance{
			ExerciseID:   args.ExerciseID,
			ExerciseName: args.ExerciseName,
			WeightKg:     args.LastWeightKg,
			Reps:         args.LastReps,
			RPE:          args.LastRPE,
			Equipment:    args.Equipment,
		}))

	case "generate_plan":
		var args struct {
			Name          string           `json:"name"`
			SplitType     models.SplitType `json:"split_type"`
			DaysPerWeek   int              `json:"days_per_week"`
			Goal          models.Goal      `json:"goal"`
			IncludeCardio bool             `json:"include_cardio"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("generate_plan arguments: %w", err)
		}
		if args.DaysPerWeek < 2 || args.DaysPerWeek > 6 {
			return "", fmt.Errorf("days_per_week must be between 2 and 6")
		}
		return marshal(coach.GeneratePlan(args.Name, args.SplitType, args.DaysPerWeek, args.Goal, args.IncludeCardio))

	case "calculate_periodization":
		var args struct {
			TotalWeeks    int                      `json:"total_weeks"`
			Goal          models.PeriodizationGoal `json:"goal"`
			IncludeDeload bool                     `json:"include_deload"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("calculate_periodization arguments: %w", err)
		}
		if args.TotalWeeks < 4 || args.TotalWeeks > 16 {
			return "", fmt.Errorf("total_weeks must be between 4 and 16")
		}
		return marshal(coach.Periodize(args.TotalWeeks, args.Goal, args.IncludeDeload))

	case "optimize_hybrid_schedule":
		var args struct {
			StrengthDays int               `json:"strength_days"`
			CardioDays   int               `json:"cardio_days"`
			CardioType   models.CardioType `json:"cardio_type"`
			Prioritize   models.Priority   `json:"prioritize"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("optimize_hybrid_schedule arguments: %w", err)
		}
		if args.StrengthDays < 2 || args.StrengthDays > 4 {
			return "", fmt.Errorf("strength_days must be between 2 and 4")
		}
		if args.CardioDays < 1 || args.CardioDays > 3 {
			return "", fmt.Errorf("cardio_days must be between 1 and 3")
		}
		return marshal(map[string]any{
			"schedule": coach.OptimizeSchedule(args.StrengthDays, args.CardioDays, args.CardioType, args.Prioritize),
			"tips":     coach.ScheduleTips(args.Prioritize),
		})

	case "interpret_effort":
		var args struct {
			Description string `json:"description"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("interpret_effort arguments: %w", err)
		}
		return marshal(coach.InterpretEffort(args.Description))

	case "get_form_cues":
		var args struct {
			ExerciseName string `json:"exercise_name"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("get_form_cues arguments: %w", err)
		}
		return marshal(coach.FormCues(args.ExerciseName))

	case "get_split_recommendations":
		var args struct {
			ExperienceLevel models.ExperienceLevel `json:"experience_level"`
			AvailableDays   int                    `json:"available_days"`
			Goal            models.Goal            `json:"goal"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("get_split_recommendations arguments: %w", err)
		}
		if args.AvailableDays < 2 || args.AvailableDays > 6 {
			return "", fmt.Errorf("available_days must be between 2 and 6")
		}
		return marshal(coach.RecommendSplits(args.ExperienceLevel, args.AvailableDays, args.Goal))
	}

	return "", fmt.Errorf("unknown function: %s", name)
}

func marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
