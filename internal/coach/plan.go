package coach

import (
	"github.com/claude/liftcoach/internal/models"
	"github.com/google/uuid"
)

// dayTemplate is one day in a split template.
type dayTemplate struct {
	name  string
	wtype models.WorkoutType
}

// splitTemplates maps split tags to their day structure. Unknown tags fall
// back to the 3-day push/pull/legs template.
var splitTemplates = map[models.SplitType][]dayTemplate{
	models.SplitPPL3: {
		{"Push", models.WorkoutPush},
		{"Pull", models.WorkoutPull},
		{"Legs", models.WorkoutLegs},
	},
	models.SplitPPL6: {
		{"Push A", models.WorkoutPush},
		{"Pull A", models.WorkoutPull},
		{"Legs A", models.WorkoutLegs},
		{"Push B", models.WorkoutPush},
		{"Pull B", models.WorkoutPull},
		{"Legs B", models.WorkoutLegs},
	},
	models.SplitUpperLower: {
		{"Upper A", models.WorkoutUpper},
		{"Lower A", models.WorkoutLower},
		{"Upper B", models.WorkoutUpper},
		{"Lower B", models.WorkoutLower},
	},
	models.SplitFullBody: {
		{"Full Body A", models.WorkoutFullBody},
		{"Full Body B", models.WorkoutFullBody},
		{"Full Body C", models.WorkoutFullBody},
	},
	models.SplitArnold: {
		{"Chest & Back A", models.WorkoutCustom},
		{"Shoulders & Arms A", models.WorkoutArms},
		{"Legs A", models.WorkoutLegs},
		{"Chest & Back B", models.WorkoutCustom},
		{"Shoulders & Arms B", models.WorkoutArms},
		{"Legs B", models.WorkoutLegs},
	},
	models.SplitBro: {
		{"Chest", models.WorkoutPush},
		{"Back", models.WorkoutPull},
		{"Shoulders", models.WorkoutUpper},
		{"Arms", models.WorkoutArms},
		{"Legs", models.WorkoutLegs},
	},
}

// goalParams maps a training goal to its set/rep prescription.
type goalParam struct {
	repMin, repMax, sets int
}

var goalParams = map[models.Goal]goalParam{
	models.GoalHypertrophy: {repMin: 8, repMax: 12, sets: 4},
	models.GoalStrength:    {repMin: 3, repMax: 6, sets: 5},
	models.GoalEndurance:   {repMin: 12, repMax: 20, sets: 3},
}

// SplitExplanations describe each split for plan summaries.
var SplitExplanations = map[models.SplitType]string{
	models.SplitPPL3:       "Push/pull/legs hits every muscle once per week with clear day boundaries.",
	models.SplitPPL6:       "Push/pull/legs run twice per week; high frequency for experienced lifters.",
	models.SplitUpperLower: "Upper/lower alternation trains everything twice per week on four days.",
	models.SplitFullBody:   "Three full-body days; the most time-efficient layout for beginners.",
	models.SplitArnold:     "Chest+back, shoulders+arms, legs rotation; antagonist pairings, six days.",
	models.SplitBro:        "One muscle group per day; maximum per-session focus, low frequency.",
}

// GeneratePlan builds a multi-day training plan from a split template and a
// goal. Day numbers and exercise order are 1-indexed and contiguous. An
// unknown split tag is a permissive default, not an error: it resolves to
// the 3-day push/pull/legs template.
func GeneratePlan(name string, split models.SplitType, daysPerWeek int, goal models.Goal, includeCardio bool) models.TrainingPlan {
	tmpl, ok := splitTemplates[split]
	if !ok {
		split = models.SplitPPL3
		tmpl = splitTemplates[models.SplitPPL3]
	}

	params, ok := goalParams[goal]
	if !ok {
		goal = models.GoalHypertrophy
		params = goalParams[models.GoalHypertrophy]
	}

	days := min(daysPerWeek, len(tmpl))
	plan := models.TrainingPlan{
		ID:          uuid.NewString(),
		Name:        name,
		DaysPerWeek: daysPerWeek,
		SplitType:   split,
		Goal:        goal,
		Days:        make([]models.PlanDay, 0, days+1),
	}

	for i := 0; i < days; i++ {
		day := models.PlanDay{
			DayNumber:   i + 1,
			Name:        tmpl[i].name,
			WorkoutType: tmpl[i].wtype,
		}
		ids := recommendedByType[tmpl[i].wtype]
		if len(ids) > 6 {
			ids = ids[:6]
		}
		for j, id := range ids {
			day.Exercises = append(day.Exercises, models.PlanExercise{
				ExerciseID: id,
				Order:      j + 1,
				TargetSets: params.sets,
				TargetReps: models.RepRange{Min: params.repMin, Max: params.repMax},
			})
		}
		plan.Days = append(plan.Days, day)
	}

	// One synthetic easy-cardio day when the lifter asked for more days
	// than the split provides.
	if includeCardio && daysPerWeek > len(plan.Days) {
		plan.Days = append(plan.Days, models.PlanDay{
			DayNumber:   len(plan.Days) + 1,
			Name:        "Easy Run",
			WorkoutType: models.WorkoutCardio,
			Exercises: []models.PlanExercise{{
				ExerciseID: "easy-run",
				Order:      1,
				TargetSets: 1,
				TargetReps: models.RepRange{Min: 20, Max: 40},
				Notes:      "20-40 minutes at Zone 2, conversational pace",
			}},
		})
	}

	return plan
}
