package coach

import "github.com/claude/liftcoach/internal/models"

// Catalog is the built-in exercise library. Constructed once at init and
// never mutated.
var Catalog = []models.Exercise{
	{ID: "squat", Name: "Back Squat", MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentBarbell, Compound: true, DefaultSets: 4, RepMin: 5, RepMax: 8, RestSeconds: 180},
	{ID: "front-squat", Name: "Front Squat", MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentBarbell, Compound: true, DefaultSets: 3, RepMin: 5, RepMax: 8, RestSeconds: 180},
	{ID: "deadlift", Name: "Deadlift", MuscleGroup: models.MuscleHamstrings, Equipment: models.EquipmentBarbell, Compound: true, DefaultSets: 3, RepMin: 3, RepMax: 6, RestSeconds: 240},
	{ID: "rdl", Name: "Romanian Deadlift", MuscleGroup: models.MuscleHamstrings, Equipment: models.EquipmentBarbell, Compound: true, DefaultSets: 3, RepMin: 8, RepMax: 12, RestSeconds: 150},
	{ID: "bench", Name: "Bench Press", MuscleGroup: models.MuscleChest, Equipment: models.EquipmentBarbell, Compound: true, DefaultSets: 4, RepMin: 5, RepMax: 8, RestSeconds: 180},
	{ID: "incline-db-press", Name: "Incline Dumbbell Press", MuscleGroup: models.MuscleChest, Equipment: models.EquipmentDumbbell, Compound: true, DefaultSets: 3, RepMin: 8, RepMax: 12, RestSeconds: 120},
	{ID: "ohp", Name: "Overhead Press", MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentBarbell, Compound: true, DefaultSets: 3, RepMin: 5, RepMax: 8, RestSeconds: 180},
	{ID: "lateral-raise", Name: "Lateral Raise", MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentDumbbell, Compound: false, DefaultSets: 3, RepMin: 12, RepMax: 20, RestSeconds: 60},
	{ID: "pullup", Name: "Pull-Up", MuscleGroup: models.MuscleBack, Equipment: models.EquipmentBodyweight, Compound: true, DefaultSets: 3, RepMin: 5, RepMax: 10, RestSeconds: 150},
	{ID: "row", Name: "Barbell Row", MuscleGroup: models.MuscleBack, Equipment: models.EquipmentBarbell, Compound: true, DefaultSets: 4, RepMin: 6, RepMax: 10, RestSeconds: 150},
	{ID: "lat-pulldown", Name: "Lat Pulldown", MuscleGroup: models.MuscleBack, Equipment: models.EquipmentCable, Compound: true, DefaultSets: 3, RepMin: 10, RepMax: 15, RestSeconds: 90},
	{ID: "cable-row", Name: "Seated Cable Row", MuscleGroup: models.MuscleBack, Equipment: models.EquipmentCable, Compound: true, DefaultSets: 3, RepMin: 10, RepMax: 15, RestSeconds: 90},
	{ID: "curl", Name: "EZ-Bar Curl", MuscleGroup: models.MuscleBiceps, Equipment: models.EquipmentEZBar, Compound: false, DefaultSets: 3, RepMin: 8, RepMax: 12, RestSeconds: 90},
	{ID: "hammer-curl", Name: "Hammer Curl", MuscleGroup: models.MuscleForearms, Equipment: models.EquipmentDumbbell, Compound: false, DefaultSets: 3, RepMin: 10, RepMax: 15, RestSeconds: 60},
	{ID: "triceps-pushdown", Name: "Triceps Pushdown", MuscleGroup: models.MuscleTriceps, Equipment: models.EquipmentCable, Compound: false, DefaultSets: 3, RepMin: 10, RepMax: 15, RestSeconds: 60},
	{ID: "skullcrusher", Name: "Skullcrusher", MuscleGroup: models.MuscleTriceps, Equipment: models.EquipmentEZBar, Compound: false, DefaultSets: 3, RepMin: 8, RepMax: 12, RestSeconds: 90},
	{ID: "leg-press", Name: "Leg Press", MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentMachine, Compound: true, DefaultSets: 3, RepMin: 10, RepMax: 15, RestSeconds: 120},
	{ID: "leg-curl", Name: "Lying Leg Curl", MuscleGroup: models.MuscleHamstrings, Equipment: models.EquipmentMachine, Compound: false, DefaultSets: 3, RepMin: 10, RepMax: 15, RestSeconds: 90},
	{ID: "hip-thrust", Name: "Hip Thrust", MuscleGroup: models.MuscleGlutes, Equipment: models.EquipmentBarbell, Compound: true, DefaultSets: 3, RepMin: 8, RepMax: 12, RestSeconds: 120},
	{ID: "calf-raise", Name: "Standing Calf Raise", MuscleGroup: models.MuscleCalves, Equipment: models.EquipmentMachine, Compound: false, DefaultSets: 4, RepMin: 10, RepMax: 15, RestSeconds: 60},
	{ID: "plank", Name: "Plank", MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight, Compound: false, DefaultSets: 3, RepMin: 1, RepMax: 1, RestSeconds: 60},
	{ID: "kb-swing", Name: "Kettlebell Swing", MuscleGroup: models.MuscleGlutes, Equipment: models.EquipmentKettlebell, Compound: true, DefaultSets: 3, RepMin: 12, RepMax: 20, RestSeconds: 90},
	{ID: "easy-run", Name: "Easy Run", MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight, Compound: false, DefaultSets: 1, RepMin: 20, RepMax: 40, RestSeconds: 0},
}

// catalogByID indexes Catalog for slot construction.
var catalogByID = func() map[string]models.Exercise {
	m := make(map[string]models.Exercise, len(Catalog))
	for _, ex := range Catalog {
		m[ex.ID] = ex
	}
	return m
}()

// ExerciseByID looks up a catalog exercise.
func ExerciseByID(id string) (models.Exercise, bool) {
	ex, ok := catalogByID[id]
	return ex, ok
}

// recommendedByType lists up to six catalog exercises per workout type.
// Workout types without an entry (custom, cardio handled separately) get
// no pre-filled slots.
var recommendedByType = map[models.WorkoutType][]string{
	models.WorkoutPush:     {"bench", "ohp", "incline-db-press", "lateral-raise", "triceps-pushdown", "skullcrusher"},
	models.WorkoutPull:     {"deadlift", "row", "pullup", "lat-pulldown", "curl", "hammer-curl"},
	models.WorkoutLegs:     {"squat", "rdl", "leg-press", "leg-curl", "hip-thrust", "calf-raise"},
	models.WorkoutUpper:    {"bench", "row", "ohp", "lat-pulldown", "curl", "triceps-pushdown"},
	models.WorkoutLower:    {"squat", "rdl", "leg-press", "leg-curl", "calf-raise", "plank"},
	models.WorkoutFullBody: {"squat", "bench", "row", "ohp", "rdl", "plank"},
	models.WorkoutArms:     {"curl", "skullcrusher", "hammer-curl", "triceps-pushdown", "lateral-raise", "plank"},
}
