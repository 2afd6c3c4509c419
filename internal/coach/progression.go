package coach

import (
	"fmt"

	"github.com/claude/liftcoach/internal/models"
)

// Weight increments in kg. Barbell-class equipment moves in plate-pair
// steps; everything else in the smallest common machine/dumbbell step.
const (
	barbellIncrement = 2.5
	smallIncrement   = 1.25
)

// LastPerformance is the most recent set used as the progression baseline.
// RPE is optional; when absent the engine assumes a repeatable effort and
// reports medium confidence.
type LastPerformance struct {
	ExerciseID   string
	ExerciseName string
	WeightKg     float64
	Reps         int
	RPE          *int
	Equipment    models.Equipment
}

// Recommend computes the next-session weight and rep targets from the last
// performance. Inputs are assumed pre-validated (weight > 0, reps > 0,
// RPE in [1,10] when present).
func Recommend(last LastPerformance) models.ProgressionRecommendation {
	rec := models.ProgressionRecommendation{
		ExerciseID:     last.ExerciseID,
		ExerciseName:   last.ExerciseName,
		PreviousWeight: last.WeightKg,
		PreviousReps:   last.Reps,
		Confidence:     models.ConfidenceHigh,
	}

	rpe := 7
	if last.RPE != nil {
		rpe = *last.RPE
	} else {
		rec.Confidence = models.ConfidenceMedium
	}

	switch {
	case rpe <= 7:
		inc := weightIncrement(last.Equipment)
		rec.RecommendedWeight = round1(last.WeightKg + inc)
		rec.RecommendedReps = models.RepRange{Min: max(last.Reps-1, 1), Max: last.Reps + 1}
		rec.Trend = models.TrendProgressing
		rec.Reasoning = fmt.Sprintf("RPE %d leaves room to load: add %g kg and hold the rep band.", rpe, inc)
		if last.RPE == nil {
			rec.Reasoning = fmt.Sprintf("No RPE reported; assuming a repeatable effort, add %g kg.", inc)
		}
	case rpe == 8:
		rec.RecommendedWeight = last.WeightKg
		rec.RecommendedReps = models.RepRange{Min: last.Reps, Max: last.Reps + 2}
		rec.Trend = models.TrendProgressing
		rec.Reasoning = "RPE 8 is productive: keep the weight and build reps before loading."
	case rpe == 9:
		rec.RecommendedWeight = last.WeightKg
		rec.RecommendedReps = models.RepRange{Min: max(last.Reps-1, 1), Max: last.Reps}
		rec.Trend = models.TrendPlateau
		rec.Reasoning = "RPE 9 signals accumulated fatigue: repeat the weight at or just under last session's reps."
	default: // rpe >= 10
		rec.RecommendedWeight = round1(last.WeightKg * 0.9)
		rec.RecommendedReps = models.RepRange{Min: last.Reps, Max: last.Reps + 2}
		rec.Trend = models.TrendDeloadNeeded
		rec.Reasoning = "Maximal effort last session: back off 10% and rebuild with clean reps."
	}

	return rec
}

// weightIncrement returns the per-session load step for an equipment kind.
func weightIncrement(eq models.Equipment) float64 {
	switch eq {
	case models.EquipmentBarbell, models.EquipmentEZBar:
		return barbellIncrement
	default:
		return smallIncrement
	}
}
