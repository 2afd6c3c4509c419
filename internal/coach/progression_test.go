package coach

import (
	"testing"

	"github.com/claude/liftcoach/internal/models"
)

func intPtr(v int) *int { return &v }

// TestRecommendLowRPE verifies that RPE <= 7 adds the equipment increment
// and widens the rep band around last session's reps.
func TestRecommendLowRPE(t *testing.T) {
	tests := []struct {
		equipment  models.Equipment
		wantWeight float64
	}{
		{models.EquipmentBarbell, 102.5},
		{models.EquipmentEZBar, 102.5},
		{models.EquipmentDumbbell, 101.25},
		{models.EquipmentMachine, 101.25},
		{models.EquipmentCable, 101.25},
		{models.EquipmentKettlebell, 101.25},
		{models.EquipmentBodyweight, 101.25},
	}
	for _, tt := range tests {
		rec := Recommend(LastPerformance{
			ExerciseID: "bench", WeightKg: 100, Reps: 8, RPE: intPtr(7), Equipment: tt.equipment,
		})
		if rec.RecommendedWeight != tt.wantWeight {
			t.Errorf("%s: weight = %v, want %v", tt.equipment, rec.RecommendedWeight, tt.wantWeight)
		}
		if rec.RecommendedReps != (models.RepRange{Min: 7, Max: 9}) {
			t.Errorf("%s: reps = %+v, want 7-9", tt.equipment, rec.RecommendedReps)
		}
		if rec.Trend != models.TrendProgressing {
			t.Errorf("%s: trend = %q, want progressing", tt.equipment, rec.Trend)
		}
		if rec.Confidence != models.ConfidenceHigh {
			t.Errorf("%s: confidence = %q, want high", tt.equipment, rec.Confidence)
		}
	}
}

// TestRecommendRPE8 verifies that RPE 8 holds the weight and targets more reps.
func TestRecommendRPE8(t *testing.T) {
	rec := Recommend(LastPerformance{WeightKg: 80, Reps: 10, RPE: intPtr(8), Equipment: models.EquipmentBarbell})
	if rec.RecommendedWeight != 80 {
		t.Errorf("weight = %v, want 80", rec.RecommendedWeight)
	}
	if rec.RecommendedReps != (models.RepRange{Min: 10, Max: 12}) {
		t.Errorf("reps = %+v, want 10-12", rec.RecommendedReps)
	}
	if rec.Trend != models.TrendProgressing {
		t.Errorf("trend = %q, want progressing", rec.Trend)
	}
}

// TestRecommendRPE9 verifies that RPE 9 holds the weight, narrows the rep
// band downward, and reports a plateau.
func TestRecommendRPE9(t *testing.T) {
	rec := Recommend(LastPerformance{WeightKg: 80, Reps: 10, RPE: intPtr(9), Equipment: models.EquipmentBarbell})
	if rec.RecommendedWeight != 80 {
		t.Errorf("weight = %v, want 80", rec.RecommendedWeight)
	}
	if rec.RecommendedReps != (models.RepRange{Min: 9, Max: 10}) {
		t.Errorf("reps = %+v, want 9-10", rec.RecommendedReps)
	}
	if rec.Trend != models.TrendPlateau {
		t.Errorf("trend = %q, want plateau", rec.Trend)
	}
}

// TestRecommendRPE10Deload verifies that maximal effort triggers a 10%
// deload rounded to one decimal.
func TestRecommendRPE10Deload(t *testing.T) {
	tests := []struct {
		weight float64
		want   float64
	}{
		{100, 90},
		{102.5, 92.3},
		{67.5, 60.8},
		{142.5, 128.3},
	}
	for _, tt := range tests {
		rec := Recommend(LastPerformance{WeightKg: tt.weight, Reps: 5, RPE: intPtr(10), Equipment: models.EquipmentBarbell})
		if rec.RecommendedWeight != tt.want {
			t.Errorf("deload from %v = %v, want %v", tt.weight, rec.RecommendedWeight, tt.want)
		}
		if rec.Trend != models.TrendDeloadNeeded {
			t.Errorf("trend = %q, want deload_needed", rec.Trend)
		}
	}
}

// TestRecommendNoRPE verifies that a missing RPE yields medium confidence
// and follows the progress branch.
func TestRecommendNoRPE(t *testing.T) {
	rec := Recommend(LastPerformance{WeightKg: 100, Reps: 5, Equipment: models.EquipmentBarbell})
	if rec.Confidence != models.ConfidenceMedium {
		t.Errorf("confidence = %q, want medium", rec.Confidence)
	}
	if rec.RecommendedWeight != 102.5 {
		t.Errorf("weight = %v, want 102.5", rec.RecommendedWeight)
	}
}

// TestRecommendRepFloor verifies the rep band never drops below one rep.
func TestRecommendRepFloor(t *testing.T) {
	rec := Recommend(LastPerformance{WeightKg: 100, Reps: 1, RPE: intPtr(9), Equipment: models.EquipmentBarbell})
	if rec.RecommendedReps.Min != 1 {
		t.Errorf("rep min = %d, want 1", rec.RecommendedReps.Min)
	}
}
