package coach

import (
	"testing"

	"github.com/claude/liftcoach/internal/models"
)

// TestPeriodizeCoversAllWeeks verifies every goal/deload combination yields
// exactly totalWeeks entries numbered 1..totalWeeks contiguously.
func TestPeriodizeCoversAllWeeks(t *testing.T) {
	goals := []models.PeriodizationGoal{
		models.PeriodizationHypertrophy,
		models.PeriodizationStrength,
		models.PeriodizationPeaking,
	}
	for _, goal := range goals {
		for _, deload := range []bool{true, false} {
			for total := 4; total <= 16; total++ {
				weeks := Periodize(total, goal, deload)
				if len(weeks) != total {
					t.Fatalf("%s total=%d deload=%v: %d entries, want %d", goal, total, deload, len(weeks), total)
				}
				for i, w := range weeks {
					if w.Week != i+1 {
						t.Fatalf("%s total=%d: entry %d numbered %d", goal, total, i, w.Week)
					}
					if w.Phase == "" || w.Intensity == "" {
						t.Errorf("%s total=%d week %d: missing labels", goal, total, w.Week)
					}
				}
			}
		}
	}
}

// TestPeriodizeHypertrophyPhases verifies the accumulation/intensification/
// deload partition for a 12-week hypertrophy block.
func TestPeriodizeHypertrophyPhases(t *testing.T) {
	weeks := Periodize(12, models.PeriodizationHypertrophy, true)

	// floor(0.5*12)=6 accumulation, floor(0.35*12)=4 intensification,
	// remainder 2 deload.
	counts := map[models.Phase]int{}
	for _, w := range weeks {
		counts[w.Phase]++
	}
	if counts[models.PhaseAccumulation] != 6 {
		t.Errorf("accumulation = %d, want 6", counts[models.PhaseAccumulation])
	}
	if counts[models.PhaseIntensification] != 4 {
		t.Errorf("intensification = %d, want 4", counts[models.PhaseIntensification])
	}
	if counts[models.PhaseDeload] != 2 {
		t.Errorf("deload = %d, want 2", counts[models.PhaseDeload])
	}

	// Without deload the remainder folds into intensification.
	weeks = Periodize(12, models.PeriodizationHypertrophy, false)
	counts = map[models.Phase]int{}
	for _, w := range weeks {
		counts[w.Phase]++
	}
	if counts[models.PhaseDeload] != 0 {
		t.Errorf("deload = %d, want 0", counts[models.PhaseDeload])
	}
	if counts[models.PhaseIntensification] != 6 {
		t.Errorf("intensification = %d, want 6", counts[models.PhaseIntensification])
	}
}

// TestPeriodizeStrengthFinalDeload verifies the strength branch converts only
// the final week to a deload when requested.
func TestPeriodizeStrengthFinalDeload(t *testing.T) {
	weeks := Periodize(10, models.PeriodizationStrength, true)

	// floor(0.4*10)=4 volume, 4 strength, remainder peaking with the last
	// week swapped to deload.
	if weeks[3].Phase != models.PhaseVolume {
		t.Errorf("week 4 = %q, want Volume", weeks[3].Phase)
	}
	if weeks[4].Phase != models.PhaseStrength {
		t.Errorf("week 5 = %q, want Strength", weeks[4].Phase)
	}
	if weeks[8].Phase != models.PhasePeaking {
		t.Errorf("week 9 = %q, want Peaking", weeks[8].Phase)
	}
	if weeks[9].Phase != models.PhaseDeload {
		t.Errorf("week 10 = %q, want Deload", weeks[9].Phase)
	}

	weeks = Periodize(10, models.PeriodizationStrength, false)
	if weeks[9].Phase != models.PhasePeaking {
		t.Errorf("week 10 without deload = %q, want Peaking", weeks[9].Phase)
	}
}

// TestPeriodizePeakingIntensity verifies the linear intensity ramp with the
// 15-point cap and every-4th-week deloads.
func TestPeriodizePeakingIntensity(t *testing.T) {
	weeks := Periodize(12, models.PeriodizationPeaking, true)

	wantIntensity := map[int]string{
		1:  "82%",
		2:  "84%",
		3:  "86%",
		4:  "60%", // deload
		5:  "90%",
		7:  "94%",
		9:  "95%", // capped at 80+15
		11: "95%",
	}
	for week, want := range wantIntensity {
		if got := weeks[week-1].Intensity; got != want {
			t.Errorf("week %d intensity = %q, want %q", week, got, want)
		}
	}
	for _, w := range weeks {
		if w.Week%4 == 0 && w.Phase != models.PhaseDeload {
			t.Errorf("week %d = %q, want Deload", w.Week, w.Phase)
		}
	}

	// Without deloads every week is a peak week.
	weeks = Periodize(8, models.PeriodizationPeaking, false)
	for _, w := range weeks {
		if w.Phase != models.PhasePeaking {
			t.Errorf("week %d = %q, want Peaking", w.Week, w.Phase)
		}
	}
	if weeks[3].Intensity != "88%" {
		t.Errorf("week 4 intensity = %q, want 88%%", weeks[3].Intensity)
	}
}
