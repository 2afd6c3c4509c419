package coach

import (
	"testing"

	"github.com/claude/liftcoach/internal/models"
)

// TestRecommendSplitsDayFilter verifies splits needing more days than
// available are excluded.
func TestRecommendSplitsDayFilter(t *testing.T) {
	got := RecommendSplits(models.ExperienceAdvanced, 3, models.GoalHypertrophy)
	for _, s := range got {
		if s.DaysPerWeek > 3 {
			t.Errorf("suggestion %q needs %d days with only 3 available", s.Split, s.DaysPerWeek)
		}
	}
	if len(got) == 0 {
		t.Fatal("no suggestions for 3 available days")
	}
}

// TestRecommendSplitsExperienceGate verifies six-day splits are withheld from
// beginners even with full availability.
func TestRecommendSplitsExperienceGate(t *testing.T) {
	got := RecommendSplits(models.ExperienceBeginner, 6, models.GoalHypertrophy)
	for _, s := range got {
		if s.Split == models.SplitPPL6 || s.Split == models.SplitArnold || s.Split == models.SplitBro {
			t.Errorf("suggestion %q should be gated for beginners", s.Split)
		}
	}
}

// TestRecommendSplitsRanking verifies goal fit drives the ordering, with
// fewer days breaking ties.
func TestRecommendSplitsRanking(t *testing.T) {
	got := RecommendSplits(models.ExperienceBeginner, 6, models.GoalStrength)
	if len(got) < 2 {
		t.Fatalf("suggestions = %d, want >= 2", len(got))
	}
	// Full body and upper/lower both score 3 for strength; full body wins
	// the tie on fewer days.
	if got[0].Split != models.SplitFullBody {
		t.Errorf("top suggestion = %q, want full_body_3", got[0].Split)
	}
	if got[1].Split != models.SplitUpperLower {
		t.Errorf("second suggestion = %q, want upper_lower_4", got[1].Split)
	}
	for _, s := range got {
		if s.Reason == "" {
			t.Errorf("suggestion %q has no reason", s.Split)
		}
	}
}
