package coach

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/claude/liftcoach/internal/models"
)

// TestOptimizeScheduleCoversWeek verifies every priority/count combination
// produces exactly 7 entries in canonical Monday-to-Sunday order.
func TestOptimizeScheduleCoversWeek(t *testing.T) {
	want := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for _, priority := range []models.Priority{models.PriorityStrength, models.PriorityCardio, models.PriorityBalanced} {
		for strength := 2; strength <= 4; strength++ {
			for cardio := 1; cardio <= 3; cardio++ {
				sched := OptimizeSchedule(strength, cardio, models.CardioRunning, priority)
				if len(sched) != 7 {
					t.Fatalf("%s s=%d c=%d: %d entries, want 7", priority, strength, cardio, len(sched))
				}
				var days []string
				for _, e := range sched {
					days = append(days, e.Day)
					if e.Activity == "" {
						t.Errorf("%s s=%d c=%d: empty activity on %s", priority, strength, cardio, e.Day)
					}
				}
				if diff := cmp.Diff(want, days); diff != "" {
					t.Errorf("%s s=%d c=%d: weekday order mismatch (-want +got):\n%s", priority, strength, cardio, diff)
				}
			}
		}
	}
}

// TestOptimizeScheduleStrengthPattern verifies the fixed weekday placements
// keyed by strength session count.
func TestOptimizeScheduleStrengthPattern(t *testing.T) {
	tests := []struct {
		count int
		days  []string
	}{
		{4, []string{"Monday", "Wednesday", "Friday", "Saturday"}},
		{3, []string{"Monday", "Wednesday", "Friday"}},
		{2, []string{"Monday", "Thursday"}},
	}
	for _, tt := range tests {
		sched := OptimizeSchedule(tt.count, 1, models.CardioCycling, models.PriorityStrength)
		var got []string
		for _, e := range sched {
			if strings.HasPrefix(e.Activity, "Strength") {
				got = append(got, e.Day)
			}
		}
		if diff := cmp.Diff(tt.days, got); diff != "" {
			t.Errorf("count %d placement mismatch (-want +got):\n%s", tt.count, diff)
		}
	}
}

// TestOptimizeScheduleUpperLowerAlternation verifies strength slots alternate
// Upper/Lower by parity.
func TestOptimizeScheduleUpperLowerAlternation(t *testing.T) {
	sched := OptimizeSchedule(4, 1, models.CardioRunning, models.PriorityStrength)
	byDay := map[string]string{}
	for _, e := range sched {
		byDay[e.Day] = e.Activity
	}
	if byDay["Monday"] != "Strength - Upper" {
		t.Errorf("Monday = %q, want Strength - Upper", byDay["Monday"])
	}
	if byDay["Wednesday"] != "Strength - Lower" {
		t.Errorf("Wednesday = %q, want Strength - Lower", byDay["Wednesday"])
	}
	if byDay["Friday"] != "Strength - Upper" {
		t.Errorf("Friday = %q, want Strength - Upper", byDay["Friday"])
	}
	if byDay["Saturday"] != "Strength - Lower" {
		t.Errorf("Saturday = %q, want Strength - Lower", byDay["Saturday"])
	}
}

// TestOptimizeScheduleEasyBeforeLegDay verifies cardio landing the day before
// a lower-body session is labeled Easy, and cardio elsewhere Quality.
func TestOptimizeScheduleEasyBeforeLegDay(t *testing.T) {
	// 4 strength days: Mon(U) Wed(L) Fri(U) Sat(L). First free day is
	// Tuesday, the day before Wednesday's leg day.
	sched := OptimizeSchedule(4, 2, models.CardioRunning, models.PriorityBalanced)
	byDay := map[string]models.ScheduleEntry{}
	for _, e := range sched {
		byDay[e.Day] = e
	}
	if got := byDay["Tuesday"].Activity; got != "Easy running" {
		t.Errorf("Tuesday = %q, want Easy running", got)
	}
	// Thursday precedes Friday (upper), so it stays a quality session.
	if got := byDay["Thursday"].Activity; got != "Quality running" {
		t.Errorf("Thursday = %q, want Quality running", got)
	}
}

// TestOptimizeScheduleCardioFirst verifies the cardio-priority patterns and
// that strength avoids the day directly after cardio when possible.
func TestOptimizeScheduleCardioFirst(t *testing.T) {
	sched := OptimizeSchedule(2, 3, models.CardioRowing, models.PriorityCardio)
	byDay := map[string]models.ScheduleEntry{}
	for _, e := range sched {
		byDay[e.Day] = e
	}
	for _, day := range []string{"Tuesday", "Thursday", "Saturday"} {
		if !strings.HasPrefix(byDay[day].Activity, "Quality") {
			t.Errorf("%s = %q, want cardio", day, byDay[day].Activity)
		}
	}
	// Monday is the only day not adjacent to cardio; it takes the first
	// strength slot.
	if byDay["Monday"].Activity != "Strength - Upper" {
		t.Errorf("Monday = %q, want Strength - Upper", byDay["Monday"].Activity)
	}
	// Wednesday follows Tuesday cardio; it is only used once the
	// non-adjacent days run out.
	if byDay["Wednesday"].Activity != "Strength - Lower" {
		t.Errorf("Wednesday = %q, want Strength - Lower (second pass)", byDay["Wednesday"].Activity)
	}
}

// TestOptimizeScheduleRestFill verifies unassigned days become Rest.
func TestOptimizeScheduleRestFill(t *testing.T) {
	sched := OptimizeSchedule(2, 1, models.CardioSwimming, models.PriorityStrength)
	rest := 0
	for _, e := range sched {
		if e.Activity == "Rest" {
			rest++
		}
	}
	if rest != 4 {
		t.Errorf("rest days = %d, want 4", rest)
	}
}
