package coach

import (
	"fmt"

	"github.com/claude/liftcoach/internal/models"
)

// weekdays is the canonical output ordering for weekly schedules.
var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// strengthPatterns keys fixed strength-day placements by session count.
var strengthPatterns = map[int][]int{
	4: {0, 2, 4, 5}, // Mon Wed Fri Sat
	3: {0, 2, 4},    // Mon Wed Fri
	2: {0, 3},       // Mon Thu
}

// cardioPatterns keys fixed cardio-day placements by session count
// (cardio-first strategy).
var cardioPatterns = map[int][]int{
	3: {1, 3, 5}, // Tue Thu Sat
	2: {1, 4},    // Tue Fri
}

// OptimizeSchedule assigns strength and cardio sessions to weekday slots.
// The result always has exactly 7 entries in Monday-to-Sunday order, one per
// weekday; unassigned days become Rest. The easy-before-legs rule uses a
// single-day lookahead only, which under-approximates a 48-hour window;
// keep it that way.
func OptimizeSchedule(strengthDays, cardioDays int, cardioKind models.CardioType, priority models.Priority) []models.ScheduleEntry {
	byDay := make(map[int]models.ScheduleEntry, 7)

	if priority == models.PriorityCardio {
		scheduleCardioFirst(byDay, strengthDays, cardioDays, cardioKind)
	} else {
		scheduleStrengthFirst(byDay, strengthDays, cardioDays, cardioKind)
	}

	out := make([]models.ScheduleEntry, 0, 7)
	for i, day := range weekdays {
		if e, ok := byDay[i]; ok {
			out = append(out, e)
			continue
		}
		out = append(out, models.ScheduleEntry{Day: day, Activity: "Rest", Note: "Recovery day"})
	}
	return out
}

func scheduleStrengthFirst(byDay map[int]models.ScheduleEntry, strengthDays, cardioDays int, kind models.CardioType) {
	pattern, ok := strengthPatterns[strengthDays]
	if !ok {
		pattern = strengthPatterns[2]
	}

	legDay := make(map[int]bool, len(pattern))
	for slot, idx := range pattern {
		label := "Upper"
		if slot%2 == 1 {
			label = "Lower"
			legDay[idx] = true
		}
		byDay[idx] = models.ScheduleEntry{
			Day:      weekdays[idx],
			Activity: "Strength - " + label,
			Note:     "Main lift plus accessories",
		}
	}

	placed := 0
	for i := 0; i < 7 && placed < cardioDays; i++ {
		if _, taken := byDay[i]; taken {
			continue
		}
		// Easy cardio the day before a scheduled leg day; otherwise a
		// quality session. Lookahead is one day and does not wrap.
		if i < 6 && legDay[i+1] {
			byDay[i] = models.ScheduleEntry{
				Day:      weekdays[i],
				Activity: fmt.Sprintf("Easy %s", kind),
				Note:     "Zone 2, 30-40 min",
			}
		} else {
			byDay[i] = models.ScheduleEntry{
				Day:      weekdays[i],
				Activity: fmt.Sprintf("Quality %s", kind),
				Note:     "Intervals or tempo, 20-30 min",
			}
		}
		placed++
	}
}

func scheduleCardioFirst(byDay map[int]models.ScheduleEntry, strengthDays, cardioDays int, kind models.CardioType) {
	pattern, ok := cardioPatterns[cardioDays]
	if !ok {
		pattern = cardioPatterns[2]
	}
	if len(pattern) > cardioDays {
		pattern = pattern[:cardioDays]
	}

	cardioDay := make(map[int]bool, len(pattern))
	for _, idx := range pattern {
		cardioDay[idx] = true
		byDay[idx] = models.ScheduleEntry{
			Day:      weekdays[idx],
			Activity: fmt.Sprintf("Quality %s", kind),
			Note:     "Priority session: intervals or tempo",
		}
	}

	// First pass keeps strength off the day right after cardio; a second
	// pass fills any remaining sessions on whatever days are left.
	slot := 0
	for pass := 0; pass < 2 && slot < strengthDays; pass++ {
		for i := 0; i < 7 && slot < strengthDays; i++ {
			if _, taken := byDay[i]; taken {
				continue
			}
			if pass == 0 && i > 0 && cardioDay[i-1] {
				continue
			}
			label := "Upper"
			if slot%2 == 1 {
				label = "Lower"
			}
			byDay[i] = models.ScheduleEntry{
				Day:      weekdays[i],
				Activity: "Strength - " + label,
				Note:     "Keep heavy lifting away from hard cardio",
			}
			slot++
		}
	}
}

// ScheduleTips are static guidance returned alongside a hybrid schedule.
func ScheduleTips(priority models.Priority) []string {
	tips := []string{
		"Keep easy cardio truly easy: you should be able to hold a conversation.",
		"Eat and sleep for the total workload, not just the lifting.",
		"If a session must move, slide it to a rest day rather than stacking two hard days.",
	}
	switch priority {
	case models.PriorityCardio:
		return append(tips, "Lift after intervals on double days so the quality session stays fresh.")
	case models.PriorityStrength:
		return append(tips, "Schedule quality cardio as far from lower-body sessions as the week allows.")
	default:
		return append(tips, "Alternate which discipline gets the fresher day week to week.")
	}
}
