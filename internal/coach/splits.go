package coach

import (
	"sort"

	"github.com/claude/liftcoach/internal/models"
)

// SplitSuggestion is one ranked entry from the split recommender.
type SplitSuggestion struct {
	Split       models.SplitType `json:"split"`
	Name        string           `json:"name"`
	DaysPerWeek int              `json:"days_per_week"`
	Reason      string           `json:"reason"`
}

// splitMeta holds ranking inputs per split. goalFit scores 0-3 how well a
// split serves each goal; minLevel gates high-frequency splits away from
// beginners.
type splitMeta struct {
	split    models.SplitType
	name     string
	days     int
	minLevel models.ExperienceLevel
	goalFit  map[models.Goal]int
	reason   map[models.Goal]string
}

var splitMetas = []splitMeta{
	{
		split: models.SplitFullBody, name: "Full Body (3 days)", days: 3,
		minLevel: models.ExperienceBeginner,
		goalFit:  map[models.Goal]int{models.GoalHypertrophy: 2, models.GoalStrength: 3, models.GoalEndurance: 3},
		reason: map[models.Goal]string{
			models.GoalHypertrophy: "High per-muscle frequency on few days.",
			models.GoalStrength:    "Practices the main lifts three times a week.",
			models.GoalEndurance:   "Leaves the most days free for conditioning.",
		},
	},
	{
		split: models.SplitPPL3, name: "Push/Pull/Legs (3 days)", days: 3,
		minLevel: models.ExperienceBeginner,
		goalFit:  map[models.Goal]int{models.GoalHypertrophy: 3, models.GoalStrength: 2, models.GoalEndurance: 2},
		reason: map[models.Goal]string{
			models.GoalHypertrophy: "Clean movement-pattern split with room for volume.",
			models.GoalStrength:    "Each main lift gets its own fresh day.",
			models.GoalEndurance:   "Simple structure that pairs well with cardio days.",
		},
	},
	{
		split: models.SplitUpperLower, name: "Upper/Lower (4 days)", days: 4,
		minLevel: models.ExperienceBeginner,
		goalFit:  map[models.Goal]int{models.GoalHypertrophy: 3, models.GoalStrength: 3, models.GoalEndurance: 2},
		reason: map[models.Goal]string{
			models.GoalHypertrophy: "Twice-weekly frequency for every muscle.",
			models.GoalStrength:    "Two squat/hinge and two press days per week.",
			models.GoalEndurance:   "Four focused sessions leave three days for cardio.",
		},
	},
	{
		split: models.SplitBro, name: "Body-Part Split (5 days)", days: 5,
		minLevel: models.ExperienceIntermediate,
		goalFit:  map[models.Goal]int{models.GoalHypertrophy: 2, models.GoalStrength: 1, models.GoalEndurance: 1},
		reason: map[models.Goal]string{
			models.GoalHypertrophy: "Maximum per-session focus on one muscle group.",
			models.GoalStrength:    "Low main-lift frequency; pick this for variety, not strength.",
			models.GoalEndurance:   "Five lifting days squeeze out conditioning time.",
		},
	},
	{
		split: models.SplitPPL6, name: "Push/Pull/Legs (6 days)", days: 6,
		minLevel: models.ExperienceIntermediate,
		goalFit:  map[models.Goal]int{models.GoalHypertrophy: 3, models.GoalStrength: 2, models.GoalEndurance: 1},
		reason: map[models.Goal]string{
			models.GoalHypertrophy: "The highest productive volume if recovery allows.",
			models.GoalStrength:    "High frequency, but fatigue management gets tricky.",
			models.GoalEndurance:   "Six lifting days leave little room for cardio.",
		},
	},
	{
		split: models.SplitArnold, name: "Arnold Split (6 days)", days: 6,
		minLevel: models.ExperienceAdvanced,
		goalFit:  map[models.Goal]int{models.GoalHypertrophy: 3, models.GoalStrength: 1, models.GoalEndurance: 1},
		reason: map[models.Goal]string{
			models.GoalHypertrophy: "Antagonist pairings keep six days dense and efficient.",
			models.GoalStrength:    "Built for physique work, not maximal lifts.",
			models.GoalEndurance:   "A six-day lifting commitment; not endurance-friendly.",
		},
	},
}

var levelRank = map[models.ExperienceLevel]int{
	models.ExperienceBeginner:     0,
	models.ExperienceIntermediate: 1,
	models.ExperienceAdvanced:     2,
}

// RecommendSplits ranks the built-in splits for an experience level, weekly
// availability, and goal. Splits needing more days than available, or more
// experience than the lifter has, are filtered out. Ordering is stable:
// goal fit descending, then fewer days, then tag.
func RecommendSplits(level models.ExperienceLevel, availableDays int, goal models.Goal) []SplitSuggestion {
	out := make([]SplitSuggestion, 0, len(splitMetas))
	fit := make(map[models.SplitType]int, len(splitMetas))

	for _, m := range splitMetas {
		if m.days > availableDays {
			continue
		}
		if levelRank[m.minLevel] > levelRank[level] {
			continue
		}
		fit[m.split] = m.goalFit[goal]
		out = append(out, SplitSuggestion{
			Split:       m.split,
			Name:        m.name,
			DaysPerWeek: m.days,
			Reason:      m.reason[goal],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if fit[out[i].Split] != fit[out[j].Split] {
			return fit[out[i].Split] > fit[out[j].Split]
		}
		if out[i].DaysPerWeek != out[j].DaysPerWeek {
			return out[i].DaysPerWeek < out[j].DaysPerWeek
		}
		return out[i].Split < out[j].Split
	})
	return out
}
