package coach

import (
	"fmt"

	"github.com/claude/liftcoach/internal/models"
)

// phaseLabels carries the fixed intensity/volume/note triple for a phase.
type phaseLabels struct {
	intensity, volume, note string
}

var hypertrophyLabels = map[models.Phase]phaseLabels{
	models.PhaseAccumulation:    {"65-75%", "High", "Accumulate volume; stop sets 2-3 reps shy of failure."},
	models.PhaseIntensification: {"75-85%", "Moderate", "Push working sets closer to failure at heavier loads."},
	models.PhaseDeload:          {"60%", "Low", "Half the sets, easy weights; let fatigue dissipate."},
}

var strengthLabels = map[models.Phase]phaseLabels{
	models.PhaseVolume:   {"70-80%", "High", "Build work capacity with submaximal triples and fives."},
	models.PhaseStrength: {"80-90%", "Moderate", "Heavy doubles and triples; rest long between sets."},
	models.PhasePeaking:  {"90%+", "Low", "Singles and openers; sharpen technique at near-max loads."},
	models.PhaseDeload:   {"60%", "Low", "Light technique work only before testing."},
}

// Periodize partitions a training block into labeled weekly phases.
// The output always contains exactly totalWeeks entries with week numbers
// covering [1, totalWeeks] contiguously; rounding remainders land in the
// final phase of each branch.
func Periodize(totalWeeks int, goal models.PeriodizationGoal, includeDeload bool) []models.PhaseWeek {
	switch goal {
	case models.PeriodizationStrength:
		return periodizeStrength(totalWeeks, includeDeload)
	case models.PeriodizationPeaking:
		return periodizePeaking(totalWeeks, includeDeload)
	default:
		return periodizeHypertrophy(totalWeeks, includeDeload)
	}
}

func periodizeHypertrophy(totalWeeks int, includeDeload bool) []models.PhaseWeek {
	accumulation := totalWeeks / 2          // floor(0.5 * total)
	intensification := totalWeeks * 35 / 100 // floor(0.35 * total)

	deload := 0
	if includeDeload {
		deload = totalWeeks - accumulation - intensification
		if deload < 1 {
			deload = 1
		}
	}
	intensification = totalWeeks - accumulation - deload

	weeks := make([]models.PhaseWeek, 0, totalWeeks)
	for w := 1; w <= totalWeeks; w++ {
		phase := models.PhaseAccumulation
		switch {
		case w > accumulation+intensification:
			phase = models.PhaseDeload
		case w > accumulation:
			phase = models.PhaseIntensification
		}
		l := hypertrophyLabels[phase]
		weeks = append(weeks, models.PhaseWeek{
			Week: w, Phase: phase, Intensity: l.intensity, Volume: l.volume, Note: l.note,
		})
	}
	return weeks
}

func periodizeStrength(totalWeeks int, includeDeload bool) []models.PhaseWeek {
	volume := totalWeeks * 4 / 10   // floor(0.4 * total)
	strength := totalWeeks * 4 / 10 // floor(0.4 * total)

	weeks := make([]models.PhaseWeek, 0, totalWeeks)
	for w := 1; w <= totalWeeks; w++ {
		phase := models.PhaseVolume
		switch {
		case includeDeload && w == totalWeeks:
			phase = models.PhaseDeload
		case w > volume+strength:
			phase = models.PhasePeaking
		case w > volume:
			phase = models.PhaseStrength
		}
		l := strengthLabels[phase]
		weeks = append(weeks, models.PhaseWeek{
			Week: w, Phase: phase, Intensity: l.intensity, Volume: l.volume, Note: l.note,
		})
	}
	return weeks
}

func periodizePeaking(totalWeeks int, includeDeload bool) []models.PhaseWeek {
	weeks := make([]models.PhaseWeek, 0, totalWeeks)
	for w := 1; w <= totalWeeks; w++ {
		if includeDeload && w%4 == 0 {
			weeks = append(weeks, models.PhaseWeek{
				Week: w, Phase: models.PhaseDeload, Intensity: "60%", Volume: "Low",
				Note: "Scheduled recovery week; keep movement patterns fresh.",
			})
			continue
		}
		pct := 80 + min(w*2, 15)
		weeks = append(weeks, models.PhaseWeek{
			Week: w, Phase: models.PhasePeaking,
			Intensity: fmt.Sprintf("%d%%", pct), Volume: "Low",
			Note: "Peak week: heavy singles and doubles, minimal accessories.",
		})
	}
	return weeks
}
