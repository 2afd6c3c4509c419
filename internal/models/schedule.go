package models

// PeriodizationGoal selects the phase-splitting algorithm for a block.
type PeriodizationGoal string

const (
	PeriodizationHypertrophy PeriodizationGoal = "hypertrophy"
	PeriodizationStrength    PeriodizationGoal = "strength"
	PeriodizationPeaking     PeriodizationGoal = "peaking"
)

// Phase labels a periodization phase.
type Phase string

const (
	PhaseAccumulation    Phase = "Accumulation"
	PhaseIntensification Phase = "Intensification"
	PhaseVolume          Phase = "Volume"
	PhaseStrength        Phase = "Strength"
	PhasePeaking         Phase = "Peaking"
	PhaseDeload          Phase = "Deload"
)

// PhaseWeek is one week of a periodized block. Week numbers are 1-indexed
// and cover the block contiguously.
type PhaseWeek struct {
	Week      int    `json:"week"`
	Phase     Phase  `json:"phase"`
	Intensity string `json:"intensity"`
	Volume    string `json:"volume"`
	Note      string `json:"note"`
}

// CardioType tags the cardio modality in a hybrid schedule.
type CardioType string

const (
	CardioRunning  CardioType = "running"
	CardioCycling  CardioType = "cycling"
	CardioSwimming CardioType = "swimming"
	CardioRowing   CardioType = "rowing"
)

// Priority steers the hybrid scheduler toward one training mode.
type Priority string

const (
	PriorityStrength Priority = "strength"
	PriorityCardio   Priority = "cardio"
	PriorityBalanced Priority = "balanced"
)

// ScheduleEntry assigns one weekday to an activity.
type ScheduleEntry struct {
	Day      string `json:"day"`
	Activity string `json:"activity"`
	Note     string `json:"note,omitempty"`
}

// ExperienceLevel buckets training experience for split recommendations.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)
