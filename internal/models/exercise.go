package models

// MuscleGroup identifies the primary muscle a movement trains.
type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "chest"
	MuscleBack       MuscleGroup = "back"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCalves     MuscleGroup = "calves"
	MuscleCore       MuscleGroup = "core"
	MuscleForearms   MuscleGroup = "forearms"
)

// Equipment identifies what a movement is loaded with.
type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentEZBar      Equipment = "ez_bar"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentMachine    Equipment = "machine"
	EquipmentCable      Equipment = "cable"
	EquipmentBodyweight Equipment = "bodyweight"
)

// Exercise describes a trainable movement with sensible programming defaults.
type Exercise struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscle_group"`
	Equipment   Equipment   `json:"equipment"`
	Compound    bool        `json:"compound"`
	DefaultSets int         `json:"default_sets"`
	RepMin      int         `json:"rep_min"`
	RepMax      int         `json:"rep_max"`
	RestSeconds int         `json:"rest_seconds"`
}
