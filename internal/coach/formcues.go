package coach

import "strings"

// CueResult is the form-cue lookup output.
type CueResult struct {
	Exercise string   `json:"exercise"`
	Matched  bool     `json:"matched"`
	FormCues []string `json:"form_cues"`
}

// cueEntry pairs a lowercase name fragment with its cue list. Entries are
// scanned in order so more specific fragments must come first.
type cueEntry struct {
	fragment string
	name     string
	cues     []string
}

var cueTable = []cueEntry{
	{"overhead press", "Overhead Press", []string{
		"Squeeze the glutes to keep the ribs down.",
		"Bar starts on the front delts, forearms vertical.",
		"Press slightly back so the bar finishes over the mid-foot.",
		"Shrug the shoulders up at lockout.",
	}},
	{"bench", "Bench Press", []string{
		"Pull the shoulder blades together and down into the bench.",
		"Feet planted; drive them into the floor without lifting the hips.",
		"Touch the bar at the base of the sternum.",
		"Elbows tucked to roughly 45 degrees, not flared.",
	}},
	{"deadlift", "Deadlift", []string{
		"Bar over mid-foot, shins touching at the start.",
		"Take the slack out of the bar before you pull.",
		"Push the floor away rather than yanking with the back.",
		"Finish tall; don't lean back at lockout.",
	}},
	{"squat", "Back Squat", []string{
		"Brace hard before every rep: big breath into the belly.",
		"Break at the hips and knees together.",
		"Knees track over the toes through the whole rep.",
		"Hit depth: hip crease below the top of the knee.",
	}},
	{"pull-up", "Pull-Up", []string{
		"Start each rep from a dead hang with shoulders engaged.",
		"Lead with the chest, not the chin.",
		"Pull the elbows down and back toward the hips.",
		"Control the descent; no dropping into the hang.",
	}},
	{"pullup", "Pull-Up", []string{
		"Start each rep from a dead hang with shoulders engaged.",
		"Lead with the chest, not the chin.",
		"Pull the elbows down and back toward the hips.",
		"Control the descent; no dropping into the hang.",
	}},
	{"row", "Barbell Row", []string{
		"Hinge to roughly 45 degrees and hold the torso angle.",
		"Pull the bar to the lower ribs.",
		"No body English: the weight moves, not the torso.",
		"Squeeze the shoulder blades for a beat at the top.",
	}},
}

// genericCues apply to any movement when no specific entry matches.
var genericCues = []string{
	"Control the eccentric; two seconds down is a good default.",
	"Full range of motion beats extra load.",
	"Brace your core before every rep.",
	"Stop the set when form breaks down, not when you hit zero.",
}

// FormCues returns coaching cues for the named exercise. Matching is a
// case-insensitive substring scan over a fixed table; misses fall back to
// four generic cues.
func FormCues(exerciseName string) CueResult {
	lower := strings.ToLower(exerciseName)
	for _, e := range cueTable {
		if strings.Contains(lower, e.fragment) {
			return CueResult{Exercise: e.name, Matched: true, FormCues: e.cues}
		}
	}
	return CueResult{Exercise: exerciseName, Matched: false, FormCues: genericCues}
}
