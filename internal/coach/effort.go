package coach

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// EffortAssessment is the interpreter's reading of a free-text effort report.
type EffortAssessment struct {
	RPE       int    `json:"rpe"`
	Reasoning string `json:"reasoning"`
}

// repsInReserveRe extracts "could do N more" / German "noch N" style
// reps-in-reserve statements.
var repsInReserveRe = regexp.MustCompile(`(?:\bcould (?:do|have done|get) |\bnoch )(\d+)`)

// effortCategory maps keyword hits to an RPE. Categories are evaluated in
// order and the first match wins; the reps-in-reserve pattern sits ahead of
// the generic positive words so "could do 2 more, felt good" reads as RIR 2.
type effortCategory struct {
	keywords []string
	rpe      int
	reason   string
}

var effortCategories = []effortCategory{
	{[]string{"easy", "light", "warm", "leicht", "locker"}, 5, "Described as easy or warm-up level effort."},
	{[]string{"good", "solid", "clean", "gut"}, 7, "Described as a solid working effort."},
	{[]string{"hard", "tough", "challenging", "schwer", "anstrengend"}, 8, "Described as hard; close to the limit but repeatable."},
	{[]string{"grind", "struggle", "max", "all out", "kaum"}, 9, "Described as a grind; barely completed."},
	{[]string{"fail", "couldn't", "could not", "konnte nicht"}, 10, "Reported failure or an incomplete set."},
}

// InterpretEffort maps a free-text effort description to the 1-10 RPE
// scale. Matching is case-insensitive over English and German keywords.
// Unrecognized text is never an error: it defaults to a moderate RPE 7.
func InterpretEffort(text string) EffortAssessment {
	lower := strings.ToLower(text)

	for i, cat := range effortCategories {
		// Reps-in-reserve is checked between the easy and good
		// categories; its position is load-bearing.
		if i == 1 {
			if m := repsInReserveRe.FindStringSubmatch(lower); m != nil {
				rir, _ := strconv.Atoi(m[1])
				rpe := 10 - rir
				if rpe < 1 {
					rpe = 1
				}
				return EffortAssessment{
					RPE:       rpe,
					Reasoning: fmt.Sprintf("Reported %d reps in reserve, so the set sat at RPE %d.", rir, rpe),
				}
			}
		}
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return EffortAssessment{RPE: cat.rpe, Reasoning: cat.reason}
			}
		}
	}

	return EffortAssessment{
		RPE:       7,
		Reasoning: "No effort keywords recognized; assuming a moderate working set.",
	}
}
