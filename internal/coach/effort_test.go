package coach

import "testing"

// TestInterpretEffort verifies the keyword categories, the reps-in-reserve
// extraction, and the moderate default for unrecognized text.
func TestInterpretEffort(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"felt easy", 5},
		{"just a warm-up really", 5},
		{"war ganz locker", 5},
		{"could do 3 more", 7},
		{"could do 1 more rep", 9},
		{"i could have done 2 more", 8},
		{"noch 4 wiederholungen drin", 6},
		{"felt good, solid set", 7},
		{"that was hard", 8},
		{"ziemlich schwer heute", 8},
		{"total grind on the last rep", 9},
		{"max effort", 9},
		{"total failure", 10},
		{"couldn't lock it out", 10},
		{"bench press 5x5", 7},
		{"", 7},
	}
	for _, tt := range tests {
		got := InterpretEffort(tt.text)
		if got.RPE != tt.want {
			t.Errorf("InterpretEffort(%q) = %d, want %d", tt.text, got.RPE, tt.want)
		}
		if got.Reasoning == "" {
			t.Errorf("InterpretEffort(%q): empty reasoning", tt.text)
		}
	}
}

// TestInterpretEffortCategoryOrder verifies the priority-sensitive overlaps:
// reps-in-reserve beats the generic positive words, and easy beats both.
func TestInterpretEffortCategoryOrder(t *testing.T) {
	if got := InterpretEffort("felt good, could do 2 more").RPE; got != 8 {
		t.Errorf("RIR should win over 'good': got %d, want 8", got)
	}
	if got := InterpretEffort("easy, could do 5 more").RPE; got != 5 {
		t.Errorf("'easy' should win over RIR: got %d, want 5", got)
	}
}

// TestInterpretEffortRIRFloor verifies an absurd reps-in-reserve claim still
// lands on the scale.
func TestInterpretEffortRIRFloor(t *testing.T) {
	if got := InterpretEffort("could do 12 more").RPE; got != 1 {
		t.Errorf("RPE = %d, want floor of 1", got)
	}
}
