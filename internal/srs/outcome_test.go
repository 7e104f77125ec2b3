package srs

import "testing"

func TestParseOutcome_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Outcome
	}{
		{"again", OutcomeAgain},
		{"good", OutcomeGood},
		{"easy", OutcomeEasy},
	}
	for _, tt := range tests {
		got, err := ParseOutcome(tt.in)
		if err != nil {
			t.Errorf("ParseOutcome(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutcome(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseOutcome_Invalid(t *testing.T) {
	if _, err := ParseOutcome("hard"); err == nil {
		t.Error("expected error for unknown outcome")
	}
	if _, err := ParseOutcome(""); err == nil {
		t.Error("expected error for empty outcome")
	}
}
