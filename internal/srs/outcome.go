package srs

import "fmt"

// Outcome is the learner's self-assessed recall quality for one review.
type Outcome string

const (
	OutcomeAgain Outcome = "again"
	OutcomeGood  Outcome = "good"
	OutcomeEasy  Outcome = "easy"
)

// ParseOutcome converts a stored string back into an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case OutcomeAgain, OutcomeGood, OutcomeEasy:
		return Outcome(s), nil
	}
	return "", fmt.Errorf("unknown outcome %q", s)
}
