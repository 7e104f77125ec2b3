package srs

import "time"

const (
	// InitialEase is the ease factor assigned on first review.
	InitialEase = 2.5

	// EaseFloor is the minimum ease factor. Ease is clamped here on every
	// outcome and never clamped above.
	EaseFloor = 1.3
)

// Progress holds the spaced repetition state for a single card. A card
// that has never been reviewed has no Progress record and is treated as
// due since the beginning of time.
type Progress struct {
	Ease         float64
	Interval     time.Duration
	Due          time.Time
	Repetitions  int
	LastReviewed time.Time
}

// NewProgress returns the state assigned to a card on its first review:
// due immediately, no interval, default ease.
func NewProgress(now time.Time) Progress {
	return Progress{
		Ease:         InitialEase,
		Interval:     0,
		Due:          now,
		Repetitions:  0,
		LastReviewed: now,
	}
}

// IsDue reports whether the card is due at or past its due date.
func (p Progress) IsDue(now time.Time) bool {
	return !p.Due.After(now)
}
