package srs

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmoretti/wordflow/internal/vocab"
)

const (
	againInterval = 10 * time.Minute

	firstGoodInterval  = 24 * time.Hour
	secondGoodInterval = 72 * time.Hour

	firstEasyInterval  = 48 * time.Hour
	secondEasyInterval = 96 * time.Hour
)

// Reviewed computes the next Progress for a card given a review outcome.
// Pure transition: no side effects, no I/O, total over its domain.
//
// "again" always maps to the fixed 10-minute interval regardless of
// repetition history — a deliberate fast-forgetting reset, not a
// multiplication by ease. For "good"/"easy" beyond the second repetition
// the multiplicand base is the previous interval.
func Reviewed(p Progress, outcome Outcome, now time.Time) Progress {
	next := p

	switch outcome {
	case OutcomeAgain:
		next.Repetitions = 0
		next.Interval = againInterval
		next.Ease = clampEase(p.Ease - 0.2)

	case OutcomeGood:
		next.Repetitions = p.Repetitions + 1
		switch {
		case next.Repetitions == 1:
			next.Interval = firstGoodInterval
		case next.Repetitions == 2 && p.Interval < firstGoodInterval:
			next.Interval = secondGoodInterval
		default:
			next.Interval = scale(p.Interval, p.Ease)
		}
		next.Ease = clampEase(p.Ease - 0.05)

	case OutcomeEasy:
		next.Repetitions = p.Repetitions + 1
		switch {
		case next.Repetitions == 1:
			next.Interval = firstEasyInterval
		case next.Repetitions == 2 && p.Interval < firstEasyInterval:
			next.Interval = secondEasyInterval
		default:
			next.Interval = scale(p.Interval, p.Ease+0.2)
		}
		next.Ease = clampEase(p.Ease + 0.1)
	}

	next.LastReviewed = now
	next.Due = now.Add(next.Interval)
	return next
}

// Reorder returns the cards sorted by ascending due date. Cards with no
// recorded progress sort as due since the epoch, i.e. first. Ties break by
// locale-aware, case-insensitive comparison of the display word, so the
// order is a deterministic total order for identical inputs.
func Reorder(cards []vocab.Card, progress map[string]Progress) []vocab.Card {
	ordered := make([]vocab.Card, len(cards))
	copy(ordered, cards)

	// Collators are not safe for concurrent use; build one per call.
	coll := collate.New(language.English, collate.Loose)

	sort.SliceStable(ordered, func(i, j int) bool {
		di := dueDate(ordered[i], progress)
		dj := dueDate(ordered[j], progress)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return coll.CompareString(ordered[i].Word, ordered[j].Word) < 0
	})
	return ordered
}

// dueDate returns the card's due date, or the zero time when the card has
// never been reviewed.
func dueDate(c vocab.Card, progress map[string]Progress) time.Time {
	if p, ok := progress[c.ID()]; ok {
		return p.Due
	}
	return time.Time{}
}

func scale(prev time.Duration, factor float64) time.Duration {
	return time.Duration(float64(prev) * factor)
}

func clampEase(ease float64) float64 {
	if ease < EaseFloor {
		return EaseFloor
	}
	return ease
}
