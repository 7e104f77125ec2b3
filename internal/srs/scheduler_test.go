package srs

import (
	"testing"
	"time"

	"github.com/dmoretti/wordflow/internal/vocab"
)

var schedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestReviewed_AgainFixedTenMinutes(t *testing.T) {
	p := Progress{Ease: 2.5, Interval: 72 * time.Hour, Repetitions: 5}
	next := Reviewed(p, OutcomeAgain, schedNow)
	if next.Interval != 10*time.Minute {
		t.Errorf("Interval = %v, want 10m", next.Interval)
	}
	if next.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", next.Repetitions)
	}
	if next.Ease != 2.3 {
		t.Errorf("Ease = %v, want 2.3", next.Ease)
	}
	if !next.Due.Equal(schedNow.Add(10 * time.Minute)) {
		t.Errorf("Due = %v, want now+10m", next.Due)
	}
}

func TestReviewed_FirstGoodIsOneDay(t *testing.T) {
	next := Reviewed(NewProgress(schedNow), OutcomeGood, schedNow)
	if next.Interval != 24*time.Hour {
		t.Errorf("Interval = %v, want 24h", next.Interval)
	}
	if next.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", next.Repetitions)
	}
	if next.Ease != 2.45 {
		t.Errorf("Ease = %v, want 2.45", next.Ease)
	}
}

func TestReviewed_SecondGoodFromShortIntervalIsThreeDays(t *testing.T) {
	p := Progress{Ease: 2.45, Interval: 10 * time.Minute, Repetitions: 1}
	next := Reviewed(p, OutcomeGood, schedNow)
	if next.Interval != 72*time.Hour {
		t.Errorf("Interval = %v, want 72h", next.Interval)
	}
	if next.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", next.Repetitions)
	}
}

func TestReviewed_SecondGoodFromLongIntervalMultiplies(t *testing.T) {
	// Previous interval already >= 1 day, so the 3-day floor does not apply.
	p := Progress{Ease: 2.0, Interval: 48 * time.Hour, Repetitions: 1}
	next := Reviewed(p, OutcomeGood, schedNow)
	if next.Interval != 96*time.Hour {
		t.Errorf("Interval = %v, want 96h", next.Interval)
	}
}

func TestReviewed_MatureGoodUsesPreviousIntervalAndEase(t *testing.T) {
	p := Progress{Ease: 2.0, Interval: 72 * time.Hour, Repetitions: 2}
	next := Reviewed(p, OutcomeGood, schedNow)
	if next.Interval != 144*time.Hour {
		t.Errorf("Interval = %v, want 144h", next.Interval)
	}
	if next.Ease != 1.95 {
		t.Errorf("Ease = %v, want 1.95", next.Ease)
	}
}

func TestReviewed_FirstEasyIsTwoDays(t *testing.T) {
	next := Reviewed(NewProgress(schedNow), OutcomeEasy, schedNow)
	if next.Interval != 48*time.Hour {
		t.Errorf("Interval = %v, want 48h", next.Interval)
	}
	if next.Ease != 2.6 {
		t.Errorf("Ease = %v, want 2.6", next.Ease)
	}
}

func TestReviewed_SecondEasyFromShortIntervalIsFourDays(t *testing.T) {
	p := Progress{Ease: 2.6, Interval: 24 * time.Hour, Repetitions: 1}
	next := Reviewed(p, OutcomeEasy, schedNow)
	if next.Interval != 96*time.Hour {
		t.Errorf("Interval = %v, want 96h", next.Interval)
	}
}

func TestReviewed_MatureEasyGetsBonusFactor(t *testing.T) {
	p := Progress{Ease: 2.0, Interval: 100 * time.Hour, Repetitions: 3}
	next := Reviewed(p, OutcomeEasy, schedNow)
	if next.Interval != 220*time.Hour {
		t.Errorf("Interval = %v, want 220h", next.Interval)
	}
	if next.Ease != 2.1 {
		t.Errorf("Ease = %v, want 2.1", next.Ease)
	}
}

func TestReviewed_EaseNeverDropsBelowFloor(t *testing.T) {
	p := Progress{Ease: 1.35, Interval: 24 * time.Hour, Repetitions: 2}
	next := Reviewed(p, OutcomeAgain, schedNow)
	if next.Ease != EaseFloor {
		t.Errorf("Ease = %v, want floor %v", next.Ease, EaseFloor)
	}
	// Repeated failures stay pinned at the floor.
	next = Reviewed(next, OutcomeAgain, schedNow)
	if next.Ease != EaseFloor {
		t.Errorf("Ease = %v, want floor %v", next.Ease, EaseFloor)
	}
}

func TestReviewed_SetsLastReviewedAndDue(t *testing.T) {
	next := Reviewed(NewProgress(schedNow), OutcomeGood, schedNow)
	if !next.LastReviewed.Equal(schedNow) {
		t.Errorf("LastReviewed = %v, want %v", next.LastReviewed, schedNow)
	}
	if !next.Due.Equal(schedNow.Add(next.Interval)) {
		t.Errorf("Due = %v, want now+interval", next.Due)
	}
}

func TestReviewed_DoesNotMutateInput(t *testing.T) {
	p := Progress{Ease: 2.5, Interval: 24 * time.Hour, Repetitions: 1}
	before := p
	Reviewed(p, OutcomeGood, schedNow)
	if p != before {
		t.Error("input progress was mutated")
	}
}

func card(word string) vocab.Card {
	return vocab.Card{
		DeckID:      "general",
		Word:        word,
		Level:       "Base",
		Definition:  "def",
		Example:     "the word " + word,
		Translation: "tr",
	}
}

func TestReorder_UnreviewedSortsFirst(t *testing.T) {
	a := card("analyze")
	b := card("debate")
	progress := map[string]Progress{
		a.ID(): {Due: schedNow.Add(time.Hour)},
	}
	ordered := Reorder([]vocab.Card{a, b}, progress)
	if ordered[0].Word != "debate" {
		t.Errorf("first = %q, want unreviewed card first", ordered[0].Word)
	}
}

func TestReorder_AscendingDueDate(t *testing.T) {
	a := card("analyze")
	b := card("debate")
	c := card("mitigate")
	progress := map[string]Progress{
		a.ID(): {Due: schedNow.Add(3 * time.Hour)},
		b.ID(): {Due: schedNow.Add(time.Hour)},
		c.ID(): {Due: schedNow.Add(2 * time.Hour)},
	}
	ordered := Reorder([]vocab.Card{a, b, c}, progress)
	got := []string{ordered[0].Word, ordered[1].Word, ordered[2].Word}
	want := []string{"debate", "mitigate", "analyze"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReorder_TiesBreakByWordCaseInsensitive(t *testing.T) {
	a := card("Banana")
	b := card("apple")
	c := card("cherry")
	ordered := Reorder([]vocab.Card{c, a, b}, nil)
	got := []string{ordered[0].Word, ordered[1].Word, ordered[2].Word}
	want := []string{"apple", "Banana", "cherry"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReorder_DoesNotMutateInput(t *testing.T) {
	a := card("zebra")
	b := card("apple")
	cards := []vocab.Card{a, b}
	Reorder(cards, nil)
	if cards[0].Word != "zebra" {
		t.Error("input slice was reordered in place")
	}
}

func TestReorder_Deterministic(t *testing.T) {
	cards := []vocab.Card{card("delta"), card("alpha"), card("charlie"), card("bravo")}
	first := Reorder(cards, nil)
	second := Reorder(cards, nil)
	for i := range first {
		if first[i].Word != second[i].Word {
			t.Fatalf("position %d differs between runs: %q vs %q", i, first[i].Word, second[i].Word)
		}
	}
}
