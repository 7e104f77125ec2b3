package vocab

import "testing"

func TestCardID_IncludesDeck(t *testing.T) {
	a := Card{DeckID: "general", Word: "Analyze"}
	b := Card{DeckID: "graphs", Word: "Analyze"}
	if a.ID() == b.ID() {
		t.Error("same word in different decks should have distinct IDs")
	}
	if a.ID() != "general::analyze" {
		t.Errorf("ID = %q, want general::analyze", a.ID())
	}
}

func TestCardID_NormalizesCaseAndWhitespace(t *testing.T) {
	a := Card{DeckID: "General", Word: "  Analyze "}
	b := Card{DeckID: "general", Word: "analyze"}
	if a.ID() != b.ID() {
		t.Errorf("IDs differ: %q vs %q", a.ID(), b.ID())
	}
}

func TestLegacyID_WordOnly(t *testing.T) {
	c := Card{DeckID: "graphs", Word: " Fluctuate "}
	if c.LegacyID() != "fluctuate" {
		t.Errorf("LegacyID = %q, want fluctuate", c.LegacyID())
	}
}

func TestNormalizedLevel_TrimsWhitespace(t *testing.T) {
	c := Card{Level: "  Advanced "}
	if c.NormalizedLevel() != "Advanced" {
		t.Errorf("NormalizedLevel = %q, want Advanced", c.NormalizedLevel())
	}
}
