package vocab

import "strings"

// DefaultDeckID is assigned to entries that omit a deck.
const DefaultDeckID = "general"

// DefaultDeckName is the display name for the default deck.
const DefaultDeckName = "General Academic"

// Card is a single vocabulary entry. Cards are immutable once loaded;
// the catalog lives for the lifetime of the process.
type Card struct {
	DeckID          string `json:"deckId"`
	DeckName        string `json:"deckName"`
	DeckDescription string `json:"deckDescription"`
	Word            string `json:"word"`
	Level           string `json:"level"`
	Definition      string `json:"definition"`
	Example         string `json:"example"`
	Translation     string `json:"translation"`
}

// ID returns the card's identity: deck key plus normalized word. Two cards
// with the same word in different decks are distinct entries.
func (c Card) ID() string {
	return c.DeckKey() + "::" + normalizeKey(c.Word)
}

// LegacyID returns the pre-deck identity scheme (word only). Progress
// persisted under this scheme is migrated forward at load time.
func (c Card) LegacyID() string {
	return normalizeKey(c.Word)
}

// DeckKey returns the normalized deck identifier.
func (c Card) DeckKey() string {
	return normalizeKey(c.DeckID)
}

// NormalizedLevel returns the level with surrounding whitespace removed.
// Level comparison is case-insensitive throughout.
func (c Card) NormalizedLevel() string {
	return strings.TrimSpace(c.Level)
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
