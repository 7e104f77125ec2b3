package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard(deckID, deckName, word string) Card {
	return Card{
		DeckID:      deckID,
		DeckName:    deckName,
		Word:        word,
		Level:       "Base",
		Definition:  "definition of " + word,
		Example:     "a sentence using " + word,
		Translation: "tr-" + word,
	}
}

func TestValidate_CleanCatalog(t *testing.T) {
	cards := []Card{
		validCard("general", "General Academic", "analyze"),
		validCard("general", "General Academic", "debate"),
		validCard("graphs", "Graph Description", "surge"),
	}
	assert.Empty(t, Validate(cards))
}

func TestValidate_FieldProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Card)
		want   string
	}{
		{"empty word", func(c *Card) { c.Word = "  " }, "empty word"},
		{"empty level", func(c *Card) { c.Level = "" }, "empty level"},
		{"empty definition", func(c *Card) { c.Definition = " " }, "empty definition"},
		{"empty example", func(c *Card) { c.Example = "" }, "empty example"},
		{"empty translation", func(c *Card) { c.Translation = "" }, "empty translation"},
		{"empty deck name", func(c *Card) { c.DeckName = "" }, "empty deck name"},
		{"example misses word", func(c *Card) { c.Example = "unrelated sentence" }, "example does not contain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard("general", "General Academic", "analyze")
			tt.mutate(&card)

			problems := Validate([]Card{card})
			require.NotEmpty(t, problems)
			assert.Contains(t, problems[0], tt.want)
		})
	}
}

func TestValidate_ExampleMatchIgnoresCaseAndDiacritics(t *testing.T) {
	card := validCard("general", "General Academic", "café")
	card.Example = "We stopped at a small CAFE near the station."
	assert.Empty(t, Validate([]Card{card}))
}

func TestValidate_DuplicateIdentity(t *testing.T) {
	cards := []Card{
		validCard("general", "General Academic", "analyze"),
		validCard("general", "General Academic", " Analyze "),
	}
	problems := Validate(cards)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "duplicate")
}

func TestValidate_DeckNameMismatch(t *testing.T) {
	cards := []Card{
		validCard("graphs", "Graph Description", "surge"),
		validCard("graphs", "Charts", "plateau"),
	}
	problems := Validate(cards)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "name mismatch")
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	broken := validCard("general", "General Academic", "analyze")
	broken.Definition = ""
	broken.Example = "no match here"

	problems := Validate([]Card{broken})
	assert.Len(t, problems, 2)
}
