package vocab

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed data/vocabulary.json
var vocabularyJSON []byte

// Repository loads the vocabulary catalog. The dataset is embedded in the
// binary; LoadAll validates it in full before handing cards out, so a
// malformed dataset is a load error rather than silent bad behavior.
type Repository struct {
	raw []byte
}

// NewRepository returns a repository backed by the embedded dataset.
func NewRepository() *Repository {
	return &Repository{raw: vocabularyJSON}
}

// NewRepositoryFromJSON returns a repository backed by the given raw
// dataset. Used by tests and the validate command.
func NewRepositoryFromJSON(raw []byte) *Repository {
	return &Repository{raw: raw}
}

// LoadAll decodes and validates the full catalog. Entries without a deck
// are assigned the default deck.
func (r *Repository) LoadAll() ([]Card, error) {
	if err := validateRaw(r.raw); err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}

	var cards []Card
	if err := json.Unmarshal(r.raw, &cards); err != nil {
		return nil, fmt.Errorf("decode vocabulary: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("load vocabulary: dataset is empty")
	}

	for i := range cards {
		applyDeckDefaults(&cards[i])
	}

	if problems := Validate(cards); len(problems) > 0 {
		return nil, fmt.Errorf("invalid vocabulary dataset: %s", strings.Join(problems, "; "))
	}

	return cards, nil
}

// Check runs the full validation and returns every problem found rather
// than stopping at the first. Used by the validate command.
func (r *Repository) Check() ([]string, error) {
	if err := validateRaw(r.raw); err != nil {
		return nil, err
	}
	var cards []Card
	if err := json.Unmarshal(r.raw, &cards); err != nil {
		return nil, fmt.Errorf("decode vocabulary: %w", err)
	}
	for i := range cards {
		applyDeckDefaults(&cards[i])
	}
	return Validate(cards), nil
}

func applyDeckDefaults(c *Card) {
	if strings.TrimSpace(c.DeckID) == "" {
		c.DeckID = DefaultDeckID
	}
	if strings.TrimSpace(c.DeckName) == "" && c.DeckKey() == DefaultDeckID {
		c.DeckName = DefaultDeckName
	}
}
