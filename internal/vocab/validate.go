package vocab

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// datasetSchema describes the shape of vocabulary.json. Field-level
// invariants that JSON Schema cannot express (duplicate identities, the
// example-contains-word rule, deck name consistency) are checked by
// Validate after decoding.
var datasetSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"deckId":          map[string]any{"type": "string"},
			"deckName":        map[string]any{"type": "string"},
			"deckDescription": map[string]any{"type": "string"},
			"word":            map[string]any{"type": "string", "minLength": 1},
			"level":           map[string]any{"type": "string", "minLength": 1},
			"definition":      map[string]any{"type": "string", "minLength": 1},
			"example":         map[string]any{"type": "string", "minLength": 1},
			"translation":     map[string]any{"type": "string", "minLength": 1},
		},
		"required":             []any{"word", "level", "definition", "example", "translation"},
		"additionalProperties": false,
	},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compileDatasetSchema compiles the schema once and caches the result.
func compileDatasetSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(datasetSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://vocabulary.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// validateRaw checks the raw dataset bytes against the JSON schema.
func validateRaw(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compileDatasetSchema()
	if err != nil {
		return fmt.Errorf("compile dataset schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("dataset schema validation: %w", err)
	}
	return nil
}

// Validate checks the decoded catalog for invariants the schema cannot
// cover. Returns one message per violation; an empty slice means the
// dataset is valid.
func Validate(cards []Card) []string {
	var problems []string
	seen := make(map[string]bool, len(cards))
	deckNames := make(map[string]string)

	for i, c := range cards {
		word := strings.TrimSpace(c.Word)
		if word == "" {
			problems = append(problems, fmt.Sprintf("entry %d: empty word", i))
			continue
		}
		if c.NormalizedLevel() == "" {
			problems = append(problems, fmt.Sprintf("%q: empty level", word))
		}
		if strings.TrimSpace(c.Definition) == "" {
			problems = append(problems, fmt.Sprintf("%q: empty definition", word))
		}
		if strings.TrimSpace(c.Example) == "" {
			problems = append(problems, fmt.Sprintf("%q: empty example", word))
		}
		if strings.TrimSpace(c.Translation) == "" {
			problems = append(problems, fmt.Sprintf("%q: empty translation", word))
		}
		if strings.TrimSpace(c.DeckName) == "" {
			problems = append(problems, fmt.Sprintf("%q: empty deck name", word))
		}

		if strings.TrimSpace(c.Example) != "" && !ContainsFold(c.Example, word) {
			problems = append(problems, fmt.Sprintf("%q: example does not contain the word", word))
		}

		id := c.ID()
		if seen[id] {
			problems = append(problems, fmt.Sprintf("%q: duplicate entry in deck %q", word, c.DeckID))
		}
		seen[id] = true

		deckKey := c.DeckKey()
		if existing, ok := deckNames[deckKey]; ok {
			if existing != c.DeckName {
				problems = append(problems, fmt.Sprintf("deck %q: name mismatch (%q vs %q)", deckKey, existing, c.DeckName))
			}
		} else {
			deckNames[deckKey] = c.DeckName
		}
	}

	return problems
}
