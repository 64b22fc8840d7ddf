package sources

import (
	"context"
	"encoding/json"
	"fmt"

	"grimoire/feature/words/models"
)

// Source names.
const (
	NameGenerative    = "generative"
	NameLexical       = "lexical"
	NamePronunciation = "pronunciation"
	NameDifficulty    = "difficulty"
	NameFrequency     = "frequency"
)

// Source fetches partial word data from one provider.
// A word the provider does not know yields an empty Partial and a nil error;
// errors are reserved for transport or infrastructure failures.
type Source interface {
	Name() string
	Fetch(ctx context.Context, word string) (*Partial, error)
	SupportsField(field string) bool
}

// Partial is the data one source knows about a word. Zero values mean absent.
type Partial struct {
	Phonetic      *models.Phonetic
	Definitions   []DefinitionInput
	Grammar       *models.GrammaticalInfo
	Related       []RelatedInput
	CEFRLevel     models.CEFRLevel
	FrequencyRank int
	FrequencyBand models.FrequencyBand
	StyleTags     []string
}

// DefinitionInput is a definition before example processing and validation.
type DefinitionInput struct {
	Text         string
	PartOfSpeech models.PartOfSpeech
	UsageContext string
	Examples     []ExampleInput
}

// RelatedInput is an unscored relation.
type RelatedInput struct {
	Word         string
	Relationship models.RelationshipType
	UsageNotes   string
}

// ExampleInput is an example sentence with an optional, unchecked context label.
// It decodes from either a bare string or {"example_text", "context_type"}.
type ExampleInput struct {
	Text        string `json:"example_text"`
	ContextType string `json:"context_type"`
}

func (e *ExampleInput) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*e = ExampleInput{Text: text}
		return nil
	}

	type plain ExampleInput
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("example must be a string or an object: %w", err)
	}
	*e = ExampleInput(p)
	return nil
}

func supports(fields map[string]struct{}, field string) bool {
	_, ok := fields[field]
	return ok
}

func fieldSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
