package enrichment

import (
	"errors"
	"fmt"
	"strings"

	"grimoire/feature/words/models"
)

// ErrValidation is returned when a merged record cannot be served.
var ErrValidation = errors.New("enriched record failed validation")

// Definition length bounds, in characters.
const (
	minDefinitionLength = 10
	maxDefinitionLength = 500
)

// Validate enforces the definition rules on r, truncating over-long texts,
// and refreshes its completeness score.
func Validate(r *models.WordRecord) error {
	if len(r.Definitions) == 0 {
		return fmt.Errorf("%w: %q has no definitions", ErrValidation, r.Word)
	}

	for i := range r.Definitions {
		d := &r.Definitions[i]
		text := []rune(strings.TrimSpace(d.Definition))
		switch {
		case len(text) == 0:
			return fmt.Errorf("%w: definition %d of %q is empty", ErrValidation, i+1, r.Word)
		case len(text) < minDefinitionLength:
			return fmt.Errorf("%w: definition %d of %q is shorter than %d characters", ErrValidation, i+1, r.Word, minDefinitionLength)
		case d.PartOfSpeech == "":
			return fmt.Errorf("%w: definition %d of %q has no part of speech", ErrValidation, i+1, r.Word)
		}
		if len(text) > maxDefinitionLength {
			text = text[:maxDefinitionLength]
		}
		d.Definition = string(text)
	}

	r.DataCompleteness = models.Completeness(r)
	return nil
}
