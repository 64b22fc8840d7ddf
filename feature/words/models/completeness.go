package models

// Names reported in DataCompleteness.MissingFields.
const (
	FieldPhonetic      = "phonetic_transcription"
	FieldDefinitions   = "definitions"
	FieldUsageExamples = "usage_examples"
	FieldGrammar       = "grammatical_forms"
	FieldRelatedWords  = "related_words"
	FieldDifficulty    = "difficulty_level"
)

const completenessGroups = 5

// Completeness scores how many of the five expected field groups are populated.
func Completeness(r *WordRecord) DataCompleteness {
	missing := []string{}
	present := 0

	if r.Phonetic != nil && r.Phonetic.IPA != "" {
		present++
	} else {
		missing = append(missing, FieldPhonetic)
	}

	switch {
	case len(r.Definitions) == 0:
		missing = append(missing, FieldDefinitions)
	case !anyExamples(r.Definitions):
		missing = append(missing, FieldUsageExamples)
	default:
		present++
	}

	if r.GrammaticalInfo.HasForms() {
		present++
	} else {
		missing = append(missing, FieldGrammar)
	}

	if len(r.RelatedWords) > 0 {
		present++
	} else {
		missing = append(missing, FieldRelatedWords)
	}

	if m := r.LearningMetadata; m != nil && (m.DifficultyLevel != "" || m.FrequencyRank > 0) {
		present++
	} else {
		missing = append(missing, FieldDifficulty)
	}

	return DataCompleteness{
		MissingFields:          missing,
		CompletenessPercentage: present * 100 / completenessGroups,
	}
}

func anyExamples(defs []Definition) bool {
	for _, d := range defs {
		if len(d.Examples) > 0 {
			return true
		}
	}
	return false
}
