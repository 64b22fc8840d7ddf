package models

import "time"

// WordRecord is the merged, validated view of a word.
// It is what the cache stores and what the API serves.
type WordRecord struct {
	Word             string            `json:"word"`
	Language         string            `json:"language"`
	Phonetic         *Phonetic         `json:"phonetic"`
	Definitions      []Definition      `json:"definitions"`
	GrammaticalInfo  *GrammaticalInfo  `json:"grammatical_info"`
	LearningMetadata *LearningMetadata `json:"learning_metadata"`
	RelatedWords     []RelatedWord     `json:"related_words"`
	DataCompleteness DataCompleteness  `json:"data_completeness"`
	LastEnrichedAt   *time.Time        `json:"last_enriched_at,omitempty"`
}

type Phonetic struct {
	IPA      string `json:"ipa"`
	AudioURL string `json:"audio_url,omitempty"`
}

type Definition struct {
	PartOfSpeech PartOfSpeech   `json:"part_of_speech"`
	Definition   string         `json:"definition"`
	UsageContext string         `json:"usage_context,omitempty"`
	Examples     []UsageExample `json:"examples"`
}

type UsageExample struct {
	ExampleText string      `json:"example_text"`
	ContextType ContextType `json:"context_type"`
}

type GrammaticalInfo struct {
	PartOfSpeech   string          `json:"part_of_speech,omitempty"`
	PluralForm     string          `json:"plural_form,omitempty"`
	VerbForms      *VerbForms      `json:"verb_forms,omitempty"`
	AdjectiveForms *AdjectiveForms `json:"adjective_forms,omitempty"`
	Irregularities *Irregularities `json:"irregular_forms,omitempty"`
}

// HasForms reports whether any field other than the part of speech is set.
func (g *GrammaticalInfo) HasForms() bool {
	if g == nil {
		return false
	}
	return g.PluralForm != "" || !g.VerbForms.Empty() || !g.AdjectiveForms.Empty()
}

type VerbForms struct {
	Base              string `json:"base,omitempty"`
	PastSimple        string `json:"past_simple,omitempty"`
	PastParticiple    string `json:"past_participle,omitempty"`
	PresentParticiple string `json:"present_participle,omitempty"`
	ThirdPerson       string `json:"third_person,omitempty"`
}

// Empty reports whether no verb form is set. A nil receiver is empty.
func (v *VerbForms) Empty() bool {
	return v == nil || (v.Base == "" && v.PastSimple == "" && v.PastParticiple == "" &&
		v.PresentParticiple == "" && v.ThirdPerson == "")
}

type AdjectiveForms struct {
	Comparative string `json:"comparative,omitempty"`
	Superlative string `json:"superlative,omitempty"`
}

// Empty reports whether neither form is set. A nil receiver is empty.
func (a *AdjectiveForms) Empty() bool {
	return a == nil || (a.Comparative == "" && a.Superlative == "")
}

// Irregularities flags irregular grammatical forms with readable notes.
type Irregularities struct {
	Verb       bool     `json:"irregular_verb,omitempty"`
	Comparison bool     `json:"irregular_comparison,omitempty"`
	Plural     bool     `json:"irregular_plural,omitempty"`
	Notes      []string `json:"notes,omitempty"`
}

// Any reports whether at least one flag is raised.
func (i *Irregularities) Any() bool {
	return i != nil && (i.Verb || i.Comparison || i.Plural)
}

type LearningMetadata struct {
	DifficultyLevel CEFRLevel     `json:"difficulty_level,omitempty"`
	CEFRLevel       CEFRLevel     `json:"cefr_level,omitempty"`
	FrequencyRank   int           `json:"frequency_rank,omitempty"`
	FrequencyBand   FrequencyBand `json:"frequency_band,omitempty"`
	StyleTags       []string      `json:"style_tags"`
}

type RelatedWord struct {
	Word         string           `json:"word"`
	Relationship RelationshipType `json:"relationship"`
	UsageNotes   string           `json:"usage_notes,omitempty"`
	Strength     float64          `json:"strength"`
}

type DataCompleteness struct {
	MissingFields          []string `json:"missing_fields"`
	CompletenessPercentage int      `json:"completeness_percentage"`
}

// FrequencyRank returns the known rank, or zero.
func (r *WordRecord) FrequencyRank() int {
	if r == nil || r.LearningMetadata == nil {
		return 0
	}
	return r.LearningMetadata.FrequencyRank
}
