package models

import "time"

// WordRow represents the 'words' table.
type WordRow struct {
	ID             uint       `gorm:"column:id;primaryKey"`
	WordText       string     `gorm:"column:word_text;type:varchar(100);uniqueIndex;not null"`
	Language       string     `gorm:"column:language;type:varchar(10);not null;default:en"`
	LastEnrichedAt *time.Time `gorm:"column:last_enriched_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`

	Definitions  []DefinitionRow      `gorm:"foreignKey:WordID;constraint:OnDelete:CASCADE"`
	Phonetic     *PhoneticRow         `gorm:"foreignKey:WordID;constraint:OnDelete:CASCADE"`
	Grammar      *GrammarRow          `gorm:"foreignKey:WordID;constraint:OnDelete:CASCADE"`
	Metadata     *LearningMetadataRow `gorm:"foreignKey:WordID;constraint:OnDelete:CASCADE"`
	RelatedWords []RelatedWordRow     `gorm:"foreignKey:WordID;constraint:OnDelete:CASCADE"`
}

func (WordRow) TableName() string { return "words" }

// DefinitionRow represents the 'definitions' table.
type DefinitionRow struct {
	ID             uint   `gorm:"column:id;primaryKey"`
	WordID         uint   `gorm:"column:word_id;not null;index"`
	OrderIndex     int    `gorm:"column:order_index;not null;check:order_index > 0"`
	DefinitionText string `gorm:"column:definition_text;type:varchar(500);not null"`
	PartOfSpeech   string `gorm:"column:part_of_speech;type:varchar(20);not null"`
	UsageContext   string `gorm:"column:usage_context;type:varchar(50)"`

	Examples []UsageExampleRow `gorm:"foreignKey:DefinitionID;constraint:OnDelete:CASCADE"`
}

func (DefinitionRow) TableName() string { return "definitions" }

// UsageExampleRow represents the 'usage_examples' table.
type UsageExampleRow struct {
	ID           uint   `gorm:"column:id;primaryKey"`
	DefinitionID uint   `gorm:"column:definition_id;not null;index"`
	OrderIndex   int    `gorm:"column:order_index;not null;check:order_index > 0"`
	ExampleText  string `gorm:"column:example_text;type:varchar(300);not null"`
	ContextType  string `gorm:"column:context_type;type:varchar(20);not null;default:casual"`
}

func (UsageExampleRow) TableName() string { return "usage_examples" }

// PhoneticRow represents the 'phonetics' table.
type PhoneticRow struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	WordID   uint   `gorm:"column:word_id;not null;uniqueIndex"`
	IPA      string `gorm:"column:ipa_transcription;type:varchar(200);not null"`
	AudioURL string `gorm:"column:audio_url;type:varchar(500)"`
}

func (PhoneticRow) TableName() string { return "phonetics" }

// GrammarRow represents the 'grammatical_info' table.
type GrammarRow struct {
	ID                    uint            `gorm:"column:id;primaryKey"`
	WordID                uint            `gorm:"column:word_id;not null;uniqueIndex"`
	PartOfSpeech          string          `gorm:"column:part_of_speech;type:varchar(20)"`
	PluralForm            string          `gorm:"column:plural_form;type:varchar(100)"`
	VerbBase              string          `gorm:"column:verb_base;type:varchar(100)"`
	VerbPastSimple        string          `gorm:"column:verb_past_simple;type:varchar(100)"`
	VerbPastParticiple    string          `gorm:"column:verb_past_participle;type:varchar(100)"`
	VerbPresentParticiple string          `gorm:"column:verb_present_participle;type:varchar(100)"`
	VerbThirdPerson       string          `gorm:"column:verb_third_person;type:varchar(100)"`
	AdjComparative        string          `gorm:"column:adj_comparative;type:varchar(100)"`
	AdjSuperlative        string          `gorm:"column:adj_superlative;type:varchar(100)"`
	IrregularForms        *Irregularities `gorm:"column:irregular_forms_json;type:text;serializer:json"`
}

func (GrammarRow) TableName() string { return "grammatical_info" }

// LearningMetadataRow represents the 'learning_metadata' table.
type LearningMetadataRow struct {
	ID              uint     `gorm:"column:id;primaryKey"`
	WordID          uint     `gorm:"column:word_id;not null;uniqueIndex"`
	DifficultyLevel string   `gorm:"column:difficulty_level;type:varchar(2)"`
	CEFRLevel       string   `gorm:"column:cefr_level;type:varchar(2)"`
	FrequencyRank   *int     `gorm:"column:frequency_rank;check:frequency_rank IS NULL OR frequency_rank > 0"`
	FrequencyBand   string   `gorm:"column:frequency_band;type:varchar(20)"`
	StyleTags       []string `gorm:"column:style_tags;type:text;serializer:json"`
}

func (LearningMetadataRow) TableName() string { return "learning_metadata" }

// RelatedWordRow represents the 'related_words' table.
// The target is stored as text so relations can point at words not yet looked up.
type RelatedWordRow struct {
	ID               uint     `gorm:"column:id;primaryKey"`
	WordID           uint     `gorm:"column:word_id;not null;uniqueIndex:idx_related_edge"`
	TargetText       string   `gorm:"column:target_text;type:varchar(100);not null;uniqueIndex:idx_related_edge"`
	RelationshipType string   `gorm:"column:relationship_type;type:varchar(20);not null;uniqueIndex:idx_related_edge"`
	UsageNotes       string   `gorm:"column:usage_notes;type:varchar(500)"`
	Strength         *float64 `gorm:"column:strength;check:strength IS NULL OR (strength >= 0 AND strength <= 1)"`
}

func (RelatedWordRow) TableName() string { return "related_words" }

// Entities lists every table in migration order.
func Entities() []any {
	return []any{
		&WordRow{},
		&DefinitionRow{},
		&UsageExampleRow{},
		&PhoneticRow{},
		&GrammarRow{},
		&LearningMetadataRow{},
		&RelatedWordRow{},
	}
}
