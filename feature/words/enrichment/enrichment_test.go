package enrichment

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"grimoire/core/middleware/metrics"
	"grimoire/feature/words/models"
	"grimoire/feature/words/sources"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	name    string
	partial *sources.Partial
	err     error
	delay   time.Duration
	calls   atomic.Int32
}

func (s *stubSource) Name() string                 { return s.name }
func (s *stubSource) SupportsField(_ string) bool { return true }

func (s *stubSource) Fetch(ctx context.Context, _ string) (*sources.Partial, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.partial, s.err
}

func catGenerative() *sources.Partial {
	return &sources.Partial{
		Phonetic: &models.Phonetic{IPA: "/kæt/"},
		Definitions: []sources.DefinitionInput{{
			Text:         "A small domesticated carnivorous mammal with soft fur.",
			PartOfSpeech: models.Noun,
			Examples: []sources.ExampleInput{
				{Text: "My cat sleeps on the sofa all afternoon."},
				{Text: "The research study observed cat behavior in the data.", ContextType: "ACADEMIC"},
				{Text: "Dogs bark loudly."},
				{Text: "cat"},
			},
		}},
		Grammar: &models.GrammaticalInfo{PartOfSpeech: "noun", PluralForm: "cats"},
		Related: []sources.RelatedInput{
			{Word: "kitten", Relationship: models.Hyponym, UsageNotes: "A young cat"},
			{Word: "cat", Relationship: models.Synonym},
		},
		CEFRLevel: models.A2,
		StyleTags: []string{"neutral"},
	}
}

func newTestEngine(srcs Sources) *Engine {
	return NewEngine(srcs, Config{SourceTimeoutSeconds: 1, GenerativeTimeoutSeconds: 1}, zap.NewNop(), nil)
}

func TestEnrichCat(t *testing.T) {
	engine := newTestEngine(Sources{
		Generative: &stubSource{name: sources.NameGenerative, partial: catGenerative()},
		Lexical: &stubSource{name: sources.NameLexical, partial: &sources.Partial{Related: []sources.RelatedInput{
			{Word: "feline", Relationship: models.Synonym},
			{Word: "kitten", Relationship: models.Hyponym, UsageNotes: "A more specific type of cat"},
			{Word: "animal", Relationship: models.Hypernym, UsageNotes: "A more general term for cat"},
		}}},
		Pronunciation: &stubSource{name: sources.NamePronunciation, partial: &sources.Partial{Phonetic: &models.Phonetic{IPA: "/kˈæt/"}}},
		Difficulty:    &stubSource{name: sources.NameDifficulty, partial: &sources.Partial{CEFRLevel: models.A1}},
		Frequency:     &stubSource{name: sources.NameFrequency, partial: &sources.Partial{FrequencyRank: 50, FrequencyBand: models.BandTop100}},
	})

	record, err := engine.Enrich(context.Background(), "cat")
	require.NoError(t, err)

	assert.Equal(t, "cat", record.Word)
	assert.Equal(t, "en", record.Language)
	assert.Equal(t, "/kæt/", record.Phonetic.IPA)
	require.NotNil(t, record.LastEnrichedAt)

	require.Len(t, record.Definitions, 1)
	assert.Equal(t, []models.UsageExample{
		{ExampleText: "My cat sleeps on the sofa all afternoon.", ContextType: models.ContextCasual},
		{ExampleText: "The research study observed cat behavior in the data.", ContextType: models.ContextAcademic},
	}, record.Definitions[0].Examples)

	assert.Equal(t, []models.RelatedWord{
		{Word: "feline", Relationship: models.Synonym, Strength: 0.9},
		{Word: "kitten", Relationship: models.Hyponym, UsageNotes: "A young cat", Strength: 0.75},
		{Word: "animal", Relationship: models.Hypernym, UsageNotes: "A more general term for cat", Strength: 0.7},
	}, record.RelatedWords)

	require.NotNil(t, record.LearningMetadata)
	assert.Equal(t, models.A1, record.LearningMetadata.CEFRLevel)
	assert.Equal(t, models.A1, record.LearningMetadata.DifficultyLevel)
	assert.Equal(t, 50, record.LearningMetadata.FrequencyRank)
	assert.Equal(t, models.BandTop100, record.LearningMetadata.FrequencyBand)
	assert.Equal(t, []string{"neutral"}, record.LearningMetadata.StyleTags)

	assert.Nil(t, record.GrammaticalInfo.Irregularities)
	assert.Equal(t, 100, record.DataCompleteness.CompletenessPercentage)
	assert.Empty(t, record.DataCompleteness.MissingFields)
}

func TestEnrichBestEffortFailuresAreIgnored(t *testing.T) {
	gen := catGenerative()
	gen.Phonetic = nil
	gen.Related = nil
	gen.CEFRLevel = ""
	gen.Grammar = &models.GrammaticalInfo{PartOfSpeech: "noun"}

	engine := newTestEngine(Sources{
		Generative:    &stubSource{name: sources.NameGenerative, partial: gen},
		Lexical:       &stubSource{name: sources.NameLexical, err: errors.New("dataset gone")},
		Pronunciation: &stubSource{name: sources.NamePronunciation, delay: 2 * time.Second},
		Frequency:     &stubSource{name: sources.NameFrequency, partial: &sources.Partial{FrequencyRank: 7000}},
	})

	record, err := engine.Enrich(context.Background(), "cat")
	require.NoError(t, err)

	assert.Nil(t, record.Phonetic)
	assert.Empty(t, record.RelatedWords)
	assert.NotNil(t, record.RelatedWords)
	assert.Equal(t, models.B2, record.LearningMetadata.CEFRLevel)
	assert.Equal(t, models.BandTop10000, record.LearningMetadata.FrequencyBand)
	assert.Equal(t, 40, record.DataCompleteness.CompletenessPercentage)
	assert.Equal(t, []string{models.FieldPhonetic, models.FieldGrammar, models.FieldRelatedWords},
		record.DataCompleteness.MissingFields)
}

func TestEnrichRecordsSourceDurations(t *testing.T) {
	m := metrics.New()
	engine := NewEngine(Sources{
		Generative: &stubSource{name: sources.NameGenerative, partial: catGenerative()},
		Lexical:    &stubSource{name: sources.NameLexical, err: errors.New("dataset gone")},
	}, Config{SourceTimeoutSeconds: 1, GenerativeTimeoutSeconds: 1}, zap.NewNop(), m)

	_, err := engine.Enrich(context.Background(), "cat")
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(m.Registry(), "grimoire_enrichment_source_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	expected := `
# HELP grimoire_errors_total Errors by kind.
# TYPE grimoire_errors_total counter
grimoire_errors_total{kind="source_lexical"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "grimoire_errors_total"))
}

func TestEnrichGenerativeFailure(t *testing.T) {
	engine := newTestEngine(Sources{
		Generative: &stubSource{name: sources.NameGenerative, err: errors.New("rate limited")},
	})
	_, err := engine.Enrich(context.Background(), "cat")
	assert.ErrorIs(t, err, ErrAuthoritativeSource)

	_, err = newTestEngine(Sources{}).Enrich(context.Background(), "cat")
	assert.ErrorIs(t, err, ErrAuthoritativeSource)
}

func TestEnrichValidationFailure(t *testing.T) {
	engine := newTestEngine(Sources{
		Generative: &stubSource{name: sources.NameGenerative, partial: &sources.Partial{}},
	})
	_, err := engine.Enrich(context.Background(), "qwxyz")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want models.ContextType
	}{
		{"The research study showed results", models.ContextAcademic},
		{"I love my cat", models.ContextCasual},
		{"The company hired a new manager for the office", models.ContextBusiness},
		{"The software uses a clever algorithm", models.ContextTechnical},
		{"We hereby cordially invite you", models.ContextFormal},
		// One academic and one business hit.
		{"The research company", models.ContextCasual},
		// A repeated keyword still counts once, so this is a tie too.
		{"The data and more data went to the company", models.ContextCasual},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.text), tt.text)
	}
}

func TestAccept(t *testing.T) {
	assert.False(t, Accept("a ca", "ca"), "4 characters")
	assert.True(t, Accept("a cat", "cat"), "5 characters")

	long := "cat " + strings.Repeat("x", 296)
	assert.Len(t, long, 300)
	assert.True(t, Accept(long, "cat"))
	assert.False(t, Accept(long+"x", "cat"), "301 characters")

	assert.False(t, Accept("A dog barked.", "cat"))
	assert.True(t, Accept("The CAT sat.", "cat"))
	assert.False(t, Accept("cat-like-thing", "cat"))
	assert.False(t, Accept("     ", "cat"))
}

func TestProcessExamplesKeepsKnownContext(t *testing.T) {
	got := processExamples([]sources.ExampleInput{
		{Text: "Please run the software update.", ContextType: "business"},
		{Text: "Please run the software update.", ContextType: "sporty"},
	}, "run")
	assert.Equal(t, []models.UsageExample{
		{ExampleText: "Please run the software update.", ContextType: models.ContextBusiness},
		{ExampleText: "Please run the software update.", ContextType: models.ContextTechnical},
	}, got)
}

func TestStrength(t *testing.T) {
	assert.Equal(t, 1.0, Strength(models.Synonym, true, true))
	assert.Equal(t, 0.8, Strength(models.Antonym, false, false))
	assert.Equal(t, 0.95, Strength(models.Synonym, false, true))
	assert.Equal(t, 0.6, Strength(models.Compound, true, false))
	assert.Equal(t, 0.5, Strength(models.Related, false, false))
}

func TestMergeRelated(t *testing.T) {
	gen := []sources.RelatedInput{{Word: "Sprint", Relationship: models.Synonym, UsageNotes: "faster"}}
	lex := []sources.RelatedInput{
		{Word: "sprint", Relationship: models.Synonym},
		{Word: "sprint", Relationship: models.Related},
		{Word: "run", Relationship: models.Synonym},
		{Word: "walk", Relationship: models.Antonym},
	}

	got := mergeRelated("run", gen, lex, 15)
	assert.Equal(t, []models.RelatedWord{
		{Word: "sprint", Relationship: models.Synonym, UsageNotes: "faster", Strength: 1.0},
		{Word: "walk", Relationship: models.Antonym, Strength: 0.8},
		{Word: "sprint", Relationship: models.Related, Strength: 0.5},
	}, got)

	var many []sources.RelatedInput
	for i := 0; i < 20; i++ {
		many = append(many, sources.RelatedInput{Word: "w" + string(rune('a'+i)), Relationship: models.Related})
	}
	assert.Len(t, mergeRelated("run", nil, many, 15), 15)
}

func TestDetectIrregularities(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		grammar models.GrammaticalInfo
		want    *models.Irregularities
	}{
		{
			name:    "irregular verb",
			word:    "go",
			grammar: models.GrammaticalInfo{PartOfSpeech: "verb", VerbForms: &models.VerbForms{PastSimple: "went", PastParticiple: "gone"}},
			want:    &models.Irregularities{Verb: true, Notes: []string{"Irregular verb: go/went/gone"}},
		},
		{
			name:    "regular verb",
			word:    "walk",
			grammar: models.GrammaticalInfo{VerbForms: &models.VerbForms{Base: "walk", PastSimple: "walked", PastParticiple: "walked"}},
		},
		{
			name:    "doubled consonant",
			word:    "stop",
			grammar: models.GrammaticalInfo{VerbForms: &models.VerbForms{PastSimple: "stopped", PastParticiple: "stopped"}},
		},
		{
			name:    "y to ied",
			word:    "try",
			grammar: models.GrammaticalInfo{VerbForms: &models.VerbForms{PastSimple: "tried"}},
		},
		{
			name:    "irregular plural",
			word:    "child",
			grammar: models.GrammaticalInfo{PartOfSpeech: "noun", PluralForm: "children"},
			want:    &models.Irregularities{Plural: true, Notes: []string{"Irregular plural: child → children"}},
		},
		{
			name:    "regular plural",
			word:    "cat",
			grammar: models.GrammaticalInfo{PartOfSpeech: "noun", PluralForm: "cats"},
		},
		{
			name:    "es plural",
			word:    "box",
			grammar: models.GrammaticalInfo{PartOfSpeech: "noun", PluralForm: "boxes"},
		},
		{
			name:    "ves plural",
			word:    "knife",
			grammar: models.GrammaticalInfo{PartOfSpeech: "noun", PluralForm: "knives"},
		},
		{
			name:    "plural ignored outside nouns",
			word:    "run",
			grammar: models.GrammaticalInfo{PartOfSpeech: "verb", PluralForm: "runnen"},
		},
		{
			name:    "plural ignored without part of speech",
			word:    "mouse",
			grammar: models.GrammaticalInfo{PluralForm: "mice"},
		},
		{
			name:    "vowel consonant ending doubles",
			word:    "visit",
			grammar: models.GrammaticalInfo{VerbForms: &models.VerbForms{PastSimple: "visited", PastParticiple: "visited"}},
			want:    &models.Irregularities{Verb: true, Notes: []string{"Irregular verb: visit/visited/visited"}},
		},
		{
			name:    "irregular comparison",
			word:    "good",
			grammar: models.GrammaticalInfo{AdjectiveForms: &models.AdjectiveForms{Comparative: "better", Superlative: "best"}},
			want:    &models.Irregularities{Comparison: true, Notes: []string{"Irregular adjective: good/better/best"}},
		},
		{
			name:    "regular comparison",
			word:    "happy",
			grammar: models.GrammaticalInfo{AdjectiveForms: &models.AdjectiveForms{Comparative: "happier", Superlative: "happiest"}},
		},
		{
			name:    "periphrastic comparison",
			word:    "beautiful",
			grammar: models.GrammaticalInfo{AdjectiveForms: &models.AdjectiveForms{Comparative: "more beautiful", Superlative: "most beautiful"}},
		},
		{
			name: "source flag kept",
			word: "go",
			grammar: models.GrammaticalInfo{
				VerbForms:      &models.VerbForms{PastSimple: "went"},
				Irregularities: &models.Irregularities{Verb: true, Notes: []string{"go/went/gone"}},
			},
			want: &models.Irregularities{Verb: true, Notes: []string{"go/went/gone"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.grammar
			DetectIrregularities(tt.word, &g)
			assert.Equal(t, tt.want, g.Irregularities)
		})
	}
}

func TestDetectIrregularitiesFillsVerbBase(t *testing.T) {
	g := &models.GrammaticalInfo{PartOfSpeech: "verb"}
	DetectIrregularities("run", g)
	require.NotNil(t, g.VerbForms)
	assert.Equal(t, "run", g.VerbForms.Base)
	assert.Nil(t, g.Irregularities)
}

func TestValidate(t *testing.T) {
	long := strings.Repeat("a", 600)
	r := &models.WordRecord{Word: "cat", Definitions: []models.Definition{{PartOfSpeech: models.Noun, Definition: long}}}
	require.NoError(t, Validate(r))
	assert.Len(t, r.Definitions[0].Definition, 500)

	cases := []models.Definition{
		{PartOfSpeech: models.Noun, Definition: ""},
		{PartOfSpeech: models.Noun, Definition: "too short"},
		{Definition: "A definition with no part of speech."},
	}
	for _, d := range cases {
		err := Validate(&models.WordRecord{Word: "cat", Definitions: []models.Definition{d}})
		assert.ErrorIs(t, err, ErrValidation, d.Definition)
	}
	assert.ErrorIs(t, Validate(&models.WordRecord{Word: "cat"}), ErrValidation)
}
