package sources

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"grimoire/core/storage/mocks"
	"grimoire/feature/words/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExampleInputDecoding(t *testing.T) {
	var examples []ExampleInput
	err := json.Unmarshal([]byte(`["The cat sleeps.", {"example_text": "Research on the cat.", "context_type": "academic"}]`), &examples)
	require.NoError(t, err)
	require.Len(t, examples, 2)
	assert.Equal(t, ExampleInput{Text: "The cat sleeps."}, examples[0])
	assert.Equal(t, ExampleInput{Text: "Research on the cat.", ContextType: "academic"}, examples[1])

	var bad ExampleInput
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestParseFrequency(t *testing.T) {
	ranks, err := ParseFrequency([]byte("# comment\nthe 1\nThe 7\ncat 1,500\n\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"the": 1, "cat": 1500}, ranks)

	_, err = ParseFrequency([]byte("the one\n"))
	assert.Error(t, err)
	_, err = ParseFrequency([]byte("the\n"))
	assert.Error(t, err)
}

func TestParsePronunciations(t *testing.T) {
	phones, err := ParsePronunciations([]byte(";;; header\nREAD  R IY1 D\nREAD(1)  R EH1 D\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "IY1", "D"}, phones["read"])
	assert.Len(t, phones, 1)
}

func TestParseCEFR(t *testing.T) {
	levels, err := ParseCEFR([]byte(`{"Cat": "a1", "dog": "Z9"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]models.CEFRLevel{"cat": models.A1}, levels)

	_, err = ParseCEFR([]byte(`not json`))
	assert.Error(t, err)
}

func TestBuiltinDatasetsParse(t *testing.T) {
	ds, err := LoadDatasets(context.Background(), nil, "", zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, models.A1, ds.CEFR["cat"])
	assert.Equal(t, 1, ds.Frequency["the"])
	assert.Equal(t, []string{"K", "AE1", "T"}, ds.Pronunciations["cat"])
	assert.Contains(t, ds.Relations["cat"].Synonyms, "feline")
	assert.Contains(t, ds.Words, "cat")
	for _, object := range DatasetObjects {
		assert.Equal(t, OriginBuiltin, ds.Origins[object], object)
	}
}

func TestLoadDatasetsFromBucket(t *testing.T) {
	client := new(mocks.Client)
	reader := func(s string) io.ReadCloser { return io.NopCloser(strings.NewReader(s)) }
	notFound := minio.ErrorResponse{Code: "NoSuchKey", Message: "missing"}

	client.On("GetObject", mock.Anything, "grimoire", ObjectFrequency, mock.Anything).Return(reader("cat 42\n"), nil)
	client.On("GetObject", mock.Anything, "grimoire", ObjectCEFR, mock.Anything).Return(reader("{broken"), nil)
	client.On("GetObject", mock.Anything, "grimoire", ObjectPronunciations, mock.Anything).Return(nil, errors.New("connection reset"))
	client.On("GetObject", mock.Anything, "grimoire", ObjectRelations, mock.Anything).Return(nil, notFound)
	client.On("GetObject", mock.Anything, "grimoire", ObjectWords, mock.Anything).Return(reader("cat\ncot\n"), nil)

	ds, err := LoadDatasets(context.Background(), client, "grimoire", zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"cat": 42}, ds.Frequency)
	assert.Equal(t, []string{"cat", "cot"}, ds.Words)
	assert.Equal(t, OriginBucket, ds.Origins[ObjectFrequency])
	assert.Equal(t, OriginBucket, ds.Origins[ObjectWords])
	assert.Equal(t, OriginBuiltin, ds.Origins[ObjectCEFR])
	assert.Equal(t, OriginBuiltin, ds.Origins[ObjectPronunciations])
	assert.Equal(t, OriginBuiltin, ds.Origins[ObjectRelations])
	assert.Equal(t, models.A1, ds.CEFR["cat"])
	client.AssertExpectations(t)
}

func TestLexicalFetch(t *testing.T) {
	lex := NewLexical(map[string]Relations{
		"run": {
			Synonyms:    []string{"sprint", "run"},
			Antonyms:    []string{"walk"},
			Derivatives: []string{"runner"},
			Hypernyms:   []string{"move"},
			AlsoSee:     []string{"race"},
		},
	})

	p, err := lex.Fetch(context.Background(), "run")
	require.NoError(t, err)
	assert.Equal(t, []RelatedInput{
		{Word: "sprint", Relationship: models.Synonym},
		{Word: "walk", Relationship: models.Antonym},
		{Word: "runner", Relationship: models.Derivative, UsageNotes: "Derived from the same root as run"},
		{Word: "move", Relationship: models.Hypernym, UsageNotes: "A more general term for run"},
		{Word: "race", Relationship: models.Related, UsageNotes: "Related concept to run"},
	}, p.Related)

	p, err = lex.Fetch(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, p.Related)

	assert.True(t, lex.SupportsField("synonyms"))
	assert.False(t, lex.SupportsField("phonetic"))
}

func TestLexicalCapsEachKind(t *testing.T) {
	var many []string
	for i := 0; i < 15; i++ {
		many = append(many, "syn"+string(rune('a'+i)))
	}
	p, err := NewLexical(map[string]Relations{"big": {Synonyms: many}}).Fetch(context.Background(), "big")
	require.NoError(t, err)
	assert.Len(t, p.Related, relationsPerKind)
}

func TestToIPA(t *testing.T) {
	assert.Equal(t, "/kˈæt/", ToIPA([]string{"K", "AE1", "T"}))
	assert.Equal(t, "/ˈænəlˌaɪz/", ToIPA([]string{"AE1", "N", "AH0", "L", "AY2", "Z"}))
	assert.Equal(t, "/x/", ToIPA([]string{"X"}))
}

func TestBestEffortSources(t *testing.T) {
	ctx := context.Background()

	p, err := NewPronunciation(map[string][]string{"cat": {"K", "AE1", "T"}}).Fetch(ctx, "cat")
	require.NoError(t, err)
	require.NotNil(t, p.Phonetic)
	assert.Equal(t, "/kˈæt/", p.Phonetic.IPA)

	p, err = NewDifficulty(map[string]models.CEFRLevel{"cat": models.A1}).Fetch(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, models.A1, p.CEFRLevel)

	freq := NewFrequency(map[string]int{"cat": 1500})
	p, err = freq.Fetch(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, 1500, p.FrequencyRank)
	assert.Equal(t, models.BandTop5000, p.FrequencyBand)

	p, err = freq.Fetch(ctx, "dog")
	require.NoError(t, err)
	assert.Zero(t, p.FrequencyRank)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = freq.Fetch(cancelled, "cat")
	assert.ErrorIs(t, err, context.Canceled)
}

type stubCompleter struct {
	text   string
	err    error
	prompt string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

const catResponse = "```json\n" + `{
  "phonetic": {"ipa_transcription": "/kæt/", "audio_url": null},
  "definitions": [
    {"definition_text": "A small domesticated carnivorous mammal.", "part_of_speech": "Noun",
     "examples": ["My cat sleeps all day.", {"example_text": "The study observed cat behavior.", "context_type": "academic"}]},
    {"definition_text": "Something with a made up part of speech.", "part_of_speech": "gerundive"},
    {"definition_text": "A definition without a part of speech.", "part_of_speech": ""}
  ],
  "grammatical_info": {"part_of_speech": "noun", "plural_form": "cats", "irregular_forms_json": {"irregular_plural": "false", "note": "regular"}},
  "related_words": [
    {"word": "Kitten", "relationship_type": "Hyponym", "usage_notes": "A young cat"},
    {"word": "", "relationship_type": "synonym"},
    {"word": "feline", "relationship_type": "cousin"}
  ],
  "learning_metadata": {"cefr_level": "a1", "style_tags": ["neutral"]}
}` + "\n```"

func TestGenerativeFetch(t *testing.T) {
	stub := &stubCompleter{text: catResponse}
	gen := NewGenerative(stub, zap.NewNop())

	p, err := gen.Fetch(context.Background(), "cat")
	require.NoError(t, err)
	assert.Contains(t, stub.prompt, `"cat"`)

	require.NotNil(t, p.Phonetic)
	assert.Equal(t, "/kæt/", p.Phonetic.IPA)
	assert.Empty(t, p.Phonetic.AudioURL)

	require.Len(t, p.Definitions, 2)
	assert.Equal(t, models.Noun, p.Definitions[0].PartOfSpeech)
	assert.Equal(t, []ExampleInput{
		{Text: "My cat sleeps all day."},
		{Text: "The study observed cat behavior.", ContextType: "academic"},
	}, p.Definitions[0].Examples)
	assert.Empty(t, p.Definitions[1].PartOfSpeech)

	require.NotNil(t, p.Grammar)
	assert.Equal(t, "cats", p.Grammar.PluralForm)
	assert.Nil(t, p.Grammar.VerbForms)
	require.NotNil(t, p.Grammar.Irregularities)
	assert.False(t, p.Grammar.Irregularities.Plural)
	assert.Equal(t, []string{"regular"}, p.Grammar.Irregularities.Notes)

	assert.Equal(t, []RelatedInput{{Word: "kitten", Relationship: models.Hyponym, UsageNotes: "A young cat"}}, p.Related)
	assert.Equal(t, models.A1, p.CEFRLevel)
	assert.Equal(t, []string{"neutral"}, p.StyleTags)
}

func TestGenerativeVerbForms(t *testing.T) {
	stub := &stubCompleter{text: `Here you go: {"definitions": [], "grammatical_info": {"part_of_speech": "verb",
		"verb_base": "go", "verb_past_simple": "went", "verb_past_participle": "gone",
		"irregular_forms_json": {"irregular_verb": true}}, "learning_metadata": {"cefr_level": "Z1"}}`}

	p, err := NewGenerative(stub, zap.NewNop()).Fetch(context.Background(), "go")
	require.NoError(t, err)
	require.NotNil(t, p.Grammar.VerbForms)
	assert.Equal(t, "went", p.Grammar.VerbForms.PastSimple)
	assert.True(t, p.Grammar.Irregularities.Verb)
	assert.Empty(t, p.CEFRLevel)
}

func TestGenerativeErrors(t *testing.T) {
	boom := errors.New("overloaded")
	_, err := NewGenerative(&stubCompleter{err: boom}, zap.NewNop()).Fetch(context.Background(), "cat")
	assert.ErrorIs(t, err, boom)

	_, err = NewGenerative(&stubCompleter{text: "I don't know that word."}, zap.NewNop()).Fetch(context.Background(), "cat")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a": {"b": 1}}`, extractJSON("```json\n{\"a\": {\"b\": 1}}\n```"))
	assert.Equal(t, "plain", extractJSON("plain"))
}
