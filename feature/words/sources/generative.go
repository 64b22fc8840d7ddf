package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"grimoire/core/utils"
	"grimoire/feature/words/models"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrMalformedResponse is returned when the model answer is not the expected JSON.
var ErrMalformedResponse = errors.New("malformed generative response")

type generativeResponse struct {
	Phonetic *struct {
		IPA      string `json:"ipa_transcription"`
		AudioURL string `json:"audio_url"`
	} `json:"phonetic"`
	Definitions      []generativeDefinition `json:"definitions"`
	GrammaticalInfo  *generativeGrammar     `json:"grammatical_info"`
	RelatedWords     []generativeRelated    `json:"related_words"`
	LearningMetadata *generativeMetadata    `json:"learning_metadata"`
}

type generativeDefinition struct {
	Text         string         `json:"definition_text"`
	PartOfSpeech string         `json:"part_of_speech" validate:"omitempty,oneof=noun verb adjective adverb pronoun preposition conjunction interjection determiner modal"`
	UsageContext string         `json:"usage_context"`
	Examples     []ExampleInput `json:"examples"`
}

type generativeGrammar struct {
	PartOfSpeech          string         `json:"part_of_speech"`
	PluralForm            string         `json:"plural_form"`
	VerbBase              string         `json:"verb_base"`
	VerbPastSimple        string         `json:"verb_past_simple"`
	VerbPastParticiple    string         `json:"verb_past_participle"`
	VerbPresentParticiple string         `json:"verb_present_participle"`
	VerbThirdPerson       string         `json:"verb_third_person"`
	AdjComparative        string         `json:"adj_comparative"`
	AdjSuperlative        string         `json:"adj_superlative"`
	IrregularForms        map[string]any `json:"irregular_forms_json"`
}

type generativeRelated struct {
	Word         string `json:"word" validate:"required,max=100"`
	Relationship string `json:"relationship_type" validate:"required,oneof=synonym antonym derivative compound hypernym hyponym related"`
	UsageNotes   string `json:"usage_notes" validate:"max=500"`
}

type generativeMetadata struct {
	CEFRLevel string   `json:"cefr_level" validate:"omitempty,oneof=A1 A2 B1 B2 C1 C2"`
	StyleTags []string `json:"style_tags"`
}

// Generative is the authoritative source: definitions, examples, grammar,
// phonetics and annotated relations written by a language model.
type Generative struct {
	completer Completer
	logger    *zap.Logger
	validate  *validator.Validate
}

func NewGenerative(completer Completer, logger *zap.Logger) *Generative {
	return &Generative{
		completer: completer,
		logger:    logger,
		validate:  validator.New(),
	}
}

func (g *Generative) Name() string { return NameGenerative }

var generativeFields = fieldSet(
	"definitions", "phonetic", "phonetics", "examples", "grammar", "grammatical_info",
	"related_words", "synonyms", "antonyms", "cefr_level", "style_tags",
)

func (g *Generative) SupportsField(field string) bool { return supports(generativeFields, field) }

func (g *Generative) Fetch(ctx context.Context, word string) (*Partial, error) {
	g.logger.Info("Requesting generative enrichment", zap.String("word", word))

	text, err := g.completer.Complete(ctx, BuildPrompt(word))
	if err != nil {
		return nil, fmt.Errorf("generative enrichment of %q: %w", word, err)
	}

	var resp generativeResponse
	if err := json.Unmarshal([]byte(extractJSON(text)), &resp); err != nil {
		g.logger.Debug("Unparseable generative response", zap.String("word", word), zap.String("raw", text))
		return nil, fmt.Errorf("%w for %q: %v", ErrMalformedResponse, word, err)
	}

	return g.toPartial(word, &resp), nil
}

// toPartial normalizes labels and drops entries failing validation.
func (g *Generative) toPartial(word string, resp *generativeResponse) *Partial {
	p := &Partial{}

	if resp.Phonetic != nil && strings.TrimSpace(resp.Phonetic.IPA) != "" {
		p.Phonetic = &models.Phonetic{
			IPA:      strings.TrimSpace(resp.Phonetic.IPA),
			AudioURL: strings.TrimSpace(resp.Phonetic.AudioURL),
		}
	}

	for _, d := range resp.Definitions {
		d.PartOfSpeech = strings.ToLower(strings.TrimSpace(d.PartOfSpeech))
		if err := g.validate.Struct(d); err != nil {
			g.logger.Warn("Dropping invalid definition", zap.String("word", word), zap.Error(err))
			continue
		}
		p.Definitions = append(p.Definitions, DefinitionInput{
			Text:         strings.TrimSpace(d.Text),
			PartOfSpeech: models.PartOfSpeech(d.PartOfSpeech),
			UsageContext: strings.TrimSpace(d.UsageContext),
			Examples:     d.Examples,
		})
	}

	if gr := resp.GrammaticalInfo; gr != nil {
		p.Grammar = toGrammar(gr)
	}

	for _, r := range resp.RelatedWords {
		r.Word = strings.ToLower(strings.TrimSpace(r.Word))
		r.Relationship = strings.ToLower(strings.TrimSpace(r.Relationship))
		if err := g.validate.Struct(r); err != nil {
			g.logger.Debug("Dropping invalid relation", zap.String("word", word), zap.Error(err))
			continue
		}
		p.Related = append(p.Related, RelatedInput{
			Word:         r.Word,
			Relationship: models.RelationshipType(r.Relationship),
			UsageNotes:   strings.TrimSpace(r.UsageNotes),
		})
	}

	if m := resp.LearningMetadata; m != nil {
		m.CEFRLevel = strings.ToUpper(strings.TrimSpace(m.CEFRLevel))
		if err := g.validate.Struct(m); err != nil {
			m.CEFRLevel = ""
		}
		p.CEFRLevel = models.CEFRLevel(m.CEFRLevel)
		p.StyleTags = m.StyleTags
	}

	return p
}

func toGrammar(gr *generativeGrammar) *models.GrammaticalInfo {
	clean := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

	info := &models.GrammaticalInfo{
		PartOfSpeech: clean(gr.PartOfSpeech),
		PluralForm:   clean(gr.PluralForm),
	}
	verb := &models.VerbForms{
		Base:              clean(gr.VerbBase),
		PastSimple:        clean(gr.VerbPastSimple),
		PastParticiple:    clean(gr.VerbPastParticiple),
		PresentParticiple: clean(gr.VerbPresentParticiple),
		ThirdPerson:       clean(gr.VerbThirdPerson),
	}
	if !verb.Empty() {
		info.VerbForms = verb
	}
	adj := &models.AdjectiveForms{Comparative: clean(gr.AdjComparative), Superlative: clean(gr.AdjSuperlative)}
	if !adj.Empty() {
		info.AdjectiveForms = adj
	}

	if len(gr.IrregularForms) > 0 {
		irr := &models.Irregularities{
			Verb:       utils.ToBool(gr.IrregularForms["irregular_verb"]),
			Comparison: utils.ToBool(gr.IrregularForms["irregular_comparison"]),
			Plural:     utils.ToBool(gr.IrregularForms["irregular_plural"]),
		}
		if note := utils.ToString(gr.IrregularForms["note"]); note != "" {
			irr.Notes = append(irr.Notes, note)
		}
		if notes, ok := gr.IrregularForms["notes"].([]any); ok {
			for _, n := range notes {
				if s := utils.ToString(n); s != "" {
					irr.Notes = append(irr.Notes, s)
				}
			}
		}
		if irr.Any() || len(irr.Notes) > 0 {
			info.Irregularities = irr
		}
	}

	return info
}

// extractJSON strips code fences and surrounding prose from a model answer.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return text
	}
	return text[start : end+1]
}
