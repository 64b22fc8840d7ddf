package models

import "time"

// NewWordRow builds the row tree persisted for a record.
// Order indexes start at 1 and follow the record's slice order.
func NewWordRow(r *WordRecord, enrichedAt time.Time) *WordRow {
	row := &WordRow{
		WordText:       r.Word,
		Language:       r.Language,
		LastEnrichedAt: &enrichedAt,
	}
	if row.Language == "" {
		row.Language = "en"
	}

	for i, d := range r.Definitions {
		def := DefinitionRow{
			OrderIndex:     i + 1,
			DefinitionText: d.Definition,
			PartOfSpeech:   string(d.PartOfSpeech),
			UsageContext:   d.UsageContext,
		}
		for j, ex := range d.Examples {
			def.Examples = append(def.Examples, UsageExampleRow{
				OrderIndex:  j + 1,
				ExampleText: ex.ExampleText,
				ContextType: string(ex.ContextType),
			})
		}
		row.Definitions = append(row.Definitions, def)
	}

	if r.Phonetic != nil && r.Phonetic.IPA != "" {
		row.Phonetic = &PhoneticRow{IPA: r.Phonetic.IPA, AudioURL: r.Phonetic.AudioURL}
	}

	if g := r.GrammaticalInfo; g != nil {
		gr := &GrammarRow{
			PartOfSpeech:   g.PartOfSpeech,
			PluralForm:     g.PluralForm,
			IrregularForms: g.Irregularities,
		}
		if v := g.VerbForms; v != nil {
			gr.VerbBase = v.Base
			gr.VerbPastSimple = v.PastSimple
			gr.VerbPastParticiple = v.PastParticiple
			gr.VerbPresentParticiple = v.PresentParticiple
			gr.VerbThirdPerson = v.ThirdPerson
		}
		if a := g.AdjectiveForms; a != nil {
			gr.AdjComparative = a.Comparative
			gr.AdjSuperlative = a.Superlative
		}
		row.Grammar = gr
	}

	if m := r.LearningMetadata; m != nil {
		mr := &LearningMetadataRow{
			DifficultyLevel: string(m.DifficultyLevel),
			CEFRLevel:       string(m.CEFRLevel),
			FrequencyBand:   string(m.FrequencyBand),
			StyleTags:       m.StyleTags,
		}
		if m.FrequencyRank > 0 {
			rank := m.FrequencyRank
			mr.FrequencyRank = &rank
		}
		row.Metadata = mr
	}

	for _, rel := range r.RelatedWords {
		strength := rel.Strength
		row.RelatedWords = append(row.RelatedWords, RelatedWordRow{
			TargetText:       rel.Word,
			RelationshipType: string(rel.Relationship),
			UsageNotes:       rel.UsageNotes,
			Strength:         &strength,
		})
	}

	return row
}

// ToRecord converts a fully loaded row tree back into a record.
// Related rows are expected in strength order already.
func (w *WordRow) ToRecord() *WordRecord {
	r := &WordRecord{
		Word:           w.WordText,
		Language:       w.Language,
		Definitions:    []Definition{},
		RelatedWords:   []RelatedWord{},
		LastEnrichedAt: w.LastEnrichedAt,
	}

	for _, d := range w.Definitions {
		def := Definition{
			PartOfSpeech: PartOfSpeech(d.PartOfSpeech),
			Definition:   d.DefinitionText,
			UsageContext: d.UsageContext,
			Examples:     []UsageExample{},
		}
		for _, ex := range d.Examples {
			def.Examples = append(def.Examples, UsageExample{
				ExampleText: ex.ExampleText,
				ContextType: ContextType(ex.ContextType),
			})
		}
		r.Definitions = append(r.Definitions, def)
	}

	if w.Phonetic != nil {
		r.Phonetic = &Phonetic{IPA: w.Phonetic.IPA, AudioURL: w.Phonetic.AudioURL}
	}

	if g := w.Grammar; g != nil {
		gi := &GrammaticalInfo{
			PartOfSpeech:   g.PartOfSpeech,
			PluralForm:     g.PluralForm,
			Irregularities: g.IrregularForms,
		}
		verb := &VerbForms{
			Base:              g.VerbBase,
			PastSimple:        g.VerbPastSimple,
			PastParticiple:    g.VerbPastParticiple,
			PresentParticiple: g.VerbPresentParticiple,
			ThirdPerson:       g.VerbThirdPerson,
		}
		if !verb.Empty() {
			gi.VerbForms = verb
		}
		adj := &AdjectiveForms{Comparative: g.AdjComparative, Superlative: g.AdjSuperlative}
		if !adj.Empty() {
			gi.AdjectiveForms = adj
		}
		r.GrammaticalInfo = gi
	}

	if m := w.Metadata; m != nil {
		meta := &LearningMetadata{
			DifficultyLevel: CEFRLevel(m.DifficultyLevel),
			CEFRLevel:       CEFRLevel(m.CEFRLevel),
			FrequencyBand:   FrequencyBand(m.FrequencyBand),
			StyleTags:       m.StyleTags,
		}
		if meta.StyleTags == nil {
			meta.StyleTags = []string{}
		}
		if m.FrequencyRank != nil {
			meta.FrequencyRank = *m.FrequencyRank
		}
		r.LearningMetadata = meta
	}

	for _, rel := range w.RelatedWords {
		rw := RelatedWord{
			Word:         rel.TargetText,
			Relationship: RelationshipType(rel.RelationshipType),
			UsageNotes:   rel.UsageNotes,
		}
		if rel.Strength != nil {
			rw.Strength = *rel.Strength
		}
		r.RelatedWords = append(r.RelatedWords, rw)
	}

	r.DataCompleteness = Completeness(r)
	return r
}
