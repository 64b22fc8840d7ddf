package models

import "regexp"

// WordPattern is the shape of a normalized word.
var WordPattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

// PartOfSpeech is the grammatical category of a definition.
type PartOfSpeech string

const (
	Noun         PartOfSpeech = "noun"
	Verb         PartOfSpeech = "verb"
	Adjective    PartOfSpeech = "adjective"
	Adverb       PartOfSpeech = "adverb"
	Pronoun      PartOfSpeech = "pronoun"
	Preposition  PartOfSpeech = "preposition"
	Conjunction  PartOfSpeech = "conjunction"
	Interjection PartOfSpeech = "interjection"
	Determiner   PartOfSpeech = "determiner"
	Modal        PartOfSpeech = "modal"
)

// IsValid reports whether p belongs to the closed set.
func (p PartOfSpeech) IsValid() bool {
	switch p {
	case Noun, Verb, Adjective, Adverb, Pronoun, Preposition, Conjunction, Interjection, Determiner, Modal:
		return true
	}
	return false
}

// ContextType labels the register of a usage example.
type ContextType string

const (
	ContextCasual    ContextType = "casual"
	ContextAcademic  ContextType = "academic"
	ContextBusiness  ContextType = "business"
	ContextTechnical ContextType = "technical"
	ContextFormal    ContextType = "formal"
)

// IsValid reports whether c is one of the five labels.
func (c ContextType) IsValid() bool {
	switch c {
	case ContextCasual, ContextAcademic, ContextBusiness, ContextTechnical, ContextFormal:
		return true
	}
	return false
}

// RelationshipType is the kind of edge between two words.
type RelationshipType string

const (
	Synonym    RelationshipType = "synonym"
	Antonym    RelationshipType = "antonym"
	Derivative RelationshipType = "derivative"
	Compound   RelationshipType = "compound"
	Hypernym   RelationshipType = "hypernym"
	Hyponym    RelationshipType = "hyponym"
	Related    RelationshipType = "related"
)

// IsValid reports whether r belongs to the closed set.
func (r RelationshipType) IsValid() bool {
	switch r {
	case Synonym, Antonym, Derivative, Compound, Hypernym, Hyponym, Related:
		return true
	}
	return false
}

// CEFRLevel is a Common European Framework of Reference level.
type CEFRLevel string

const (
	A1 CEFRLevel = "A1"
	A2 CEFRLevel = "A2"
	B1 CEFRLevel = "B1"
	B2 CEFRLevel = "B2"
	C1 CEFRLevel = "C1"
	C2 CEFRLevel = "C2"
)

// IsValid reports whether l is between A1 and C2.
func (l CEFRLevel) IsValid() bool {
	switch l {
	case A1, A2, B1, B2, C1, C2:
		return true
	}
	return false
}

// CEFRForRank estimates a level from a frequency rank.
func CEFRForRank(rank int) CEFRLevel {
	switch {
	case rank <= 100:
		return A1
	case rank <= 1000:
		return A2
	case rank <= 5000:
		return B1
	case rank <= 10000:
		return B2
	case rank <= 25000:
		return C1
	default:
		return C2
	}
}

// FrequencyBand groups frequency ranks.
type FrequencyBand string

const (
	BandTop100   FrequencyBand = "top-100"
	BandTop1000  FrequencyBand = "top-1000"
	BandTop5000  FrequencyBand = "top-5000"
	BandTop10000 FrequencyBand = "top-10000"
	BandRare     FrequencyBand = "rare"
	BandVeryRare FrequencyBand = "very-rare"
)

// BandForRank returns the band a frequency rank falls in.
func BandForRank(rank int) FrequencyBand {
	switch {
	case rank <= 100:
		return BandTop100
	case rank <= 1000:
		return BandTop1000
	case rank <= 5000:
		return BandTop5000
	case rank <= 10000:
		return BandTop10000
	case rank <= 25000:
		return BandRare
	default:
		return BandVeryRare
	}
}
