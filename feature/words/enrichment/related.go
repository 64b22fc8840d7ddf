package enrichment

import (
	"math"
	"sort"
	"strings"

	"grimoire/feature/words/models"
	"grimoire/feature/words/sources"
)

var baseStrength = map[models.RelationshipType]float64{
	models.Synonym:    0.9,
	models.Antonym:    0.8,
	models.Derivative: 0.7,
	models.Hypernym:   0.6,
	models.Hyponym:    0.6,
	models.Related:    0.5,
}

const defaultStrength = 0.5

// Strength scores a relation in [0, 1], rounded to two decimals.
func Strength(rel models.RelationshipType, hasNotes, generative bool) float64 {
	s, ok := baseStrength[rel]
	if !ok {
		s = defaultStrength
	}
	if hasNotes {
		s += 0.1
	}
	if generative {
		s += 0.05
	}
	s = math.Min(s, 1.0)
	return math.Round(s*100) / 100
}

type relationKey struct {
	word string
	rel  models.RelationshipType
}

// mergeRelated combines generative and lexical relations. The first entry for
// a (word, relationship) pair wins, so generative entries shadow lexical ones.
func mergeRelated(word string, generative, lexical []sources.RelatedInput, limit int) []models.RelatedWord {
	seen := make(map[relationKey]struct{})
	out := make([]models.RelatedWord, 0, len(generative)+len(lexical))

	add := func(inputs []sources.RelatedInput, fromGenerative bool) {
		for _, in := range inputs {
			target := strings.ToLower(strings.TrimSpace(in.Word))
			if target == "" || target == word {
				continue
			}
			key := relationKey{word: target, rel: in.Relationship}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, models.RelatedWord{
				Word:         target,
				Relationship: in.Relationship,
				UsageNotes:   in.UsageNotes,
				Strength:     Strength(in.Relationship, in.UsageNotes != "", fromGenerative),
			})
		}
	}
	add(generative, true)
	add(lexical, false)

	sort.SliceStable(out, func(i, j int) bool { return out[i].Strength > out[j].Strength })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
