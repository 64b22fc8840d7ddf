package enrichment

import (
	"fmt"
	"strings"

	"grimoire/feature/words/models"
)

var irregularComparisons = map[string][2]string{
	"good":   {"better", "best"},
	"bad":    {"worse", "worst"},
	"little": {"less", "least"},
	"much":   {"more", "most"},
	"many":   {"more", "most"},
	"far":    {"farther", "farthest"},
}

func isVowel(b byte) bool { return strings.IndexByte("aeiou", b) >= 0 }

// RegularPast builds the regular past tense of a verb.
// Any vowel+consonant ending doubles the consonant (except w, x, y) and stress
// is not considered, so "visit" gives "visitted" and "visited" is flagged irregular.
func RegularPast(base string) string {
	n := len(base)
	switch {
	case n > 2 && base[n-1] == 'y' && !isVowel(base[n-2]):
		return base[:n-1] + "ied"
	case n >= 2 && !isVowel(base[n-1]) && isVowel(base[n-2]) && strings.IndexByte("wxy", base[n-1]) < 0:
		return base + base[n-1:] + "ed"
	case strings.HasSuffix(base, "e"):
		return base + "d"
	default:
		return base + "ed"
	}
}

// RegularComparative builds the regular comparative of an adjective.
func RegularComparative(base string) string {
	switch {
	case strings.HasSuffix(base, "y"):
		return base[:len(base)-1] + "ier"
	case strings.HasSuffix(base, "e"):
		return base + "r"
	default:
		return base + "er"
	}
}

// RegularPlural builds the regular plural of a noun.
func RegularPlural(singular string) string {
	n := len(singular)
	switch {
	case strings.HasSuffix(singular, "fe"):
		return singular[:n-2] + "ves"
	case strings.HasSuffix(singular, "f"):
		return singular[:n-1] + "ves"
	case n > 1 && singular[n-1] == 'y' && !isVowel(singular[n-2]):
		return singular[:n-1] + "ies"
	case strings.HasSuffix(singular, "s"), strings.HasSuffix(singular, "x"), strings.HasSuffix(singular, "z"),
		strings.HasSuffix(singular, "ch"), strings.HasSuffix(singular, "sh"):
		return singular + "es"
	default:
		return singular + "s"
	}
}

func irregularVerb(base, past, participle string) bool {
	if base == "" || past == "" {
		return false
	}
	if !strings.EqualFold(past, RegularPast(strings.ToLower(base))) {
		return true
	}
	return participle != "" && !strings.EqualFold(participle, past)
}

func irregularAdjective(word, comparative, superlative string) bool {
	comp, sup := strings.ToLower(comparative), strings.ToLower(superlative)
	if forms, ok := irregularComparisons[word]; ok && comp == forms[0] && sup == forms[1] {
		return true
	}
	return comp != RegularComparative(word) && !strings.HasPrefix(comp, "more")
}

// DetectIrregularities fills missing verb bases and flags irregular forms of
// word. Flags already raised by a source are kept along with their notes.
func DetectIrregularities(word string, g *models.GrammaticalInfo) {
	if g == nil {
		return
	}
	irr := g.Irregularities
	if irr == nil {
		irr = &models.Irregularities{}
	}

	if !g.VerbForms.Empty() || strings.EqualFold(g.PartOfSpeech, string(models.Verb)) {
		if g.VerbForms == nil {
			g.VerbForms = &models.VerbForms{}
		}
		v := g.VerbForms
		if v.Base == "" {
			v.Base = word
		}
		if !irr.Verb && irregularVerb(v.Base, v.PastSimple, v.PastParticiple) {
			irr.Verb = true
			irr.Notes = append(irr.Notes, fmt.Sprintf("Irregular verb: %s/%s/%s", v.Base, v.PastSimple, v.PastParticiple))
		}
	}

	if a := g.AdjectiveForms; a != nil && a.Comparative != "" && a.Superlative != "" {
		if !irr.Comparison && irregularAdjective(word, a.Comparative, a.Superlative) {
			irr.Comparison = true
			irr.Notes = append(irr.Notes, fmt.Sprintf("Irregular adjective: %s/%s/%s", word, a.Comparative, a.Superlative))
		}
	}

	if g.PartOfSpeech == string(models.Noun) && g.PluralForm != "" && !irr.Plural && !strings.EqualFold(g.PluralForm, RegularPlural(word)) {
		irr.Plural = true
		irr.Notes = append(irr.Notes, fmt.Sprintf("Irregular plural: %s → %s", word, g.PluralForm))
	}

	if irr.Any() || len(irr.Notes) > 0 {
		g.Irregularities = irr
	}
}
