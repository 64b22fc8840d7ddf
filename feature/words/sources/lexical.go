package sources

import (
	"context"
	"fmt"

	"grimoire/feature/words/models"
)

// relationsPerKind caps how many entries of one relation kind are returned.
const relationsPerKind = 10

// Lexical serves synonyms, antonyms and taxonomy relations from a relations dataset.
type Lexical struct {
	relations map[string]Relations
}

func NewLexical(relations map[string]Relations) *Lexical {
	return &Lexical{relations: relations}
}

func (l *Lexical) Name() string { return NameLexical }

var lexicalFields = fieldSet("related_words", "synonyms", "antonyms", "derivatives", "hypernyms", "hyponyms")

func (l *Lexical) SupportsField(field string) bool { return supports(lexicalFields, field) }

// Fetch returns relations ordered synonyms, antonyms, derivatives, hypernyms,
// hyponyms, then see-also concepts.
func (l *Lexical) Fetch(ctx context.Context, word string) (*Partial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel, ok := l.relations[word]
	if !ok {
		return &Partial{}, nil
	}

	p := &Partial{}
	add := func(targets []string, kind models.RelationshipType, note string) {
		n := 0
		for _, t := range targets {
			if n == relationsPerKind {
				break
			}
			if t == word {
				continue
			}
			in := RelatedInput{Word: t, Relationship: kind}
			if note != "" {
				in.UsageNotes = fmt.Sprintf(note, word)
			}
			p.Related = append(p.Related, in)
			n++
		}
	}

	add(rel.Synonyms, models.Synonym, "")
	add(rel.Antonyms, models.Antonym, "")
	add(rel.Derivatives, models.Derivative, "Derived from the same root as %s")
	add(rel.Hypernyms, models.Hypernym, "A more general term for %s")
	add(rel.Hyponyms, models.Hyponym, "A more specific type of %s")
	add(rel.AlsoSee, models.Related, "Related concept to %s")

	return p, nil
}
