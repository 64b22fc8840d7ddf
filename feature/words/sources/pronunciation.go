package sources

import (
	"context"
	"strings"

	"grimoire/feature/words/models"
)

var arpabetToIPA = map[string]string{
	"AA": "ɑ", "AE": "æ", "AH": "ə", "AO": "ɔ", "AW": "aʊ", "AY": "aɪ",
	"B": "b", "CH": "tʃ", "D": "d", "DH": "ð", "EH": "ɛ", "ER": "ɜr",
	"EY": "eɪ", "F": "f", "G": "ɡ", "HH": "h", "IH": "ɪ", "IY": "i",
	"JH": "dʒ", "K": "k", "L": "l", "M": "m", "N": "n", "NG": "ŋ",
	"OW": "oʊ", "OY": "ɔɪ", "P": "p", "R": "r", "S": "s", "SH": "ʃ",
	"T": "t", "TH": "θ", "UH": "ʊ", "UW": "u", "V": "v", "W": "w",
	"Y": "j", "Z": "z", "ZH": "ʒ",
}

// ToIPA converts ARPABET phones to a slash-wrapped IPA transcription.
// Stress digits 1 and 2 become ˈ and ˌ before the stressed vowel.
// Unknown phones are kept, lowercased.
func ToIPA(phones []string) string {
	var b strings.Builder
	b.WriteByte('/')
	for _, phone := range phones {
		clean := strings.TrimRight(phone, "012")
		switch {
		case strings.HasSuffix(phone, "1"):
			b.WriteString("ˈ")
		case strings.HasSuffix(phone, "2"):
			b.WriteString("ˌ")
		}
		if ipa, ok := arpabetToIPA[clean]; ok {
			b.WriteString(ipa)
		} else {
			b.WriteString(strings.ToLower(clean))
		}
	}
	b.WriteByte('/')
	return b.String()
}

// Pronunciation serves IPA transcriptions from a CMU-format dictionary.
type Pronunciation struct {
	phones map[string][]string
}

func NewPronunciation(phones map[string][]string) *Pronunciation {
	return &Pronunciation{phones: phones}
}

func (p *Pronunciation) Name() string { return NamePronunciation }

var pronunciationFields = fieldSet("phonetic", "phonetics")

func (p *Pronunciation) SupportsField(field string) bool { return supports(pronunciationFields, field) }

func (p *Pronunciation) Fetch(ctx context.Context, word string) (*Partial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	phones, ok := p.phones[word]
	if !ok {
		return &Partial{}, nil
	}
	return &Partial{Phonetic: &models.Phonetic{IPA: ToIPA(phones)}}, nil
}
