package sources

import "fmt"

// BuildPrompt renders the learner-dictionary request for word.
func BuildPrompt(word string) string {
	return fmt.Sprintf(`You are an English teacher writing dictionary entries for learners of English as a foreign language.

Describe the word: %q

Answer with JSON only, no prose and no code fences, using exactly this structure:

{
  "phonetic": {"ipa_transcription": "/IPA/", "audio_url": null},
  "definitions": [
    {
      "definition_text": "plain definition for learners, 10-500 characters",
      "part_of_speech": "noun|verb|adjective|adverb|pronoun|preposition|conjunction|interjection|determiner|modal",
      "usage_context": "informal, technical, formal or null",
      "examples": [
        {"example_text": "a natural sentence containing the word", "context_type": "casual|academic|business|technical|formal"}
      ]
    }
  ],
  "grammatical_info": {
    "part_of_speech": "primary part of speech",
    "plural_form": null,
    "verb_base": null,
    "verb_past_simple": null,
    "verb_past_participle": null,
    "verb_present_participle": null,
    "verb_third_person": null,
    "adj_comparative": null,
    "adj_superlative": null,
    "irregular_forms_json": {}
  },
  "related_words": [
    {"word": "related word", "relationship_type": "synonym|antonym|derivative|compound|hypernym|hyponym|related", "usage_notes": "when to prefer one word over the other"}
  ],
  "learning_metadata": {"cefr_level": "A1|A2|B1|B2|C1|C2", "style_tags": ["neutral"]}
}

Rules:
1. Order definitions from most to least common. Give several when the word has several common meanings.
2. Give 3 to 5 examples per definition, 5-300 characters each, every one a complete sentence containing the word, spread over different context types.
3. Fill every grammatical form relevant to the part of speech: plural for countable nouns, all five verb forms for verbs, comparative and superlative for gradable adjectives.
4. Flag irregular forms in irregular_forms_json, for example {"irregular_verb": true, "note": "go/went/gone"}, {"irregular_plural": true}, {"irregular_comparison": true}.
5. Give 3 to 5 related words with usage notes explaining the difference in meaning or register.
6. Use null for anything that does not apply.`, word)
}
