package enrichment

import (
	"strings"

	"grimoire/feature/words/models"
	"grimoire/feature/words/sources"
)

// Example length bounds, in characters.
const (
	minExampleLength = 5
	maxExampleLength = 300
)

var contextKeywords = []struct {
	context  models.ContextType
	keywords []string
}{
	{models.ContextAcademic, []string{
		"research", "study", "theory", "hypothesis", "analysis", "experiment", "data", "scholar",
		"academic", "university", "thesis", "dissertation", "journal", "findings", "conclude",
	}},
	{models.ContextBusiness, []string{
		"company", "business", "client", "customer", "market", "sales", "profit", "revenue",
		"meeting", "project", "deadline", "manager", "employee", "corporate", "office",
	}},
	{models.ContextTechnical, []string{
		"system", "software", "hardware", "code", "algorithm", "function", "parameter", "database",
		"network", "protocol", "interface", "configuration", "implementation",
	}},
	{models.ContextFormal, []string{
		"hereby", "therefore", "furthermore", "moreover", "shall", "cordially", "respectfully",
		"kindly", "sincerely", "distinguished", "honorable",
	}},
}

// Classify labels an example by keyword hits. A hit is a distinct keyword
// found as a substring of the lowercased text, so "data" also matches
// "database" and a repeated keyword counts once.
// No hits yields casual; a tie for the highest count also yields casual.
func Classify(text string) models.ContextType {
	lower := strings.ToLower(text)

	best, bestHits, tied := models.ContextCasual, 0, false
	for _, set := range contextKeywords {
		hits := 0
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		switch {
		case hits > bestHits:
			best, bestHits, tied = set.context, hits, false
		case hits == bestHits && hits > 0:
			tied = true
		}
	}

	if bestHits == 0 || tied {
		return models.ContextCasual
	}
	return best
}

// Accept reports whether an example is good enough to show a learner.
func Accept(text, word string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	n := len([]rune(text))
	if n < minExampleLength || n > maxExampleLength {
		return false
	}
	if !strings.Contains(strings.ToLower(text), strings.ToLower(word)) {
		return false
	}
	return strings.Contains(text, " ")
}

// processExamples drops rejected examples and labels the rest, keeping a
// supplied context only when it is a known label.
func processExamples(inputs []sources.ExampleInput, word string) []models.UsageExample {
	out := make([]models.UsageExample, 0, len(inputs))
	for _, in := range inputs {
		text := strings.TrimSpace(in.Text)
		if !Accept(text, word) {
			continue
		}
		ctx := models.ContextType(strings.ToLower(strings.TrimSpace(in.ContextType)))
		if !ctx.IsValid() {
			ctx = Classify(text)
		}
		out = append(out, models.UsageExample{ExampleText: text, ContextType: ctx})
	}
	return out
}
