package spelling

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

// Distance returns the Levenshtein edit distance between a and b, in runes.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Suggestion is a dictionary word close to the input.
type Suggestion struct {
	Word     string
	Distance int
}

// Dictionary is the set of known words used for spelling suggestions.
// It is safe for concurrent use.
type Dictionary struct {
	mu    sync.RWMutex
	words map[string]struct{}
}

func New(words []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.add(w)
	}
	return d
}

// Add inserts a word, typically after a successful enrichment.
func (d *Dictionary) Add(word string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.add(word)
}

func (d *Dictionary) add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word != "" {
		d.words[word] = struct{}{}
	}
}

func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}

// Suggest returns up to limit words within maxDistance edits of word,
// nearest first and alphabetical among equals. The word itself is excluded.
func (d *Dictionary) Suggest(word string, maxDistance, limit int) []string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || limit <= 0 {
		return []string{}
	}

	d.mu.RLock()
	var found []Suggestion
	for candidate := range d.words {
		if abs(len(candidate)-len(word)) > maxDistance {
			continue
		}
		dist := Distance(word, candidate)
		if dist > 0 && dist <= maxDistance {
			found = append(found, Suggestion{Word: candidate, Distance: dist})
		}
	}
	d.mu.RUnlock()

	sort.Slice(found, func(i, j int) bool {
		if found[i].Distance != found[j].Distance {
			return found[i].Distance < found[j].Distance
		}
		return found[i].Word < found[j].Word
	})

	out := make([]string, 0, min(limit, len(found)))
	for i := 0; i < len(found) && i < limit; i++ {
		out = append(out, found[i].Word)
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
