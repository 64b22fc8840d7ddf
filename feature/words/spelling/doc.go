// Package spelling suggests known words close to a misspelled input,
// ranked by Levenshtein edit distance.
package spelling
