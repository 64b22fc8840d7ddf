// Package models defines the word record and its persistence rows.
//
// WordRecord is the merged view served by the API and stored in the cache.
// The *Row types map the relational tables; NewWordRow and WordRow.ToRecord
// convert between the two. Closed vocabularies (parts of speech, example
// contexts, relationship kinds, CEFR levels, frequency bands) are typed
// string enums with IsValid helpers.
package models
