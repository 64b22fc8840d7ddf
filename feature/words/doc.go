// Package words serves English word lookups.
//
// A lookup checks the cache, then the database, then a short-lived record of
// failed lookups, and finally enriches the word from every data source,
// stores it and caches it. Concurrent first lookups of one word share a
// single enrichment. Words nobody can describe yield spelling suggestions.
package words
