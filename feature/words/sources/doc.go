// Package sources provides the data providers consulted during enrichment.
//
// The generative source is authoritative: it supplies definitions, examples,
// grammar and annotated relations through a language model. The lexical,
// pronunciation, difficulty and frequency sources are best-effort lookups over
// reference datasets kept in object storage, with embedded defaults used when
// the bucket does not provide them.
package sources
