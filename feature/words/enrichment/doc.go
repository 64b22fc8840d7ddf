// Package enrichment merges partial answers from every data source into a
// validated word record.
//
// The generative source is authoritative: its failure fails the enrichment.
// The other sources fill gaps and their failures are only logged.
package enrichment
