// Package integrity validates the infrastructure the word service relies on.
//
// # Checks Provided
//
//   - Datasets: Checks that the reference datasets used by the best-effort
//     sources exist in the storage bucket. Missing ones can be restored from
//     the built-in copies.
//   - Schema: Validates that the connected database schema matches the word
//     models (tables, columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/datasets : Runs the dataset check.
//   - POST /integrity/datasets/fix : Uploads missing datasets.
//   - GET /integrity/schema : Runs the schema check.
package integrity
