// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation for mutating and operational routes.
//   - rayid: Generates a Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - cors: rs/cors policy bridged into Fiber through the adaptor package.
//   - ratelimit: per-IP request limits for word lookups.
//   - metrics: Prometheus collectors for requests, cache lookups, enrichment
//     sources and errors, served on /metrics.
package middleware
