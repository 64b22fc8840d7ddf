// Package health exposes GET /health, reporting whether the database and
// the cache respond.
package health
