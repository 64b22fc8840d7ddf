// Package server holds the HTTP server configuration.
//
// While cmd/start.go handles the server startup, this package defines the
// settings the HTTP surface is built from: listen port, API key, lookup rate
// limits and allowed CORS origins.
package server
