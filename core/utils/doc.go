// Package utils provides loose type conversion helpers.
// They are used where values arrive untyped: query strings, decoded JSON
// maps from the generative source and dataset columns.
package utils
