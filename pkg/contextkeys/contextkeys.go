// Package contextkeys holds the typed keys for values that travel in a
// request context across package boundaries.
package contextkeys

type contextKey string

const RequestID contextKey = "request_id"
