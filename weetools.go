// Package weetools provides small convenience helpers layered on top of
// net/http and GORM: a JSONB containment query builder, schema and router
// shortcuts, response writers, and a generic CRUD repository.
package weetools

import "errors"

var (
	// ErrInvalidArgument reports a bad caller-supplied value (nil query,
	// malformed column identifier, unknown clause mode).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports a missing record in repository lookups.
	ErrNotFound = errors.New("record not found")
)
