package weetools

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// ClauseMode selects how a new predicate relates to the ones already
// attached to the accumulating query.
type ClauseMode string

const (
	ClauseAnd ClauseMode = "and"
	ClauseOr  ClauseMode = "or"
)

// Filter is one key/value containment term for a JSONB column.
// Key may be any value with a sensible string form; see keyString.
type Filter struct {
	Key   any
	Value any
}

// F is shorthand for building a Filter.
func F(key, value any) Filter {
	return Filter{Key: key, Value: value}
}

// BuildJSONBQuery appends one JSONB containment predicate per filter term
// to q, in input order, and returns the augmented query. Each predicate
// tests `"column"::jsonb @> '{key: value}'`. The mode argument is optional
// and defaults to ClauseAnd.
//
// With ClauseOr every predicate is OR'd against the accumulating query, not
// collected into a flat "any of N" group: three terms render as
// ((base OR p1) OR p2) OR p3. Callers relying on the generated SQL shape
// depend on this left fold.
//
// The input query is never mutated; with no filters it is returned as is.
func BuildJSONBQuery(q *gorm.DB, column string, filters []Filter, mode ...ClauseMode) (*gorm.DB, error) {
	if q == nil {
		return nil, fmt.Errorf("%w: query is nil", ErrInvalidArgument)
	}
	if !sanitizeIdent(column) {
		return nil, fmt.Errorf("%w: invalid column %q", ErrInvalidArgument, column)
	}
	m := ClauseAnd
	if len(mode) > 0 {
		m = mode[0]
		if m != ClauseAnd && m != ClauseOr {
			return nil, fmt.Errorf("%w: unknown clause mode %q", ErrInvalidArgument, string(m))
		}
	}
	if len(filters) == 0 {
		return q, nil
	}

	cond := quoteIdent(column) + "::jsonb @> ?"
	acc := q.Session(&gorm.Session{})
	for _, f := range filters {
		payload, err := json.Marshal(map[string]any{keyString(f.Key): f.Value})
		if err != nil {
			return nil, err
		}
		if m == ClauseOr {
			acc = acc.Or(cond, string(payload))
		} else {
			acc = acc.Where(cond, string(payload))
		}
	}
	return acc, nil
}

// keyString normalizes a filter key to its canonical string form so that a
// string key and any other spelling with the same text produce identical
// predicates.
func keyString(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case fmt.Stringer:
		return k.String()
	default:
		return fmt.Sprintf("%v", key)
	}
}
