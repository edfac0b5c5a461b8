// Package view implements the collection view core shared by every admin
// page: predicate filtering over a fetched base collection, in-place
// reconciliation after confirmed mutations, derived analytics, and the review
// auto-moderation rule.
package view

import "strings"

// Predicate reports whether an element belongs to the filtered view. A nil
// Predicate means the criterion is inactive and is skipped, so constructors
// return nil for empty/default inputs and the identity law holds for free.
type Predicate[T any] func(T) bool

// Filter returns the elements satisfying the conjunction of all active
// predicates, preserving relative order. It never mutates its input and is a
// pure function of (items, preds).
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	active := preds[:0:0]
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return append([]T(nil), items...)
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, p := range active {
			if !p(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// SearchPredicate matches when the term occurs, case-insensitively, in any of
// the element's searchable fields. An empty or blank term is inactive.
func SearchPredicate[T any](term string, fields func(T) []string) Predicate[T] {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	lower := strings.ToLower(term)
	return func(item T) bool {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), lower) {
				return true
			}
		}
		return false
	}
}

// EqualsPredicate matches on exact field equality. An empty want is inactive.
func EqualsPredicate[T any](want string, field func(T) string) Predicate[T] {
	if want == "" {
		return nil
	}
	return func(item T) bool {
		return field(item) == want
	}
}

// BoolPredicate matches a boolean field against "true"/"false" style filter
// values ("active"/"inactive" map the same way). Empty want is inactive.
func BoolPredicate[T any](want string, field func(T) bool) Predicate[T] {
	var expect bool
	switch want {
	case "":
		return nil
	case "true", "active", "yes":
		expect = true
	default:
		expect = false
	}
	return func(item T) bool {
		return field(item) == expect
	}
}
