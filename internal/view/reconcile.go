package view

// PatchByID replaces the single element whose id matches with apply(element),
// returning the patched collection and whether a match was found. Matching is
// by identifier, never by position, so patches stay correct when a refetch
// completed out of order. A miss returns the input unchanged; callers treat
// that as a logged local-state inconsistency, not a failure.
func PatchByID[T any](items []T, id string, idOf func(T) string, apply func(T) T) ([]T, bool) {
	for i, item := range items {
		if idOf(item) != id {
			continue
		}
		out := append([]T(nil), items...)
		out[i] = apply(item)
		return out, true
	}
	return items, false
}

// RemoveByID drops the single element whose id matches, preserving order.
func RemoveByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	for i, item := range items {
		if idOf(item) != id {
			continue
		}
		out := make([]T, 0, len(items)-1)
		out = append(out, items[:i]...)
		out = append(out, items[i+1:]...)
		return out, true
	}
	return items, false
}

// Prepend inserts a newly created element at the head of the collection,
// matching the created-at-descending ordering of fetches.
func Prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}
