// Package pagination slices ordered result sets into fixed-size, 1-indexed pages.
package pagination

// Page returns the given 1-indexed page of items. Pages are half-open slices of
// size at most pageSize; a page starting at or beyond the end of items is empty,
// never an error. Callers decide whether an empty page is a failure condition.
func Page[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
