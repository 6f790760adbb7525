// Package collection provides predicate based selection over slices.
// None of the helpers mutate their input.
package collection

// Filter returns the elements of items for which predicate returns true, in their
// original order. An empty items is returned as-is without allocating.
func Filter[E any](items []E, predicate func(E) bool) []E {
	if len(items) == 0 {
		return items
	}
	filtered := make([]E, 0, len(items))
	for _, item := range items {
		if predicate(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// First returns the first element satisfying selector. The boolean is false when
// nothing matched.
func First[E any](items []E, selector func(E) bool) (E, bool) {
	var zero E
	if len(items) == 0 {
		return zero, false
	}
	for _, item := range items {
		if selector(item) {
			return item, true
		}
	}
	return zero, false
}

// Contains reports whether any element satisfies selector.
func Contains[E any](items []E, selector func(E) bool) bool {
	_, found := First(items, selector)
	return found
}
