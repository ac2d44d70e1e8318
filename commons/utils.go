package commons

import (
	"slices"

	"github.com/google/uuid"
)

// NewId builds a new unique id.
// Two different calls should return two different values.
func NewId() string {
	return uuid.NewString()
}

// SliceDeduplicate returns the slice content with one value only from original slice
func SliceDeduplicate[T comparable](original []T) []T {
	var result []T
	seen := make(map[T]bool)
	for _, v := range original {
		seen[v] = true
	}

	for k := range seen {
		result = append(result, k)
	}

	return result
}

// SliceDeduplicateFunc returns a slice containing the same elements, just once
func SliceDeduplicateFunc[T any](original []T, equals func(a, b T) bool) []T {
	var result []T
	for _, source := range original {
		if !slices.ContainsFunc(result, func(value T) bool { return equals(source, value) }) {
			result = append(result, source)
		}
	}

	return result
}
