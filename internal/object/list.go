package object

import "slices"

// Remove deletes the first occurrence of item from *items, keeping order.
// Returns false if item is not present.
func Remove[T comparable](items *[]T, item T) bool {
	i := slices.Index(*items, item)
	if i < 0 {
		return false
	}
	*items = slices.Delete(*items, i, i+1)
	return true
}
