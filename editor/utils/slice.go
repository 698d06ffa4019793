package utils

// InsertAt inserts item before index i. i == len(items) appends.
func InsertAt[T any](items []T, i int, item T) []T {
	var zero T
	items = append(items, zero)
	copy(items[i+1:], items[i:])
	items[i] = item
	return items
}

// RemoveAt removes and returns the item at index i.
func RemoveAt[T any](items []T, i int) ([]T, T) {
	removed := items[i]
	copy(items[i:], items[i+1:])
	var zero T
	items[len(items)-1] = zero
	return items[:len(items)-1], removed
}
