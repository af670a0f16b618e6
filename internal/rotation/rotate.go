// Package rotation cycles through an ordered list using an integer cursor.
// It holds no state: callers persist the cursor between calls.
package rotation

// Rotate selects the element at index and returns it with the cursor for the
// following call. An empty list yields the zero value, a next cursor of 0 and
// ok=false.
//
// The index is reduced modulo len(items) into [0, len(items)), so negative
// indices count back from the end: -1 selects the last element. Out-of-range
// cursors left behind after the list shrinks wrap the same way.
func Rotate[T any](items []T, index int) (selected T, next int, ok bool) {
	n := len(items)
	if n == 0 {
		return selected, 0, false
	}

	i := index % n
	if i < 0 {
		i += n
	}

	return items[i], (i + 1) % n, true
}
