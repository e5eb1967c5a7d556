package medline

import "slices"

// List is an ordered sequence of repeated child elements. Document order is
// preserved by decoding and encoding; the accessors below bounds-check every index.
type List[T any] []T

// Len returns the number of elements.
func (l List[T]) Len() int { return len(l) }

// At returns the element at position i.
func (l List[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l) {
		var zero T
		return zero, &IndexOutOfRangeError{Index: i, Len: len(l)}
	}
	return l[i], nil
}

// Set replaces the element at position i.
func (l *List[T]) Set(i int, v T) error {
	if i < 0 || i >= len(*l) {
		return &IndexOutOfRangeError{Index: i, Len: len(*l)}
	}
	(*l)[i] = v
	return nil
}

// Insert places v at position i and shifts the following elements.
// i == Len() appends.
func (l *List[T]) Insert(i int, v T) error {
	if i < 0 || i > len(*l) {
		return &IndexOutOfRangeError{Index: i, Len: len(*l)}
	}
	*l = slices.Insert(*l, i, v)
	return nil
}

// Append adds elements at the end.
func (l *List[T]) Append(v ...T) {
	*l = append(*l, v...)
}

// Remove deletes the element at position i and shifts the following elements.
func (l *List[T]) Remove(i int) error {
	if i < 0 || i >= len(*l) {
		return &IndexOutOfRangeError{Index: i, Len: len(*l)}
	}
	*l = slices.Delete(*l, i, i+1)
	return nil
}
