package arraylist

import (
	"fmt"
	"strings"
)

// ArrayList is a growable, index-addressable sequence backed by a contiguous slice.
// Capacity doubles when the list is full and never shrinks.
// The zero value is an empty list ready to use.
// It is NOT thread-safe.
type ArrayList[T any] struct {
	data []T // backing storage, len(data) is the capacity
	size int // number of live elements in data[:size]
}

// New creates an empty list with the default capacity.
func New[T any]() *ArrayList[T] {
	return &ArrayList[T]{
		data: make([]T, defaultCapacity),
	}
}

// NewWithCapacity creates an empty list able to hold capacity elements before growing.
func NewWithCapacity[T any](capacity int) (*ArrayList[T], error) {
	if capacity <= 0 {
		return nil, invalidCapacity(capacity)
	}
	return &ArrayList[T]{
		data: make([]T, capacity),
	}, nil
}

// Size returns the number of elements in the list.
func (l *ArrayList[T]) Size() int {
	return l.size
}

// Cap returns the length of the backing storage.
func (l *ArrayList[T]) Cap() int {
	return len(l.data)
}

// IsEmpty reports whether the list holds no elements.
func (l *ArrayList[T]) IsEmpty() bool {
	return l.size == 0
}

// Append adds e at the end of the list.
func (l *ArrayList[T]) Append(e T) {
	l.grow()
	l.data[l.size] = e
	l.size++
}

// InsertAt places e at index, shifting the elements at [index, size) one slot right.
// index == Size() appends.
func (l *ArrayList[T]) InsertAt(index int, e T) error {
	if index < 0 || index > l.size {
		return outOfBounds(index, l.size)
	}
	l.grow()
	copy(l.data[index+1:l.size+1], l.data[index:l.size])
	l.data[index] = e
	l.size++
	return nil
}

// Get returns the element at index.
func (l *ArrayList[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.data[index], nil
}

// RemoveAt removes and returns the element at index, closing the gap.
func (l *ArrayList[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := l.checkIndex(index); err != nil {
		return zero, err
	}

	removed := l.data[index]
	copy(l.data[index:l.size-1], l.data[index+1:l.size])
	l.size--
	// Release the reference held by the vacated slot.
	l.data[l.size] = zero
	return removed, nil
}

// String renders the list as "[e0, e1, ...]".
func (l *ArrayList[T]) String() string {
	if l.size == 0 {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < l.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, l.data[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

// grow ensures there is room for one more element.
func (l *ArrayList[T]) grow() {
	if l.size < len(l.data) {
		return
	}
	// Zero-value list: allocate lazily.
	if len(l.data) == 0 {
		l.data = make([]T, defaultCapacity)
		return
	}

	newData := make([]T, len(l.data)*growthFactor)
	copy(newData, l.data[:l.size])
	l.data = newData
}

func (l *ArrayList[T]) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return outOfBounds(index, l.size)
	}
	return nil
}
