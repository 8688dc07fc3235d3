package arraylist

import "cmp"

// Quicksort sorts the list in place in ascending natural order.
// It uses the last element of each range as the pivot, so already-sorted input is O(n^2).
// The sort is not stable: elements equal to the pivot are moved to its left.
func Quicksort[T cmp.Ordered](l *ArrayList[T]) {
	quicksort(l.data[:l.size], 0, l.size-1)
}

// quicksort recurses into the smaller side and loops over the larger one,
// which bounds the stack depth to O(log n).
func quicksort[T cmp.Ordered](data []T, low, high int) {
	for low < high {
		p := partition(data, low, high)
		if p-low < high-p {
			quicksort(data, low, p-1)
			low = p + 1
		} else {
			quicksort(data, p+1, high)
			high = p - 1
		}
	}
}

// partition moves every element <= data[high] before it and returns the pivot's final index.
func partition[T cmp.Ordered](data []T, low, high int) int {
	pivot := data[high]
	i := low - 1
	for j := low; j < high; j++ {
		if cmp.Compare(data[j], pivot) <= 0 {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}
	data[i+1], data[high] = data[high], data[i+1]
	return i + 1
}
