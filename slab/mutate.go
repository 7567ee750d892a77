package slab

import gc "github.com/TomTonic/gocontainers"

// InsertPos shifts buf[pos:len(buf)-1] one slot toward the end (evicting
// the final element) and writes data into position pos. buf's length does
// not change; pos must be in [0, len(buf)-1]. Callers that need to grow the
// live window first reslice to the new length (see darray, which always
// resizes its backing array before calling InsertPos on the grown window).
func InsertPos[T any](buf []T, pos int, data T) error {
	if pos < 0 || pos > len(buf)-1 {
		return gc.ErrBadArg
	}
	copy(buf[pos+1:], buf[pos:len(buf)-1])
	buf[pos] = data
	return nil
}

// DeletePos shifts buf[pos+1:] one slot toward the beginning. The final
// slot keeps its previous value; the caller is responsible for treating
// only buf[:len(buf)-1] as live afterward. If destroy is non-nil it is
// invoked on buf[pos] before the shift.
func DeletePos[T any](buf []T, pos int, destroy gc.DestroyFunc[T]) error {
	if pos < 0 || pos >= len(buf) {
		return gc.ErrBadArg
	}
	if destroy != nil {
		destroy(buf[pos])
	}
	copy(buf[pos:], buf[pos+1:])
	return nil
}

// SortedInsert inserts data into buf, which must already be length n+1 with
// its first n elements sorted non-decreasingly by cmp (the (n+1)th slot is
// the destination InsertPos will write into). It preserves stability
// against equal keys by inserting after existing equals (upper_bound
// semantics), matching spec.md's rationale for using upper_bound rather
// than lower_bound here.
func SortedInsert[T any](buf []T, cmp gc.CompareFunc[T], data T) error {
	if len(buf) == 0 {
		return gc.ErrBadArg
	}
	k := UpperBound(buf[:len(buf)-1], cmp, data)
	return InsertPos(buf, k, data)
}

const insertionSortCutover = 12

// Sort performs an in-place comparison sort of buf using cmp. It uses
// quicksort with a median-of-three pivot, falling back to insertion sort on
// small partitions; stability is not guaranteed, matching spec.md's
// explicit "stability not required" contract.
func Sort[T any](buf []T, cmp gc.CompareFunc[T]) {
	quicksort(buf, cmp)
}

func quicksort[T any](buf []T, cmp gc.CompareFunc[T]) {
	for len(buf) > 1 {
		if len(buf) <= insertionSortCutover {
			insertionSort(buf, cmp)
			return
		}
		p := partition(buf, cmp)
		// recurse into the smaller side, loop over the larger one to bound
		// stack depth to O(log n) even on adversarial input.
		if p < len(buf)-p-1 {
			quicksort(buf[:p], cmp)
			buf = buf[p+1:]
		} else {
			quicksort(buf[p+1:], cmp)
			buf = buf[:p]
		}
	}
}

func insertionSort[T any](buf []T, cmp gc.CompareFunc[T]) {
	for i := 1; i < len(buf); i++ {
		for j := i; j > 0 && cmp(buf[j-1], buf[j]) > 0; j-- {
			buf[j-1], buf[j] = buf[j], buf[j-1]
		}
	}
}

// partition picks a median-of-three pivot, moves it to the end, partitions
// around it Lomuto-style, and returns its final index.
func partition[T any](buf []T, cmp gc.CompareFunc[T]) int {
	lo, hi := 0, len(buf)-1
	mid := int(uint(lo+hi) >> 1)
	medianOfThree(buf, cmp, lo, mid, hi)
	buf[mid], buf[hi] = buf[hi], buf[mid]
	pivot := buf[hi]

	store := lo
	for i := lo; i < hi; i++ {
		if cmp(buf[i], pivot) < 0 {
			buf[i], buf[store] = buf[store], buf[i]
			store++
		}
	}
	buf[store], buf[hi] = buf[hi], buf[store]
	return store
}

func medianOfThree[T any](buf []T, cmp gc.CompareFunc[T], lo, mid, hi int) {
	if cmp(buf[mid], buf[lo]) < 0 {
		buf[mid], buf[lo] = buf[lo], buf[mid]
	}
	if cmp(buf[hi], buf[lo]) < 0 {
		buf[hi], buf[lo] = buf[lo], buf[hi]
	}
	if cmp(buf[hi], buf[mid]) < 0 {
		buf[hi], buf[mid] = buf[mid], buf[hi]
	}
}
