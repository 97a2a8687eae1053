package mergesort

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Sort returns a new slice holding the elements of s in ascending order.
// s itself is left untouched.
func Sort[T constraints.Ordered](s []T, opts ...Option) []T {
	return SortFunc(s, cmp.Compare[T], opts...)
}

// SortFunc returns a new slice holding the elements of s ordered by cmp, which
// must return a negative number when a < b, zero when a == b and a positive
// number when a > b. When cmp reports a tie the element from the left half of
// a merge is emitted first. s itself is left untouched.
func SortFunc[T any](s []T, cmp func(a, b T) int, opts ...Option) []T {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	size := len(s)
	st := &sorter[T]{
		cur:     append(make([]T, 0, size), s...),
		scratch: make([]T, size),
		cmp:     cmp,
	}

	number := 0
	// The condition is checked against 2p before the increment, so the
	// partition sizes run 1, 3, 7, 15, ... and the loop body always executes
	// at least once.
	for p := 0; p <= size; p *= 2 {
		p++
		number++
		pass := st.pass(p, size)
		pass.Number = number
		if o.observer != nil {
			o.observer(pass)
		}
	}

	return st.cur
}

// sorter owns the two working buffers. cur holds the runs produced by the
// previous pass and scratch receives the merges of the current one; they
// swap roles at the end of every pass.
type sorter[T any] struct {
	cur         []T
	scratch     []T
	cmp         func(a, b T) int
	comparisons int
}

func (s *sorter[T]) pass(p, size int) Pass {
	s.comparisons = 0
	windows := 0

	first := 0
	for first <= size {
		last := min(first+p, size-1)
		mid := (first + last) / 2
		s.merge(first, mid, last)
		windows++
		first += p + 1
	}
	s.cur, s.scratch = s.scratch, s.cur

	corrective := false
	if first != size {
		corrective = s.correct(first, p, size)
	}

	return Pass{
		PartitionSize: p,
		Windows:       windows,
		Corrective:    corrective,
		Comparisons:   s.comparisons,
	}
}

// correct re-merges the last complete window with everything after it.
// first is the window start the pass loop stopped at. It reports false when
// fewer than two windows exist and there is nothing to fold.
func (s *sorter[T]) correct(first, p, size int) bool {
	// End of the last complete partition.
	mid := first - p - 2
	// Start of the last complete partition.
	first -= 2*p + 2
	if first < 0 {
		return false
	}
	last := size - 1

	s.merge(first, mid, last)
	copy(s.cur[first:last+1], s.scratch[first:last+1])
	return true
}

// merge combines cur[first:mid+1] and cur[mid+1:last+1] into
// scratch[first:last+1]. Ties go to the left half.
func (s *sorter[T]) merge(first, mid, last int) {
	src, dst := s.cur, s.scratch
	left, right := first, mid+1

	for i := first; i <= last; i++ {
		switch {
		case left > mid:
			dst[i] = src[right]
			right++
		case right > last:
			dst[i] = src[left]
			left++
		case s.compare(src[left], src[right]) <= 0:
			dst[i] = src[left]
			left++
		default:
			dst[i] = src[right]
			right++
		}
	}
}

func (s *sorter[T]) compare(a, b T) int {
	s.comparisons++
	return s.cmp(a, b)
}
