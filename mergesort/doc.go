// Package mergesort implements a non-recursive (bottom-up) merge sort over
// slices of ordered values.
//
// Instead of splitting the input recursively, the sorter merges neighbouring
// runs in passes. The partition size of each pass follows the recurrence
// p = 2p + 1, giving partition sizes of 1, 3, 7, 15 and so on. A pass with
// partition size p walks the slice in windows of p+1 elements, treating each
// window as two sorted halves produced by the previous pass and merging them.
//
// When the slice length is not a multiple of the window size, the final
// window is short and its halves do not line up with the runs of the previous
// pass. Every pass therefore ends with a single corrective merge that folds
// the trailing remainder into the last complete window.
//
// Key features:
//   - Generic implementation for any ordered type or any comparison function
//   - Functional semantics: the input slice is never modified
//   - Ties are resolved in favour of the left half of every merge
//   - Two working buffers alternate between passes; no per-pass allocation
//   - Per-pass statistics through an optional observer
//
// Basic usage:
//
//	sorted := mergesort.Sort([]int{5, 3, 8, 1})
//	fmt.Println(sorted) // [1 3 5 8]
//
//	// Sort by a custom comparison and watch the passes.
//	byLen := func(a, b string) int { return len(a) - len(b) }
//	words := mergesort.SortFunc([]string{"ccc", "a", "bb"}, byLen,
//	    mergesort.WithObserver(func(p mergesort.Pass) {
//	        fmt.Println(p.Number, p.PartitionSize, p.Comparisons)
//	    }),
//	)
//
// The sort is purely sequential. Every window of a pass reads runs produced by
// the previous pass, so passes are separated by a full barrier.
package mergesort
