// Package ranges provides lazy, composable views over existing sequences.
//
// Every view wraps an iter.Seq (or a slice) without copying elements. When
// the elements are themselves slices, the yielded values alias the original
// storage, so writes through them are visible in the underlying container:
//
//	layers := [][]float64{{1, 2}, {3}, {4, 5}}
//	for l := range ranges.Drop(1, slices.Values(layers)) {
//	    l[0] = 0 // mutates layers[1] and layers[2]
//	}
//
// Views are restartable whenever their source is: ranging over the same
// view twice walks the source twice.
package ranges

import "iter"

// Op transforms a sequence into another sequence of the same element type.
type Op[V any] func(iter.Seq[V]) iter.Seq[V]

// Pipe applies ops to seq in argument order.
//
// Pipe(ranges.Reverse(s), ranges.Dropping[int](1)) reverses first, then
// drops the first element of the reversed sequence.
func Pipe[V any](seq iter.Seq[V], ops ...Op[V]) iter.Seq[V] {
	for _, op := range ops {
		seq = op(seq)
	}
	return seq
}

// Reverse yields the elements of s back to front.
func Reverse[S ~[]E, E any](s S) iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Drop yields the elements of seq after skipping the first n.
// Dropping more elements than seq holds yields nothing.
func Drop[V any](n int, seq iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Dropping returns Drop(n, ·) as an Op for use with Pipe.
func Dropping[V any](n int) Op[V] {
	return func(seq iter.Seq[V]) iter.Seq[V] {
		return Drop(n, seq)
	}
}

// Iota yields 0, 1, ..., n-1.
func Iota(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Enumerate pairs each element of seq with its 0-based position.
func Enumerate[V any](seq iter.Seq[V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Map applies f to each element of seq as it is consumed.
// Nothing is evaluated until the result is ranged over.
func Map[V, W any](seq iter.Seq[V], f func(V) W) iter.Seq[W] {
	return func(yield func(W) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Mapping is the curried form of Map.
func Mapping[V, W any](f func(V) W) func(iter.Seq[V]) iter.Seq[W] {
	return func(seq iter.Seq[V]) iter.Seq[W] {
		return Map(seq, f)
	}
}
