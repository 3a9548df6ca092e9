package ranges

import "iter"

// Zip advances a and b in lockstep.
// Iteration ends as soon as either sequence is exhausted.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		next, stop := iter.Pull(b)
		defer stop()

		for va := range a {
			vb, ok := next()
			if !ok || !yield(va, vb) {
				return
			}
		}
	}
}

// ZipN advances every sequence in lockstep and yields one tuple per step,
// tuple[i] holding the current element of seqs[i]. Iteration ends as soon
// as any sequence is exhausted.
//
// The tuple slice is reused between steps; clone it to retain it.
func ZipN[V any](seqs ...iter.Seq[V]) iter.Seq[[]V] {
	return func(yield func([]V) bool) {
		if len(seqs) == 0 {
			return
		}

		nexts := make([]func() (V, bool), len(seqs))
		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[i] = next
		}

		tuple := make([]V, len(seqs))
		for {
			for i, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				tuple[i] = v
			}
			if !yield(tuple) {
				return
			}
		}
	}
}
