package ranges

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSeq yields 0..n-1 and records how many elements were produced.
func countingSeq(n int, produced *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			*produced++
			if !yield(i) {
				return
			}
		}
	}
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(Reverse([]int{1, 2, 3})))
	assert.Empty(t, slices.Collect(Reverse([]int{})))
}

func TestDrop(t *testing.T) {
	s := []int{10, 20, 30, 40}

	assert.Equal(t, []int{30, 40}, slices.Collect(Drop(2, slices.Values(s))))
	assert.Equal(t, s, slices.Collect(Drop(0, slices.Values(s))))
	assert.Empty(t, slices.Collect(Drop(4, slices.Values(s))))
	assert.Empty(t, slices.Collect(Drop(10, slices.Values(s))))
}

func TestIota(t *testing.T) {
	seq := Iota(4)

	// Restartable: a second walk starts from zero again.
	assert.Equal(t, []int{0, 1, 2, 3}, slices.Collect(seq))
	assert.Equal(t, []int{0, 1, 2, 3}, slices.Collect(seq))
	assert.Empty(t, slices.Collect(Iota(0)))
}

func TestEnumerate(t *testing.T) {
	var idx []int
	var vals []string
	for i, v := range Enumerate(slices.Values([]string{"a", "b", "c"})) {
		idx = append(idx, i)
		vals = append(vals, v)
	}

	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, vals)
}

func TestMap_Lazy(t *testing.T) {
	calls := 0
	doubled := Map(slices.Values([]int{1, 2, 3}), func(v int) int {
		calls++
		return v * 2
	})
	assert.Zero(t, calls, "Map must not evaluate eagerly")

	for v := range doubled {
		if v == 4 {
			break
		}
	}
	assert.Equal(t, 2, calls)

	assert.Equal(t, []int{2, 4, 6}, slices.Collect(doubled))
}

func TestMapping(t *testing.T) {
	toLen := Mapping(func(s string) int { return len(s) })
	assert.Equal(t, []int{1, 3}, slices.Collect(toLen(slices.Values([]string{"a", "abc"}))))
}

func TestPipe_Order(t *testing.T) {
	s := []int{1, 2, 3, 4}

	// reverse first, then drop the first element of the reversed sequence
	got := slices.Collect(Pipe(Reverse(s), Dropping[int](1)))
	assert.Equal(t, []int{3, 2, 1}, got)

	assert.Equal(t, s, slices.Collect(Pipe(slices.Values(s))))
}

func TestZip_StopsAtShortest(t *testing.T) {
	var as []int
	var bs []string
	for a, b := range Zip(Iota(5), slices.Values([]string{"x", "y"})) {
		as = append(as, a)
		bs = append(bs, b)
	}
	assert.Equal(t, []int{0, 1}, as)
	assert.Equal(t, []string{"x", "y"}, bs)

	as = as[:0]
	for a := range Zip(Iota(2), Iota(100)) {
		as = append(as, a)
	}
	assert.Equal(t, []int{0, 1}, as)
}

func TestZip_EqualElementsDoNotTerminate(t *testing.T) {
	// Identical positions in every sequence must not end iteration early.
	n := 0
	for a, b := range Zip(Iota(3), Iota(3)) {
		assert.Equal(t, a, b)
		n++
	}
	assert.Equal(t, 3, n)
}

func TestZipN(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{10, 20, 30, 40}
	c := []int{100, 200, 300}

	var got [][]int
	for tuple := range ZipN(slices.Values(a), slices.Values(b), slices.Values(c)) {
		got = append(got, slices.Clone(tuple))
	}
	assert.Equal(t, [][]int{{1, 10, 100}, {2, 20, 200}, {3, 30, 300}}, got)

	assert.Empty(t, slices.Collect(ZipN[int]()))
	assert.Empty(t, slices.Collect(ZipN(slices.Values(a), Iota(0))))
}

func TestZipN_AdjacentPairs(t *testing.T) {
	layers := [][]int{{1}, {2}, {3}, {4}}

	var pairs [][2]int
	for tuple := range ZipN(slices.Values(layers), Drop(1, slices.Values(layers))) {
		pairs = append(pairs, [2]int{tuple[0][0], tuple[1][0]})
	}
	assert.Equal(t, [][2]int{{1, 2}, {2, 3}, {3, 4}}, pairs)

	pairs = pairs[:0]
	for tuple := range ZipN(Pipe(Reverse(layers), Dropping[[]int](1)), Reverse(layers)) {
		pairs = append(pairs, [2]int{tuple[0][0], tuple[1][0]})
	}
	assert.Equal(t, [][2]int{{3, 4}, {2, 3}, {1, 2}}, pairs)
}

func TestViews_ReadThrough(t *testing.T) {
	layers := [][]float64{{1, 2}, {3}, {4, 5}}

	for l := range Drop(1, slices.Values(layers)) {
		l[0] = 0
	}
	for tuple := range ZipN(Reverse(layers), Reverse(layers)) {
		tuple[0][len(tuple[0])-1] += 1
	}

	require.Len(t, layers, 3)
	assert.Equal(t, []float64{1, 3}, layers[0])
	assert.Equal(t, []float64{1}, layers[1])
	assert.Equal(t, []float64{0, 6}, layers[2])
}

func TestZip_EarlyBreakStopsSources(t *testing.T) {
	var producedA, producedB int
	n := 0
	for range Zip(countingSeq(10, &producedA), countingSeq(10, &producedB)) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
	assert.LessOrEqual(t, producedA, 3)
	assert.LessOrEqual(t, producedB, 4)

	var producedC int
	for range ZipN(countingSeq(10, &producedC), Iota(10)) {
		break
	}
	assert.LessOrEqual(t, producedC, 2)
}

func BenchmarkZipN(b *testing.B) {
	s := make([]float64, 1024)

	b.Run("zipn", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum float64
			for tuple := range ZipN(slices.Values(s), slices.Values(s)) {
				sum += tuple[0] * tuple[1]
			}
			_ = sum
		}
	})

	b.Run("loop", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum float64
			for j := range s {
				sum += s[j] * s[j]
			}
			_ = sum
		}
	})
}
