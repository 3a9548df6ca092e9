package tensor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/born-ml/tinynet/internal/ranges"
)

// Vectors allocates one zeroed vector per entry of sizes.
func Vectors[T Float](sizes []int) [][]T {
	vs := make([][]T, len(sizes))
	for i, n := range sizes {
		vs[i] = make([]T, n)
	}
	return vs
}

// Matrices allocates one zeroed, flattened sizes[i+1] x sizes[i] matrix per
// adjacent pair of sizes.
func Matrices[T Float](sizes []int) [][]T {
	if len(sizes) < 2 {
		return nil
	}
	ms := make([][]T, 0, len(sizes)-1)
	for pair := range ranges.ZipN(slices.Values(sizes), ranges.Drop(1, slices.Values(sizes))) {
		ms = append(ms, make([]T, pair[0]*pair[1]))
	}
	return ms
}

// Dot returns the sum of a[i]*b[i], accumulated in index order.
// Panics if the lengths differ.
func Dot[T Float](a, b []T) T {
	if len(a) != len(b) {
		panic(fmt.Sprintf("tensor.Dot: length mismatch %d != %d", len(a), len(b)))
	}
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Clone returns a deep copy of vs.
func Clone[T Float](vs [][]T) [][]T {
	out := make([][]T, len(vs))
	for i, v := range vs {
		out[i] = append([]T(nil), v...)
	}
	return out
}

// Float64s converts v to a new []float64.
func Float64s[T Float](v []T) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// Format renders v as {a, b, c}.
func Format[T Float](v []T) string {
	var sb strings.Builder
	writeVector(&sb, v)
	return sb.String()
}

// FormatAll renders vs as {{a, b}, {c}}.
func FormatAll[T Float](vs [][]T) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range ranges.Enumerate(slices.Values(vs)) {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeVector(&sb, v)
	}
	sb.WriteByte('}')
	return sb.String()
}

func writeVector[T Float](sb *strings.Builder, v []T) {
	sb.WriteByte('{')
	for i, x := range ranges.Enumerate(slices.Values(v)) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(sb, x)
	}
	sb.WriteByte('}')
}
