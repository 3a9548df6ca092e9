// Package tensor provides the numeric vector glue used by the network engine.
package tensor

// Float is a constraint for supported scalar types.
// It uses Go generics to ensure compile-time type safety.
type Float interface {
	~float32 | ~float64
}
