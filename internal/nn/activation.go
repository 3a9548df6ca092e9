package nn

import (
	"math"

	"github.com/born-ml/tinynet/internal/tensor"
)

// Activation is a scalar nonlinearity together with its derivative.
//
// Derivative receives the neuron's OUTPUT y = Func(x), not its weighted
// input x, so every built-in below expresses f'(x) in terms of y:
//
//	Sigmoid: y * (1 - y)
//	Tanh:    1 - y²
//	ReLU:    1 if y > 0, else 0
//
// A custom pair must follow the same convention.
type Activation[T tensor.Float] struct {
	Func       func(T) T
	Derivative func(T) T
}

// Identity passes values through unchanged; its derivative is 1.
func Identity[T tensor.Float]() Activation[T] {
	return Activation[T]{
		Func:       func(x T) T { return x },
		Derivative: func(T) T { return 1 },
	}
}

// Sigmoid is the logistic function σ(x) = 1 / (1 + exp(-x)).
//
// Squashes values to the range (0, 1).
func Sigmoid[T tensor.Float]() Activation[T] {
	return Activation[T]{
		Func: func(x T) T {
			return T(1 / (1 + math.Exp(-float64(x))))
		},
		Derivative: func(y T) T { return y * (1 - y) },
	}
}

// Tanh is the hyperbolic tangent, zero-centered in (-1, 1).
func Tanh[T tensor.Float]() Activation[T] {
	return Activation[T]{
		Func:       func(x T) T { return T(math.Tanh(float64(x))) },
		Derivative: func(y T) T { return 1 - y*y },
	}
}

// ReLU is max(0, x).
func ReLU[T tensor.Float]() Activation[T] {
	return Activation[T]{
		Func: func(x T) T { return max(x, 0) },
		Derivative: func(y T) T {
			if y > 0 {
				return 1
			}
			return 0
		},
	}
}

// LeakyReLU is x for x >= 0 and slope*x otherwise. slope must be positive
// so the sign of the output matches the sign of the input.
func LeakyReLU[T tensor.Float](slope T) Activation[T] {
	return Activation[T]{
		Func: func(x T) T {
			if x < 0 {
				return slope * x
			}
			return x
		},
		Derivative: func(y T) T {
			if y < 0 {
				return slope
			}
			return 1
		},
	}
}
