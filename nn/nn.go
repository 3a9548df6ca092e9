// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/tinynet/internal/nn"
	"github.com/born-ml/tinynet/internal/parallel"
	"github.com/born-ml/tinynet/internal/tensor"
)

// Float is the set of supported scalar types.
type Float = tensor.Float

// Network is a fixed-topology feed-forward network.
type Network[T Float] = nn.Network[T]

// Config holds the settings of a Network.
type Config[T Float] = nn.Config[T]

// ParallelConfig controls the concurrent weight fill at construction.
type ParallelConfig = parallel.Config

// Sample is one (input, target) training pair.
type Sample[T Float] = nn.Sample[T]

// Checkpoint is a training progress snapshot.
type Checkpoint[T Float] = nn.Checkpoint[T]

// Activation is a scalar nonlinearity and its derivative (evaluated at the output).
type Activation[T Float] = nn.Activation[T]

// LossGrad writes the output-layer gradient.
type LossGrad[T Float] = nn.LossGrad[T]

// Defaults.
const (
	DefaultInitScale   = nn.DefaultInitScale
	DefaultCheckpoints = nn.DefaultCheckpoints
)

// Construction errors.
var (
	ErrTooFewLayers         = nn.ErrTooFewLayers
	ErrInvalidLayerSize     = nn.ErrInvalidLayerSize
	ErrInvalidLearningRate  = nn.ErrInvalidLearningRate
	ErrIncompleteActivation = nn.ErrIncompleteActivation
	ErrInvalidInitScale     = nn.ErrInvalidInitScale
)

// New creates a network with the given layer widths.
//
// Example:
//
//	net, err := nn.New([]int{2, 4, 1}, nn.Config[float64]{
//	    LearningRate: 0.05,
//	    Activation:   nn.Tanh[float64](),
//	})
func New[T Float](sizes []int, cfg Config[T]) (*Network[T], error) {
	return nn.New(sizes, cfg)
}

// MustNew is like New but panics on error.
func MustNew[T Float](sizes []int, cfg Config[T]) *Network[T] {
	return nn.MustNew(sizes, cfg)
}

// SeededRand returns a random source for reproducible weights.
func SeededRand(seed uint64) *rand.Rand {
	return nn.SeededRand(seed)
}

// DefaultParallelConfig returns the default weight-fill parallelism.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// CheckpointGap returns the number of epochs between checkpoints.
func CheckpointGap(epochs, checkpoints int) int {
	return nn.CheckpointGap(epochs, checkpoints)
}

// Activations

// Identity passes values through; derivative 1.
func Identity[T Float]() Activation[T] { return nn.Identity[T]() }

// Sigmoid is 1 / (1 + exp(-x)).
func Sigmoid[T Float]() Activation[T] { return nn.Sigmoid[T]() }

// Tanh is the hyperbolic tangent.
func Tanh[T Float]() Activation[T] { return nn.Tanh[T]() }

// ReLU is max(0, x).
func ReLU[T Float]() Activation[T] { return nn.ReLU[T]() }

// LeakyReLU is x for x >= 0 and slope*x otherwise.
func LeakyReLU[T Float](slope T) Activation[T] { return nn.LeakyReLU(slope) }

// Output gradient rules

// MSE is the mean squared error gradient, 2/n * (output - target).
func MSE[T Float](grad, output, target []T) { nn.MSE(grad, output, target) }

// SquaredError is the unscaled gradient, output - target.
func SquaredError[T Float](grad, output, target []T) { nn.SquaredError(grad, output, target) }
