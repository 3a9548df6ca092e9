// Package nn implements a fixed-topology, fully connected feed-forward
// network trained online by backpropagation.
package nn

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/tinynet/internal/ranges"
	"github.com/born-ml/tinynet/internal/tensor"
)

// Network is a feed-forward network whose layer widths are fixed at
// construction.
//
// For layer widths sizes, the network holds:
//   - layers[i]: activations of layer i (layers[0] is the latest input)
//   - grads[i]: loss gradient with respect to layers[i]
//   - weights[i]: row-major sizes[i+1] x sizes[i] matrix, where
//     weights[i][j*sizes[i]+k] connects neuron k of layer i to neuron j of
//     layer i+1
//
// There are no bias terms. Every non-input neuron applies the same
// activation. Layers and gradients are scratch space rewritten by every
// Forward and Backward; weights change only in Backward.
//
// A Network is not safe for concurrent use.
//
// Example:
//
//	net, err := nn.New([]int{3, 1}, nn.Config[float64]{LearningRate: 0.01})
//	if err != nil {
//	    return err
//	}
//	net.Forward([]float64{4, 2, 1})
//	fmt.Println(net.Output())
type Network[T tensor.Float] struct {
	sizes   []int
	layers  [][]T
	grads   [][]T
	weights [][]T

	learningRate T
	activation   Activation[T]
	loss         LossGrad[T]

	output       io.Writer
	onCheckpoint func(Checkpoint[T])
}

// New creates a network with the given layer widths.
//
// sizes must hold at least two positive widths; it is copied, so the
// topology cannot change after construction. Weights are drawn from
// cfg.InitScale * U[-1, 1) using cfg.Rand.
func New[T tensor.Float](sizes []int, cfg Config[T]) (*Network[T], error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewLayers, len(sizes))
	}
	for i, n := range sizes {
		if n < 1 {
			return nil, fmt.Errorf("%w: layer %d has width %d", ErrInvalidLayerSize, i, n)
		}
	}

	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	sizes = slices.Clone(sizes)
	n := &Network[T]{
		sizes:        sizes,
		layers:       tensor.Vectors[T](sizes),
		grads:        tensor.Vectors[T](sizes),
		weights:      tensor.Matrices[T](sizes),
		learningRate: cfg.LearningRate,
		activation:   cfg.Activation,
		loss:         cfg.Loss,
		output:       cfg.Output,
		onCheckpoint: cfg.OnCheckpoint,
	}
	Uniform(n.weights, cfg.InitScale, cfg.Rand, cfg.Parallel)

	return n, nil
}

// MustNew is like New but panics on error.
func MustNew[T tensor.Float](sizes []int, cfg Config[T]) *Network[T] {
	n, err := New(sizes, cfg)
	if err != nil {
		panic(err)
	}
	return n
}

// Forward propagates input through the network.
//
// layers[0] receives a copy of input; for every transition and destination
// neuron j, layers[i+1][j] = activation(row_j(weights[i]) · layers[i]).
// The result is read with Output.
//
// Panics if len(input) differs from the input layer's width.
func (n *Network[T]) Forward(input []T) {
	if len(input) != n.sizes[0] {
		panic(fmt.Sprintf("Network.Forward: expected input of width %d, got %d", n.sizes[0], len(input)))
	}
	copy(n.layers[0], input)

	for t := range ranges.ZipN(
		slices.Values(n.layers),
		ranges.Drop(1, slices.Values(n.layers)),
		slices.Values(n.weights),
	) {
		left, right, weight := t[0], t[1], t[2]
		width := len(left)
		for j := range ranges.Iota(len(right)) {
			right[j] = n.activation.Func(tensor.Dot(weight[j*width:(j+1)*width], left))
		}
	}
}

// Backward computes gradients for the most recent Forward and applies one
// gradient-descent step to every weight.
//
// The output gradient comes from the configured LossGrad. Walking the
// transitions from the output toward the input, the gradient of the left
// layer is
//
//	gradLeft[k] = Σ_j f'(right[j]) * gradRight[j] * weight[j*width+k]
//
// computed before that transition's weights are updated with
//
//	weight[j*width+k] -= lr * left[k] * f'(right[j]) * gradRight[j]
//
// Panics if len(target) differs from the output layer's width.
func (n *Network[T]) Backward(target []T) {
	last := len(n.sizes) - 1
	if len(target) != n.sizes[last] {
		panic(fmt.Sprintf("Network.Backward: expected target of width %d, got %d", n.sizes[last], len(target)))
	}
	for _, g := range n.grads {
		clear(g)
	}
	n.loss(n.grads[last], n.layers[last], target)

	for t := range ranges.ZipN(
		ranges.Pipe(ranges.Reverse(n.layers), ranges.Dropping[[]T](1)),
		ranges.Reverse(n.layers),
		ranges.Pipe(ranges.Reverse(n.grads), ranges.Dropping[[]T](1)),
		ranges.Reverse(n.grads),
		ranges.Reverse(n.weights),
	) {
		left, right, gradLeft, gradRight, weight := t[0], t[1], t[2], t[3], t[4]
		width := len(left)

		for k := range ranges.Iota(len(gradLeft)) {
			var sum T
			for j, out := range ranges.Enumerate(slices.Values(right)) {
				sum += n.activation.Derivative(out) * gradRight[j] * weight[j*width+k]
			}
			gradLeft[k] = sum
		}

		for j, pair := range ranges.Enumerate(ranges.ZipN(slices.Values(right), slices.Values(gradRight))) {
			delta := n.activation.Derivative(pair[0]) * pair[1]
			row := weight[j*width : (j+1)*width]
			for k, in := range left {
				row[k] -= n.learningRate * in * delta
			}
		}
	}
}

// Predict runs Forward and returns a copy of the output layer.
func (n *Network[T]) Predict(input []T) []T {
	n.Forward(input)
	return slices.Clone(n.Output())
}

// Loss returns the mean squared error of the network over data, averaged
// over every output of every sample. Weights are not modified; layer
// activations are overwritten. Returns 0 for an empty dataset.
func (n *Network[T]) Loss(data iter.Seq[Sample[T]]) float64 {
	var residuals []float64
	for s := range data {
		n.Forward(s.Input)
		for out, want := range ranges.Zip(slices.Values(n.Output()), slices.Values(s.Target)) {
			residuals = append(residuals, float64(out)-float64(want))
		}
	}
	if len(residuals) == 0 {
		return 0
	}
	return floats.Dot(residuals, residuals) / float64(len(residuals))
}

// Sizes returns a copy of the layer widths.
func (n *Network[T]) Sizes() []int {
	return slices.Clone(n.sizes)
}

// Layers returns the live activation vectors.
func (n *Network[T]) Layers() [][]T {
	return n.layers
}

// Grads returns the live gradient vectors.
func (n *Network[T]) Grads() [][]T {
	return n.grads
}

// Weights returns the live flattened weight matrices. Writes through the
// returned slices change the network.
func (n *Network[T]) Weights() [][]T {
	return n.weights
}

// Output returns the live output layer.
func (n *Network[T]) Output() []T {
	return n.layers[len(n.layers)-1]
}

// LearningRate returns the step size.
func (n *Network[T]) LearningRate() T {
	return n.learningRate
}
