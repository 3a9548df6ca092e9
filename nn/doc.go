// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small fully connected feed-forward network with
// fixed layer widths, trained online (one sample at a time) by
// backpropagation.
//
// # Overview
//
// This package contains:
//   - Network: layer activations, gradients and flattened weight matrices
//   - Activations: Identity, Sigmoid, Tanh, ReLU, LeakyReLU
//   - Output gradient rules: MSE (default), SquaredError
//   - Training: Train with checkpoint reporting
//
// # Basic Usage
//
//	import "github.com/born-ml/tinynet/nn"
//
//	func main() {
//	    net, err := nn.New([]int{3, 1}, nn.Config[float64]{
//	        LearningRate: 0.01,
//	        Activation:   nn.Identity[float64](),
//	        Rand:         nn.SeededRand(1),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    net.Train(slices.Values(samples), 100, 5)
//	    fmt.Println(net.Weights())
//	}
//
// # Topology
//
// Widths are fixed when the network is built and must hold at least two
// entries. Weight matrix i is stored row-major with one row per neuron of
// layer i+1:
//
//	weights[i][j*sizes[i]+k] // neuron k of layer i -> neuron j of layer i+1
//
// # Activations
//
// One activation applies to every neuron past the input layer. Its
// derivative is evaluated at the neuron's output:
//
//	cfg.Activation = nn.Tanh[float64]()
//
// # Training Diagnostics
//
// At every checkpoint a line is written to Config.Output:
//
//	loss: 0.0241 weights: {{1.0148, 1.9985, 2.9507}}
//
// where loss is the RMS of the output-layer gradient. Config.OnCheckpoint
// receives the same data in structured form.
package nn
