package nn

import (
	"iter"

	"github.com/born-ml/tinynet/internal/ranges"
	"github.com/born-ml/tinynet/internal/tensor"
)

// Sample is one (input, target) training pair.
type Sample[T tensor.Float] struct {
	Input  []T
	Target []T
}

// Train runs epochs passes over data, calling Forward then Backward for
// every sample in order.
//
// data is ranged over once per epoch, so it must be restartable (a view over
// a slice is; a channel-backed sequence is not). Progress is reported at
// the cadence given by CheckpointGap(epochs, checkpoints); pass
// DefaultCheckpoints to report once at the end. Does nothing if
// epochs <= 0.
//
// Example:
//
//	xs := []float64{-2, -1, 0, 1, 2}
//	data := ranges.Map(slices.Values(xs), func(x float64) nn.Sample[float64] {
//	    return nn.Sample[float64]{
//	        Input:  []float64{x * x, x, 1},
//	        Target: []float64{x*x + 2*x + 3},
//	    }
//	})
//	net.Train(data, 100, 5)
func (n *Network[T]) Train(data iter.Seq[Sample[T]], epochs, checkpoints int) {
	if epochs <= 0 {
		return
	}
	gap := CheckpointGap(epochs, checkpoints)

	for epoch := range ranges.Iota(epochs) {
		for s := range data {
			n.Forward(s.Input)
			n.Backward(s.Target)
		}
		if (epoch+1)%gap == 0 {
			n.checkpoint(epoch + 1)
		}
	}
}
