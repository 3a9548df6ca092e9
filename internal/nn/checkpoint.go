package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/tinynet/internal/tensor"
)

// DefaultCheckpoints reports progress once, after the last epoch.
const DefaultCheckpoints = 1

// Checkpoint is a training progress snapshot taken at an epoch boundary.
//
// Example:
//
//	cfg := nn.Config[float64]{
//	    LearningRate: 0.01,
//	    OnCheckpoint: func(cp nn.Checkpoint[float64]) {
//	        history = append(history, cp.Loss)
//	    },
//	}
type Checkpoint[T tensor.Float] struct {
	Epoch   int     // 1-based epoch that just finished
	Loss    float64 // RMS of the output-layer gradient after the epoch's last sample
	Weights [][]T   // Copy of the weights at this point
}

// String formats the checkpoint as the diagnostic line written during
// training.
func (c Checkpoint[T]) String() string {
	return fmt.Sprintf("loss: %g weights: %s", c.Loss, tensor.FormatAll(c.Weights))
}

// CheckpointGap returns the number of epochs between two checkpoints when
// training for epochs epochs with the given checkpoint count:
//   - checkpoints <= 0: only the final epoch
//   - checkpoints > epochs: every epoch
//   - otherwise: epochs / checkpoints (integer division)
//
// A checkpoint fires after epoch e (0-based) when (e+1) % gap == 0.
func CheckpointGap(epochs, checkpoints int) int {
	switch {
	case checkpoints <= 0:
		return epochs
	case checkpoints > epochs:
		return 1
	default:
		return epochs / checkpoints
	}
}

// rms returns sqrt(mean(v²)).
func rms[T tensor.Float](v []T) float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Norm(tensor.Float64s(v), 2) / math.Sqrt(float64(len(v)))
}

// checkpoint snapshots the network and reports it.
func (n *Network[T]) checkpoint(epoch int) {
	cp := Checkpoint[T]{
		Epoch:   epoch,
		Loss:    rms(n.grads[len(n.grads)-1]),
		Weights: tensor.Clone(n.weights),
	}
	fmt.Fprintln(n.output, cp)
	if n.onCheckpoint != nil {
		n.onCheckpoint(cp)
	}
}
