package nn

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/born-ml/tinynet/internal/parallel"
	"github.com/born-ml/tinynet/internal/tensor"
)

// DefaultInitScale bounds initial weights to [-0.01, 0.01).
const DefaultInitScale = 0.01

// Config holds the settings of a Network.
//
// Zero values are replaced by defaults in New:
//   - Activation: Identity
//   - Loss: MSE
//   - InitScale: DefaultInitScale
//   - Rand: a source seeded once from the runtime's entropy
//   - Output: os.Stderr
//   - Parallel: parallel.DefaultConfig()
//
// LearningRate has no default and must be positive.
type Config[T tensor.Float] struct {
	LearningRate T             // Step size of every weight update
	Activation   Activation[T] // Applied to every non-input neuron
	Loss         LossGrad[T]   // Output-layer gradient rule
	InitScale    T             // Initial weights are drawn from InitScale * U[-1, 1)

	// Rand is the only source of randomness. Inject a seeded source for
	// reproducible weights.
	Rand *rand.Rand

	// Output receives one diagnostic line per training checkpoint.
	Output io.Writer

	// OnCheckpoint, if set, is called at every training checkpoint after the
	// diagnostic line is written.
	OnCheckpoint func(Checkpoint[T])

	// Parallel controls the weight fill at construction. Set Enabled to
	// false with a non-zero NumWorkers to force a sequential fill.
	Parallel parallel.Config
}

// withDefaults validates c and fills in zero values.
func (c Config[T]) withDefaults() (Config[T], error) {
	// NaN fails this comparison too.
	if !(c.LearningRate > 0) {
		return c, fmt.Errorf("%w: got %v", ErrInvalidLearningRate, c.LearningRate)
	}

	switch {
	case c.Activation.Func == nil && c.Activation.Derivative == nil:
		c.Activation = Identity[T]()
	case c.Activation.Func == nil || c.Activation.Derivative == nil:
		return c, ErrIncompleteActivation
	}

	if c.Loss == nil {
		c.Loss = MSE[T]
	}

	switch {
	case c.InitScale == 0:
		c.InitScale = DefaultInitScale
	case !(c.InitScale > 0):
		return c, fmt.Errorf("%w: got %v", ErrInvalidInitScale, c.InitScale)
	}

	if c.Rand == nil {
		c.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if c.Output == nil {
		c.Output = os.Stderr
	}
	if c.Parallel == (parallel.Config{}) {
		c.Parallel = parallel.DefaultConfig()
	}

	return c, nil
}

// SeededRand returns a PCG-backed source for reproducible weights.
func SeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
