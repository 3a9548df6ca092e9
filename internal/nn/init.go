package nn

import (
	"math/rand/v2"

	"github.com/born-ml/tinynet/internal/parallel"
	"github.com/born-ml/tinynet/internal/tensor"
)

// initBlockSize is the number of weights filled from one derived source.
const initBlockSize = 256

// Uniform fills every weight with scale * U[-1, 1).
//
// Each weight vector is cut into fixed blocks of initBlockSize. A seed per
// block is drawn from src in order, then blocks are filled concurrently,
// each from its own PCG source. The result depends only on src's state,
// not on the worker count.
func Uniform[T tensor.Float](weights [][]T, scale T, src *rand.Rand, cfg parallel.Config) {
	for _, w := range weights {
		blocks := (len(w) + initBlockSize - 1) / initBlockSize
		seeds := make([][2]uint64, blocks)
		for i := range seeds {
			seeds[i] = [2]uint64{src.Uint64(), src.Uint64()}
		}

		parallel.ForBlocks(len(w), initBlockSize, func(block, start, end int) {
			//nolint:gosec // Using math/rand for weight initialization (not security-critical)
			r := rand.New(rand.NewPCG(seeds[block][0], seeds[block][1]))
			for i := start; i < end; i++ {
				w[i] = scale * T(r.Float64()*2.0-1.0)
			}
		}, cfg)
	}
}
