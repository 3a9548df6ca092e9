package nn

import (
	"fmt"

	"github.com/born-ml/tinynet/internal/tensor"
)

// LossGrad writes the gradient of a loss with respect to the network output
// into grad. grad, output and target have the output layer's width.
type LossGrad[T tensor.Float] func(grad, output, target []T)

// MSE is the gradient of mean squared error:
//
//	grad[i] = 2/n * (output[i] - target[i])
//
// This is the default output rule.
func MSE[T tensor.Float](grad, output, target []T) {
	checkLossShapes("MSE", grad, output, target)
	scale := 2 / T(len(output))
	for i := range grad {
		grad[i] = scale * (output[i] - target[i])
	}
}

// SquaredError is the gradient of ½·Σ(output - target)²:
//
//	grad[i] = output[i] - target[i]
//
// It differs from MSE only by the constant 2/n.
func SquaredError[T tensor.Float](grad, output, target []T) {
	checkLossShapes("SquaredError", grad, output, target)
	for i := range grad {
		grad[i] = output[i] - target[i]
	}
}

func checkLossShapes[T tensor.Float](name string, grad, output, target []T) {
	if len(output) != len(target) || len(grad) != len(output) {
		panic(fmt.Sprintf("%s: expected equal widths, got grad=%d output=%d target=%d",
			name, len(grad), len(output), len(target)))
	}
}
