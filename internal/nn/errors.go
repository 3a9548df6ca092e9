package nn

import "errors"

// Construction errors.
var (
	ErrTooFewLayers         = errors.New("network needs at least two layers")
	ErrInvalidLayerSize     = errors.New("layer width must be positive")
	ErrInvalidLearningRate  = errors.New("learning rate must be positive")
	ErrIncompleteActivation = errors.New("activation needs both a function and its derivative")
	ErrInvalidInitScale     = errors.New("init scale must be non-negative")
)
