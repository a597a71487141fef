// Package nn implements the neural network modules for glyph.
//
// This package provides the building blocks for feed-forward classifiers:
//   - Module interface: base interface for all NN components
//   - Parameter: named weight/bias tensors
//   - Linear: fully connected layer
//   - Activations: ReLU, Sigmoid, Tanh
//   - Softmax: probability normalization layer
//   - Sequential: container for stacking layers
//
// Design inspired by PyTorch's nn.Module but adapted for Go generics.
package nn

import (
	"github.com/glyph-ml/glyph/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build networks:
//
//	model := nn.NewSequential[Backend](
//	    nn.NewLinear(784, 128, backend),
//	    nn.NewReLU[Backend](),
//	    nn.NewLinear(128, 10, backend),
//	    nn.NewSoftmax[Backend](-1),
//	)
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	//
	// The input tensor must have the appropriate shape for this module;
	// Linear, for example, expects [batch_size, in_features]. A shape
	// violation panics with a message naming the expected and actual
	// dimensions. Callers wanting an error value validate through
	// model.Classifier instead.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all parameters of this module. Modules without
	// parameters (activations) return an empty slice.
	Parameters() []*Parameter[B]

	// StateDict returns a map of parameter names to raw tensors,
	// empty for parameterless modules.
	StateDict() map[string]*tensor.RawTensor

	// LoadStateDict copies parameter values from a state dictionary.
	// A no-op for parameterless modules.
	LoadStateDict(stateDict map[string]*tensor.RawTensor) error
}
