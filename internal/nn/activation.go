package nn

import (
	"github.com/glyph-ml/glyph/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
type ReLU[B tensor.Backend] struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return &ReLU[B]{}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return input.ReLU()
}

// Parameters returns an empty slice (ReLU has no parameters).
func (r *ReLU[B]) Parameters() []*Parameter[B] {
	return nil
}

// StateDict returns an empty map (ReLU has no parameters).
func (r *ReLU[B]) StateDict() map[string]*tensor.RawTensor {
	return nil
}

// LoadStateDict is a no-op for ReLU.
func (r *ReLU[B]) LoadStateDict(map[string]*tensor.RawTensor) error {
	return nil
}

// Sigmoid is a logistic activation module.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x)), squashing
// values to the range (0, 1). The backend implementation is overflow-safe
// for large-magnitude inputs.
type Sigmoid[B tensor.Backend] struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return &Sigmoid[B]{}
}

// Forward applies Sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
func (s *Sigmoid[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return input.Sigmoid()
}

// Parameters returns an empty slice (Sigmoid has no parameters).
func (s *Sigmoid[B]) Parameters() []*Parameter[B] {
	return nil
}

// StateDict returns an empty map (Sigmoid has no parameters).
func (s *Sigmoid[B]) StateDict() map[string]*tensor.RawTensor {
	return nil
}

// LoadStateDict is a no-op for Sigmoid.
func (s *Sigmoid[B]) LoadStateDict(map[string]*tensor.RawTensor) error {
	return nil
}

// Tanh is a hyperbolic tangent activation module.
//
// Squashes values to the range (-1, 1); zero-centered, unlike Sigmoid.
type Tanh[B tensor.Backend] struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return &Tanh[B]{}
}

// Forward applies Tanh activation.
func (t *Tanh[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return input.Tanh()
}

// Parameters returns an empty slice (Tanh has no parameters).
func (t *Tanh[B]) Parameters() []*Parameter[B] {
	return nil
}

// StateDict returns an empty map (Tanh has no parameters).
func (t *Tanh[B]) StateDict() map[string]*tensor.RawTensor {
	return nil
}

// LoadStateDict is a no-op for Tanh.
func (t *Tanh[B]) LoadStateDict(map[string]*tensor.RawTensor) error {
	return nil
}
