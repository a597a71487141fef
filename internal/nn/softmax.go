package nn

import (
	"github.com/glyph-ml/glyph/internal/tensor"
)

// Softmax normalizes values along a dimension into a probability
// distribution:
//
//	softmax(x)_i = exp(x_i - m) / Σ_j exp(x_j - m)
//
// where m is the maximum along the dimension. Subtracting m is the
// numerically stable formulation: it never overflows for large logits and
// leaves the result unchanged (softmax is shift-invariant). Every output
// lane sums to 1 with entries in [0, 1].
type Softmax[B tensor.Backend] struct {
	dim int
}

// NewSoftmax creates a Softmax module operating along dim.
// Negative dims count from the end; use -1 for per-row class
// probabilities on [batch, classes] logits.
func NewSoftmax[B tensor.Backend](dim int) *Softmax[B] {
	return &Softmax[B]{dim: dim}
}

// Forward normalizes the input along the configured dimension.
func (s *Softmax[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return input.Softmax(s.dim)
}

// Dim returns the normalization dimension.
func (s *Softmax[B]) Dim() int {
	return s.dim
}

// Parameters returns an empty slice (Softmax has no parameters).
func (s *Softmax[B]) Parameters() []*Parameter[B] {
	return nil
}

// StateDict returns an empty map (Softmax has no parameters).
func (s *Softmax[B]) StateDict() map[string]*tensor.RawTensor {
	return nil
}

// LoadStateDict is a no-op for Softmax.
func (s *Softmax[B]) LoadStateDict(map[string]*tensor.RawTensor) error {
	return nil
}
