package cpu

import (
	"fmt"
	"math"

	"github.com/glyph-ml/glyph/internal/tensor"
)

// ReLU applies the rectified linear unit element-wise: max(0, x).
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("relu: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		reluSlice(result.AsFloat32(), x.AsFloat32())
	case tensor.Float64:
		reluSlice(result.AsFloat64(), x.AsFloat64())
	default:
		panic(fmt.Sprintf("relu: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

func reluSlice[T ~float32 | ~float64](dst, src []T) {
	for i, v := range src {
		if v > 0 {
			dst[i] = v
		} else {
			dst[i] = 0
		}
	}
}

// Sigmoid applies the logistic function element-wise: σ(x) = 1 / (1 + exp(-x)).
//
// The computation branches on the sign of x so exp never receives a large
// positive argument; σ stays finite for arbitrarily large |x|.
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("sigmoid: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(stableSigmoid(float64(v)))
		}
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = stableSigmoid(v)
		}
	default:
		panic(fmt.Sprintf("sigmoid: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// stableSigmoid evaluates σ(x) without overflowing exp.
//
// For x >= 0:  1 / (1 + exp(-x))       exp argument is <= 0
// For x <  0:  exp(x) / (1 + exp(x))   exp argument is < 0
func stableSigmoid(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}

// Tanh applies the hyperbolic tangent element-wise.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("tanh: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(math.Tanh(float64(v)))
		}
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = math.Tanh(v)
		}
	default:
		panic(fmt.Sprintf("tanh: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// Softmax computes softmax along the specified dimension.
// Softmax(x_i) = exp(x_i - m) / sum(exp(x_j - m)) where m is the maximum
// along the dimension. The max subtraction keeps exp from overflowing for
// large logits; every output lane sums to 1.
func (cpu *CPUBackend) Softmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	// Normalize dimension
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("softmax: dimension %d out of range for tensor of rank %d", dim, ndim))
	}

	result, err := tensor.NewRaw(shape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("softmax: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		softmaxLanes(result.AsFloat32(), x.AsFloat32(), shape, dim)
	case tensor.Float64:
		softmaxLanes(result.AsFloat64(), x.AsFloat64(), shape, dim)
	default:
		panic(fmt.Sprintf("softmax: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

func softmaxLanes[T ~float32 | ~float64](dst, src []T, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	dimSize := shape[dim]
	dimStride := strides[dim]

	eachLane(shape, dim, func(baseIdx int) {
		// Find max for numerical stability
		maxVal := T(math.Inf(-1))
		for i := 0; i < dimSize; i++ {
			idx := baseIdx + i*dimStride
			if src[idx] > maxVal {
				maxVal = src[idx]
			}
		}

		// Compute exp(x - max) and sum
		var sum T
		for i := 0; i < dimSize; i++ {
			idx := baseIdx + i*dimStride
			expVal := T(math.Exp(float64(src[idx] - maxVal)))
			dst[idx] = expVal
			sum += expVal
		}

		// Normalize
		for i := 0; i < dimSize; i++ {
			idx := baseIdx + i*dimStride
			dst[idx] /= sum
		}
	})
}

// eachLane invokes f with the base offset of every 1-D lane along dim.
// A lane is the set of elements that differ only in their dim coordinate.
func eachLane(shape tensor.Shape, dim int, f func(baseIdx int)) {
	strides := shape.ComputeStrides()

	numLanes := 1
	for i := range shape {
		if i != dim {
			numLanes *= shape[i]
		}
	}

	for lane := 0; lane < numLanes; lane++ {
		baseIdx := 0
		remaining := lane
		for i := 0; i < len(shape); i++ {
			if i == dim {
				continue
			}
			coord := remaining % shape[i]
			remaining /= shape[i]
			baseIdx += coord * strides[i]
		}
		f(baseIdx)
	}
}
