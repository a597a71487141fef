package cpu

import (
	"fmt"

	"github.com/glyph-ml/glyph/internal/tensor"
)

// Sum reduces the whole tensor to a 0-D scalar tensor.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType())
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		var sum float32
		for _, v := range x.AsFloat32() {
			sum += v
		}
		result.AsFloat32()[0] = sum
	case tensor.Float64:
		var sum float64
		for _, v := range x.AsFloat64() {
			sum += v
		}
		result.AsFloat64()[0] = sum
	case tensor.Int32:
		var sum int32
		for _, v := range x.AsInt32() {
			sum += v
		}
		result.AsInt32()[0] = sum
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

// SumDim sums along the given dimension. With keepDim the reduced dimension
// stays in the output shape with size 1, otherwise it is removed.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	dim = normalizeDim(dim, len(shape), "sumdim")

	outShape := reducedShape(shape, dim, keepDim)
	result, err := tensor.NewRaw(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("sumdim: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		sumLanes(result.AsFloat32(), x.AsFloat32(), shape, dim)
	case tensor.Float64:
		sumLanes(result.AsFloat64(), x.AsFloat64(), shape, dim)
	case tensor.Int32:
		sumLanes(result.AsInt32(), x.AsInt32(), shape, dim)
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s", x.DType()))
	}

	return result
}

func sumLanes[T number](dst, src []T, shape tensor.Shape, dim int) {
	dimSize := shape[dim]
	dimStride := shape.ComputeStrides()[dim]

	eachReducedIndex(shape, dim, func(out, baseIdx int) {
		var sum T
		for i := 0; i < dimSize; i++ {
			sum += src[baseIdx+i*dimStride]
		}
		dst[out] = sum
	})
}

// Argmax returns the index of the maximum value along the given dimension
// as an Int32 tensor. Ties resolve to the lowest index.
func (cpu *CPUBackend) Argmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	dim = normalizeDim(dim, len(shape), "argmax")

	outShape := reducedShape(shape, dim, false)
	result, err := tensor.NewRaw(outShape, tensor.Int32)
	if err != nil {
		panic(fmt.Sprintf("argmax: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		argmaxLanes(result.AsInt32(), x.AsFloat32(), shape, dim)
	case tensor.Float64:
		argmaxLanes(result.AsInt32(), x.AsFloat64(), shape, dim)
	case tensor.Int32:
		argmaxLanes(result.AsInt32(), x.AsInt32(), shape, dim)
	default:
		panic(fmt.Sprintf("argmax: unsupported dtype %s", x.DType()))
	}

	return result
}

func argmaxLanes[T number](dst []int32, src []T, shape tensor.Shape, dim int) {
	dimSize := shape[dim]
	dimStride := shape.ComputeStrides()[dim]

	eachReducedIndex(shape, dim, func(out, baseIdx int) {
		best := 0
		bestVal := src[baseIdx]
		for i := 1; i < dimSize; i++ {
			v := src[baseIdx+i*dimStride]
			if v > bestVal {
				bestVal = v
				best = i
			}
		}
		dst[out] = int32(best)
	})
}

// eachReducedIndex walks the row-major flat indices of the reduced output
// shape (dim removed) and passes, for each, the base offset of the matching
// source lane.
func eachReducedIndex(shape tensor.Shape, dim int, f func(out, baseIdx int)) {
	srcStrides := shape.ComputeStrides()
	red := reducedShape(shape, dim, false)
	redStrides := red.ComputeStrides()

	numLanes := red.NumElements()
	for out := 0; out < numLanes; out++ {
		rem := out
		baseIdx := 0
		for d := 0; d < len(red); d++ {
			coord := rem / redStrides[d]
			rem %= redStrides[d]
			srcAxis := d
			if d >= dim {
				srcAxis = d + 1
			}
			baseIdx += coord * srcStrides[srcAxis]
		}
		f(out, baseIdx)
	}
}

// normalizeDim resolves negative dims and bounds-checks.
func normalizeDim(dim, ndim int, op string) int {
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: dimension %d out of range for tensor of rank %d", op, dim, ndim))
	}
	return dim
}

// reducedShape drops (or keeps as 1) the reduced dimension.
func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(tensor.Shape, 0, max(len(shape)-1, 0))
	for i, d := range shape {
		if i != dim {
			out = append(out, d)
		}
	}
	return out
}
