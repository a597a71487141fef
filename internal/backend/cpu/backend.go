// Package cpu implements the CPU compute backend for glyph tensors.
//
// All operations are pure: they allocate a fresh result tensor and never
// mutate their inputs. Matrix multiplication may fan out across goroutines
// internally (see internal/parallel), which is observably transparent.
package cpu

import (
	"fmt"

	"github.com/glyph-ml/glyph/internal/parallel"
	"github.com/glyph-ml/glyph/internal/tensor"
)

// CPUBackend implements tensor operations on the CPU.
type CPUBackend struct {
	par parallel.Config
}

// New creates a new CPU backend with default parallelism settings.
func New() *CPUBackend {
	return &CPUBackend{
		par: parallel.DefaultConfig(),
	}
}

// NewSequential creates a CPU backend that never spawns goroutines.
// Useful for tests that compare against parallel execution.
func NewSequential() *CPUBackend {
	cfg := parallel.DefaultConfig()
	cfg.Enabled = false
	return &CPUBackend{par: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// binOp enumerates the element-wise binary operations.
type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
)

func (op binOp) String() string {
	switch op {
	case opAdd:
		return "add"
	case opSub:
		return "sub"
	case opMul:
		return "mul"
	case opDiv:
		return "div"
	default:
		return "unknown"
	}
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opAdd, a, b)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opSub, a, b)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opMul, a, b)
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opDiv, a, b)
}

func (cpu *CPUBackend) binary(op binOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType())
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	if !needsBroadcast {
		// Fast path: identical shapes, element-for-element.
		switch a.DType() {
		case tensor.Float32:
			applyBinary(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), op)
		case tensor.Float64:
			applyBinary(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), op)
		case tensor.Int32:
			applyBinary(result.AsInt32(), a.AsInt32(), b.AsInt32(), op)
		default:
			panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
		}
		return result
	}

	aStrides := tensor.BroadcastStrides(a.Shape(), outShape)
	bStrides := tensor.BroadcastStrides(b.Shape(), outShape)

	switch a.DType() {
	case tensor.Float32:
		applyBinaryBroadcast(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), op, outShape, aStrides, bStrides)
	case tensor.Float64:
		applyBinaryBroadcast(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), op, outShape, aStrides, bStrides)
	case tensor.Int32:
		applyBinaryBroadcast(result.AsInt32(), a.AsInt32(), b.AsInt32(), op, outShape, aStrides, bStrides)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}
	return result
}

// number covers the dtypes that support arithmetic.
type number interface {
	~float32 | ~float64 | ~int32
}

func applyBinary[T number](dst, a, b []T, op binOp) {
	switch op {
	case opAdd:
		for i := range dst {
			dst[i] = a[i] + b[i]
		}
	case opSub:
		for i := range dst {
			dst[i] = a[i] - b[i]
		}
	case opMul:
		for i := range dst {
			dst[i] = a[i] * b[i]
		}
	case opDiv:
		for i := range dst {
			dst[i] = a[i] / b[i]
		}
	}
}

func applyBinaryBroadcast[T number](dst, a, b []T, op binOp, out tensor.Shape, aStrides, bStrides []int) {
	for i := range dst {
		// Decompose the flat output index into coordinates and map them
		// through the (possibly zero) source strides.
		rem := i
		aIdx, bIdx := 0, 0
		for d := len(out) - 1; d >= 0; d-- {
			coord := rem % out[d]
			rem /= out[d]
			aIdx += coord * aStrides[d]
			bIdx += coord * bStrides[d]
		}

		switch op {
		case opAdd:
			dst[i] = a[aIdx] + b[bIdx]
		case opSub:
			dst[i] = a[aIdx] - b[bIdx]
		case opMul:
			dst[i] = a[aIdx] * b[bIdx]
		case opDiv:
			dst[i] = a[aIdx] / b[bIdx]
		}
	}
}
