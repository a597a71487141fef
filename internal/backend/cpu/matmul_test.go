package cpu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glyph-ml/glyph/internal/tensor"
)

// TestMatMulKnownProduct checks a hand-computed 2x3 @ 3x2 product.
func TestMatMulKnownProduct(t *testing.T) {
	b := New()
	a := f32(t, b, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	c := f32(t, b, []float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	got := a.MatMul(c)
	assert.True(t, got.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float32{58, 64, 139, 154}, got.Data())
}

// TestMatMulIdentity verifies A @ I = A.
func TestMatMulIdentity(t *testing.T) {
	b := New()
	a := f32(t, b, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, tensor.Shape{3, 3})
	eye := tensor.Eye[float32](3, b)

	assert.Equal(t, a.Data(), a.MatMul(eye).Data())
	assert.Equal(t, a.Data(), eye.MatMul(a).Data())
}

// TestMatMulShapeMismatch verifies the inner-dimension check panics with
// both shapes in the message.
func TestMatMulShapeMismatch(t *testing.T) {
	b := New()
	a := f32(t, b, make([]float32, 6), tensor.Shape{2, 3})
	c := f32(t, b, make([]float32, 8), tensor.Shape{4, 2})

	assert.PanicsWithValue(t, "matmul: shape mismatch [2,3] @ [4,2]", func() { a.MatMul(c) })
}

// TestMatMulNon2D verifies rank validation.
func TestMatMulNon2D(t *testing.T) {
	b := New()
	a := f32(t, b, make([]float32, 6), tensor.Shape{6})
	c := f32(t, b, make([]float32, 6), tensor.Shape{2, 3})

	assert.Panics(t, func() { a.MatMul(c) })
}

// TestMatMulParallelMatchesSequential verifies goroutine fan-out is
// observably transparent: same inputs, bit-identical outputs.
func TestMatMulParallelMatchesSequential(t *testing.T) {
	parallelBackend := New()
	sequentialBackend := NewSequential()

	rng := rand.New(rand.NewSource(1))
	const m, k, n = 97, 64, 33
	aData := make([]float32, m*k)
	bData := make([]float32, k*n)
	for i := range aData {
		aData[i] = rng.Float32()*2 - 1
	}
	for i := range bData {
		bData[i] = rng.Float32()*2 - 1
	}

	aPar := f32(t, parallelBackend, aData, tensor.Shape{m, k})
	bPar := f32(t, parallelBackend, bData, tensor.Shape{k, n})
	aSeq := f32(t, sequentialBackend, aData, tensor.Shape{m, k})
	bSeq := f32(t, sequentialBackend, bData, tensor.Shape{k, n})

	parOut := aPar.MatMul(bPar).Data()
	seqOut := aSeq.MatMul(bSeq).Data()

	require.Len(t, parOut, m*n)
	assert.Equal(t, seqOut, parOut)
}
