package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend satisfies Backend for tests that never invoke compute ops.
type fakeBackend struct{}

func (fakeBackend) Add(a, b *RawTensor) *RawTensor                   { panic("not implemented") }
func (fakeBackend) Sub(a, b *RawTensor) *RawTensor                   { panic("not implemented") }
func (fakeBackend) Mul(a, b *RawTensor) *RawTensor                   { panic("not implemented") }
func (fakeBackend) Div(a, b *RawTensor) *RawTensor                   { panic("not implemented") }
func (fakeBackend) MatMul(a, b *RawTensor) *RawTensor                { panic("not implemented") }
func (fakeBackend) Reshape(a *RawTensor, shape Shape) *RawTensor     { panic("not implemented") }
func (fakeBackend) Transpose(a *RawTensor, axes ...int) *RawTensor   { panic("not implemented") }
func (fakeBackend) Exp(a *RawTensor) *RawTensor                      { panic("not implemented") }
func (fakeBackend) Log(a *RawTensor) *RawTensor                      { panic("not implemented") }
func (fakeBackend) ReLU(a *RawTensor) *RawTensor                     { panic("not implemented") }
func (fakeBackend) Sigmoid(a *RawTensor) *RawTensor                  { panic("not implemented") }
func (fakeBackend) Tanh(a *RawTensor) *RawTensor                     { panic("not implemented") }
func (fakeBackend) Softmax(a *RawTensor, dim int) *RawTensor         { panic("not implemented") }
func (fakeBackend) Sum(a *RawTensor) *RawTensor                      { panic("not implemented") }
func (fakeBackend) SumDim(a *RawTensor, dim int, k bool) *RawTensor  { panic("not implemented") }
func (fakeBackend) Argmax(a *RawTensor, dim int) *RawTensor          { panic("not implemented") }
func (fakeBackend) Name() string                                     { return "fake" }

// TestFromSlice verifies data is copied and shaped correctly.
func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	tt, err := FromSlice[float32, fakeBackend](data, Shape{2, 3}, fakeBackend{})
	require.NoError(t, err)

	assert.True(t, tt.Shape().Equal(Shape{2, 3}))
	assert.Equal(t, Float32, tt.DType())
	assert.Equal(t, 6, tt.NumElements())
	assert.Equal(t, data, tt.Data())

	// The tensor owns its memory: mutating the source slice must not
	// change the tensor.
	data[0] = 99
	assert.Equal(t, float32(1), tt.At(0, 0))
}

// TestFromSliceShapeMismatch verifies element count validation.
func TestFromSliceShapeMismatch(t *testing.T) {
	_, err := FromSlice[float32, fakeBackend]([]float32{1, 2, 3}, Shape{2, 2}, fakeBackend{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires 4 elements")
}

// TestAtSet verifies row-major indexing.
func TestAtSet(t *testing.T) {
	tt, err := FromSlice[float32, fakeBackend]([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, fakeBackend{})
	require.NoError(t, err)

	assert.Equal(t, float32(1), tt.At(0, 0))
	assert.Equal(t, float32(6), tt.At(1, 2))

	tt.Set(42, 1, 1)
	assert.Equal(t, float32(42), tt.At(1, 1))

	assert.Panics(t, func() { tt.At(2, 0) })
	assert.Panics(t, func() { tt.At(0) })
}

// TestItem verifies scalar extraction and the non-scalar panic.
func TestItem(t *testing.T) {
	scalar, err := FromSlice[float32, fakeBackend]([]float32{3.5}, Shape{}, fakeBackend{})
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), scalar.Item())

	vec, err := FromSlice[float32, fakeBackend]([]float32{1, 2}, Shape{2}, fakeBackend{})
	require.NoError(t, err)
	assert.Panics(t, func() { vec.Item() })
}

// TestCloneSharesBuffer verifies reference counting behavior.
func TestCloneSharesBuffer(t *testing.T) {
	tt, err := FromSlice[float32, fakeBackend]([]float32{1, 2, 3, 4}, Shape{4}, fakeBackend{})
	require.NoError(t, err)
	require.True(t, tt.Raw().IsUnique())

	clone := tt.Clone()
	assert.False(t, tt.Raw().IsUnique())

	// Clones share memory until a writer copies.
	clone.Data()[0] = 7
	assert.Equal(t, float32(7), tt.At(0))

	clone.Raw().Release()
	assert.True(t, tt.Raw().IsUnique())
}

// TestString verifies the human-readable representation.
func TestString(t *testing.T) {
	tt, err := FromSlice[float32, fakeBackend]([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, fakeBackend{})
	require.NoError(t, err)
	assert.Equal(t, "Tensor[float32][2 3]", tt.String())
}
