package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glyph-ml/glyph/internal/tensor"
)

// f32 builds a float32 tensor on the given backend, failing the test on error.
func f32(t *testing.T, b *CPUBackend, data []float32, shape tensor.Shape) *tensor.Tensor[float32, *CPUBackend] {
	t.Helper()
	tt, err := tensor.FromSlice[float32](data, shape, b)
	require.NoError(t, err)
	return tt
}

// TestBinaryOpsSameShape covers the non-broadcast fast path.
func TestBinaryOpsSameShape(t *testing.T) {
	b := New()
	a := f32(t, b, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	c := f32(t, b, []float32{10, 20, 30, 40}, tensor.Shape{2, 2})

	assert.Equal(t, []float32{11, 22, 33, 44}, a.Add(c).Data())
	assert.Equal(t, []float32{-9, -18, -27, -36}, a.Sub(c).Data())
	assert.Equal(t, []float32{10, 40, 90, 160}, a.Mul(c).Data())
	assert.Equal(t, []float32{0.1, 0.1, 0.1, 0.1}, a.Div(c).Data())
}

// TestAddBroadcastRow verifies bias-style broadcasting: [2,3] + [1,3].
func TestAddBroadcastRow(t *testing.T) {
	b := New()
	x := f32(t, b, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	bias := f32(t, b, []float32{10, 20, 30}, tensor.Shape{1, 3})

	got := x.Add(bias)
	assert.True(t, got.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, []float32{11, 22, 33, 14, 25, 36}, got.Data())
}

// TestAddBroadcastColumn verifies column broadcasting: [2,3] + [2,1].
func TestAddBroadcastColumn(t *testing.T) {
	b := New()
	x := f32(t, b, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	col := f32(t, b, []float32{100, 200}, tensor.Shape{2, 1})

	got := x.Add(col)
	assert.Equal(t, []float32{101, 102, 103, 204, 205, 206}, got.Data())
}

// TestMulBroadcastVector verifies a missing left dimension: [2,3] * [3].
func TestMulBroadcastVector(t *testing.T) {
	b := New()
	x := f32(t, b, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	v := f32(t, b, []float32{2, 3, 4}, tensor.Shape{3})

	got := x.Mul(v)
	assert.Equal(t, []float32{2, 6, 12, 8, 15, 24}, got.Data())
}

// TestBinaryInt32 exercises the integer path.
func TestBinaryInt32(t *testing.T) {
	b := New()
	x, err := tensor.FromSlice[int32]([]int32{6, 8, 10}, tensor.Shape{3}, b)
	require.NoError(t, err)
	y, err := tensor.FromSlice[int32]([]int32{2, 4, 5}, tensor.Shape{3}, b)
	require.NoError(t, err)

	assert.Equal(t, []int32{8, 12, 15}, x.Add(y).Data())
	assert.Equal(t, []int32{3, 2, 2}, x.Div(y).Data())
}

// TestBinaryIncompatibleShapes verifies the broadcast error panics.
func TestBinaryIncompatibleShapes(t *testing.T) {
	b := New()
	x := f32(t, b, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	y := f32(t, b, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	assert.PanicsWithValue(t,
		"add: shapes not compatible for broadcasting: [2 3] vs [2 2] (dimension 1: 3 vs 2)",
		func() { x.Add(y) })
}

// TestBinaryDTypeMismatch verifies the dtype check panics.
func TestBinaryDTypeMismatch(t *testing.T) {
	b := New()
	x, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float32)
	require.NoError(t, err)
	y, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float64)
	require.NoError(t, err)

	assert.Panics(t, func() { b.Add(x, y) })
}

// TestName verifies the backend name.
func TestName(t *testing.T) {
	assert.Equal(t, "CPU", New().Name())
}
