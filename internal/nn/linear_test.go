package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glyph-ml/glyph/internal/backend/cpu"
	"github.com/glyph-ml/glyph/internal/tensor"
)

type Backend = *cpu.CPUBackend

// TestLinearOutputShape verifies [batch, in] -> [batch, out].
func TestLinearOutputShape(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(784, 128, backend)

	input := tensor.Zeros[float32](tensor.Shape{32, 784}, backend)
	output := layer.Forward(input)

	assert.True(t, output.Shape().Equal(tensor.Shape{32, 128}))
	assert.Equal(t, 784, layer.InFeatures())
	assert.Equal(t, 128, layer.OutFeatures())
}

// TestLinearZeroInputGivesBias verifies y = 0 @ W.T + b = b for every row.
func TestLinearZeroInputGivesBias(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(4, 3, backend)

	bias := layer.Bias().Tensor().Data()
	copy(bias, []float32{1, 0, -2})

	input := tensor.Zeros[float32](tensor.Shape{2, 4}, backend)
	output := layer.Forward(input)

	assert.Equal(t, []float32{1, 0, -2, 1, 0, -2}, output.Data())
}

// TestLinearKnownValues checks a hand-computed transformation.
func TestLinearKnownValues(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(3, 2, backend)

	// W = [[1, 0, 0], [0, 1, 1]], b = [0.5, -0.5]
	copy(layer.Weight().Tensor().Data(), []float32{
		1, 0, 0,
		0, 1, 1,
	})
	copy(layer.Bias().Tensor().Data(), []float32{0.5, -0.5})

	input, err := tensor.FromSlice[float32]([]float32{1, 2, 3}, tensor.Shape{1, 3}, backend)
	require.NoError(t, err)

	output := layer.Forward(input)
	assert.Equal(t, []float32{1.5, 4.5}, output.Data())
}

// TestLinearWrongWidthPanics verifies the feature-count check names both
// the expected and actual widths.
func TestLinearWrongWidthPanics(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(256, 10, backend)

	input := tensor.Zeros[float32](tensor.Shape{4, 784}, backend)
	assert.PanicsWithValue(t,
		"Linear.Forward: expected input with 256 features, got 784",
		func() { layer.Forward(input) })
}

// TestLinearNon2DPanics verifies rank validation.
func TestLinearNon2DPanics(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(4, 2, backend)

	input := tensor.Zeros[float32](tensor.Shape{4}, backend)
	assert.Panics(t, func() { layer.Forward(input) })
}

// TestLinearStateDict verifies the exported parameter names and shapes.
func TestLinearStateDict(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(3, 2, backend)

	sd := layer.StateDict()
	require.Contains(t, sd, "weight")
	require.Contains(t, sd, "bias")
	assert.True(t, sd["weight"].Shape().Equal(tensor.Shape{2, 3}))
	assert.True(t, sd["bias"].Shape().Equal(tensor.Shape{2}))
}

// TestLinearLoadStateDictRoundTrip verifies two layers converge on the
// same outputs after a state dict transfer.
func TestLinearLoadStateDictRoundTrip(t *testing.T) {
	backend := cpu.New()
	src := NewLinear(4, 3, backend)
	dst := NewLinear(4, 3, backend)

	require.NoError(t, dst.LoadStateDict(src.StateDict()))

	input := tensor.Randn[float32](tensor.Shape{2, 4}, backend)
	assert.Equal(t, src.Forward(input).Data(), dst.Forward(input).Data())
}

// TestLinearLoadStateDictErrors covers missing keys and shape mismatches.
func TestLinearLoadStateDictErrors(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(4, 3, backend)

	err := layer.LoadStateDict(map[string]*tensor.RawTensor{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing weight")

	wrongShape, err := tensor.NewRaw(tensor.Shape{3, 5}, tensor.Float32)
	require.NoError(t, err)
	bias, err := tensor.NewRaw(tensor.Shape{3}, tensor.Float32)
	require.NoError(t, err)

	err = layer.LoadStateDict(map[string]*tensor.RawTensor{
		"weight": wrongShape,
		"bias":   bias,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")
	assert.Contains(t, err.Error(), "[3 4]")
	assert.Contains(t, err.Error(), "[3 5]")
}

// TestXavierBounds verifies the uniform bound sqrt(6 / (fanIn + fanOut)).
func TestXavierBounds(t *testing.T) {
	backend := cpu.New()
	const fanIn, fanOut = 100, 50
	w := Xavier(fanIn, fanOut, tensor.Shape{fanOut, fanIn}, backend)

	bound := float32(math.Sqrt(6.0 / float64(fanIn+fanOut)))
	for _, v := range w.Data() {
		assert.LessOrEqual(t, v, bound)
		assert.GreaterOrEqual(t, v, -bound)
	}
}
