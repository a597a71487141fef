package mnist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadTestSplit verifies normalization and pairing of images/labels.
func TestLoadTestSplit(t *testing.T) {
	dir := t.TempDir()
	writeTestSet(t, dir, 20)

	data, err := Load(dir, false, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, data.NumSamples())

	for i, img := range data.Images {
		require.Len(t, img, ImageSize)
		// The single 255 pixel normalizes to exactly 1.0.
		assert.Equal(t, float32(1), img[i%ImageSize])
		assert.Equal(t, uint8(i%NumClasses), data.Labels[i])
	}
}

// TestLoadMaxSamples verifies truncation.
func TestLoadMaxSamples(t *testing.T) {
	dir := t.TempDir()
	writeTestSet(t, dir, 20)

	data, err := Load(dir, false, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, data.NumSamples())
}

// TestLoadCountMismatch verifies image/label pairing validation.
func TestLoadCountMismatch(t *testing.T) {
	dir := t.TempDir()

	images := make([][]byte, 3)
	for i := range images {
		images[i] = make([]byte, ImageSize)
	}
	writeIDXImages(t, filepath.Join(dir, "t10k-images-idx3-ubyte"), images, ImageRows, ImageCols)
	writeIDXLabels(t, filepath.Join(dir, "t10k-labels-idx1-ubyte"), []byte{1, 2})

	_, err := Load(dir, false, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image count (3) != label count (2)")
}

// TestLoadBadLabel verifies the digit range check.
func TestLoadBadLabel(t *testing.T) {
	dir := t.TempDir()

	images := [][]byte{make([]byte, ImageSize)}
	writeIDXImages(t, filepath.Join(dir, "t10k-images-idx3-ubyte"), images, ImageRows, ImageCols)
	writeIDXLabels(t, filepath.Join(dir, "t10k-labels-idx1-ubyte"), []byte{12})

	_, err := Load(dir, false, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "label out of range")
}

// TestLoadWrongDimensions verifies non-28x28 files are rejected.
func TestLoadWrongDimensions(t *testing.T) {
	dir := t.TempDir()

	images := [][]byte{make([]byte, 16*16)}
	writeIDXImages(t, filepath.Join(dir, "t10k-images-idx3-ubyte"), images, 16, 16)
	writeIDXLabels(t, filepath.Join(dir, "t10k-labels-idx1-ubyte"), []byte{0})

	_, err := Load(dir, false, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected image dimensions")
}

// TestSynthetic verifies the built-in dataset shape and value range.
func TestSynthetic(t *testing.T) {
	data := Synthetic()
	assert.Equal(t, NumClasses, data.NumSamples())

	for i, img := range data.Images {
		require.Len(t, img, ImageSize)
		assert.Equal(t, uint8(i), data.Labels[i])
		for _, px := range img {
			assert.GreaterOrEqual(t, px, float32(0))
			assert.LessOrEqual(t, px, float32(1))
		}
	}

	// Different digits produce different patterns.
	assert.NotEqual(t, data.Images[0], data.Images[9])
}

// TestSplit verifies the train/validation partition.
func TestSplit(t *testing.T) {
	data := Synthetic()
	train, val := data.Split(0.2)

	assert.Equal(t, 8, train.NumSamples())
	assert.Equal(t, 2, val.NumSamples())
	assert.Equal(t, data.Labels[8], val.Labels[0])
}

// TestSplitClampsRatio verifies out-of-range ratios clamp to [0, 1]
// instead of producing out-of-bounds slice indices.
func TestSplitClampsRatio(t *testing.T) {
	data := Synthetic()

	train, val := data.Split(-0.5)
	assert.Equal(t, 10, train.NumSamples())
	assert.Equal(t, 0, val.NumSamples())

	train, val = data.Split(1.5)
	assert.Equal(t, 0, train.NumSamples())
	assert.Equal(t, 10, val.NumSamples())
}
