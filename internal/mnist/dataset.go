package mnist

import (
	"fmt"
	"path/filepath"
)

// Image dimensions of the MNIST dataset.
const (
	ImageRows   = 28
	ImageCols   = 28
	ImageSize   = ImageRows * ImageCols // 784
	NumClasses  = 10
	maxPixelVal = 255.0
)

// Dataset holds MNIST images and labels.
// Pixels are normalized to [0, 1]; labels are digits 0-9.
type Dataset struct {
	Images [][]float32 // [num_samples][784]
	Labels []uint8     // [num_samples]
}

// Load reads a dataset from official IDX binary files in dataDir.
//
// Expected files:
//   - train-images-idx3-ubyte and train-labels-idx1-ubyte (train=true)
//   - t10k-images-idx3-ubyte and t10k-labels-idx1-ubyte (train=false)
//
// maxSamples limits how many samples are kept (0 = all).
func Load(dataDir string, train bool, maxSamples int) (*Dataset, error) {
	var imageFile, labelFile string
	if train {
		imageFile = filepath.Join(dataDir, "train-images-idx3-ubyte")
		labelFile = filepath.Join(dataDir, "train-labels-idx1-ubyte")
	} else {
		imageFile = filepath.Join(dataDir, "t10k-images-idx3-ubyte")
		labelFile = filepath.Join(dataDir, "t10k-labels-idx1-ubyte")
	}

	imagesRaw, rows, cols, err := readIDXImages(imageFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	if rows != ImageRows || cols != ImageCols {
		return nil, fmt.Errorf("unexpected image dimensions: got %dx%d, want %dx%d", rows, cols, ImageRows, ImageCols)
	}

	labelsRaw, err := readIDXLabels(labelFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}

	if len(imagesRaw) != len(labelsRaw) {
		return nil, fmt.Errorf("image count (%d) != label count (%d)", len(imagesRaw), len(labelsRaw))
	}

	numSamples := len(imagesRaw)
	if maxSamples > 0 && numSamples > maxSamples {
		numSamples = maxSamples
	}

	images := make([][]float32, numSamples)
	labels := make([]uint8, numSamples)

	for i := 0; i < numSamples; i++ {
		if labelsRaw[i] > 9 {
			return nil, fmt.Errorf("label out of range [0, 9] at sample %d: %d", i, labelsRaw[i])
		}

		// Normalize: 0-255 → 0.0-1.0
		images[i] = make([]float32, ImageSize)
		for j := 0; j < ImageSize; j++ {
			images[i][j] = float32(imagesRaw[i][j]) / maxPixelVal
		}
		labels[i] = labelsRaw[i]
	}

	return &Dataset{
		Images: images,
		Labels: labels,
	}, nil
}

// Synthetic creates a tiny in-memory dataset for tests and demos.
//
// It contains one simple pattern per digit 0-9: a bright horizontal band
// whose vertical position encodes the label. Not realistic MNIST data,
// just enough to exercise the pipeline without files on disk.
func Synthetic() *Dataset {
	const numSamples = NumClasses
	images := make([][]float32, numSamples)
	labels := make([]uint8, numSamples)

	for i := 0; i < numSamples; i++ {
		images[i] = make([]float32, ImageSize)
		labels[i] = uint8(i)

		startRow := i * 2
		for row := startRow; row < startRow+8 && row < ImageRows; row++ {
			for col := 5; col < 23; col++ {
				images[i][row*ImageCols+col] = 0.8
			}
		}
	}

	return &Dataset{
		Images: images,
		Labels: labels,
	}
}

// NumSamples returns the total number of samples in the dataset.
func (d *Dataset) NumSamples() int {
	return len(d.Images)
}

// Split splits the dataset into two parts, the second holding
// validationRatio of the samples (e.g., 0.2 for a 80/20 split).
// Ratios outside [0, 1] are clamped.
func (d *Dataset) Split(validationRatio float32) (*Dataset, *Dataset) {
	if validationRatio < 0 {
		validationRatio = 0
	}
	if validationRatio > 1 {
		validationRatio = 1
	}

	numSamples := d.NumSamples()
	splitIdx := int(float32(numSamples) * (1.0 - validationRatio))

	return &Dataset{
			Images: d.Images[:splitIdx],
			Labels: d.Labels[:splitIdx],
		}, &Dataset{
			Images: d.Images[splitIdx:],
			Labels: d.Labels[splitIdx:],
		}
}
