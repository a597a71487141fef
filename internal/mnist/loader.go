package mnist

import (
	"fmt"
	"math/rand"

	"github.com/glyph-ml/glyph/internal/tensor"
)

// Batch is one mini-batch of examples, immutable once produced.
type Batch[B tensor.Backend] struct {
	Images *tensor.Tensor[float32, B] // [size, 784]
	Labels []uint8                    // [size]
	Size   int
}

// LoaderConfig controls batching behavior.
type LoaderConfig struct {
	BatchSize int
	Shuffle   bool  // Fisher-Yates shuffle of sample order before each pass
	Seed      int64 // Seed for the shuffle RNG; same seed, same order
}

// Loader slices a Dataset into batches. Each call to Batches produces a
// fresh pass; with Shuffle set, sample order is re-drawn per pass.
type Loader[B tensor.Backend] struct {
	data    *Dataset
	cfg     LoaderConfig
	rng     *rand.Rand
	backend B
}

// NewLoader creates a batching loader over data.
func NewLoader[B tensor.Backend](data *Dataset, cfg LoaderConfig, backend B) (*Loader[B], error) {
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("batch size must be > 0, got %d", cfg.BatchSize)
	}
	if len(data.Images) != len(data.Labels) {
		return nil, fmt.Errorf("images and labels length mismatch: %d vs %d", len(data.Images), len(data.Labels))
	}

	return &Loader[B]{
		data:    data,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)), //nolint:gosec // G404: shuffle order is not security-critical
		backend: backend,
	}, nil
}

// Batches materializes one pass over the dataset.
// The last batch may be smaller if the data doesn't divide evenly.
func (l *Loader[B]) Batches() ([]*Batch[B], error) {
	numSamples := l.data.NumSamples()

	indices := make([]int, numSamples)
	for i := range indices {
		indices[i] = i
	}
	if l.cfg.Shuffle {
		l.rng.Shuffle(numSamples, func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	numBatches := (numSamples + l.cfg.BatchSize - 1) / l.cfg.BatchSize
	batches := make([]*Batch[B], 0, numBatches)

	for start := 0; start < numSamples; start += l.cfg.BatchSize {
		end := min(start+l.cfg.BatchSize, numSamples)
		size := end - start

		raw, err := tensor.NewRaw(tensor.Shape{size, ImageSize}, tensor.Float32)
		if err != nil {
			return nil, fmt.Errorf("failed to create batch tensor: %w", err)
		}

		pixels := raw.AsFloat32()
		labels := make([]uint8, size)
		for j := start; j < end; j++ {
			idx := indices[j]
			if len(l.data.Images[idx]) != ImageSize {
				return nil, fmt.Errorf("sample %d has %d pixels, want %d", idx, len(l.data.Images[idx]), ImageSize)
			}
			copy(pixels[(j-start)*ImageSize:(j-start+1)*ImageSize], l.data.Images[idx])
			labels[j-start] = l.data.Labels[idx]
		}

		batches = append(batches, &Batch[B]{
			Images: tensor.New[float32, B](raw, l.backend),
			Labels: labels,
			Size:   size,
		})
	}

	return batches, nil
}
