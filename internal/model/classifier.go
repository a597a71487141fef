// Package model assembles feed-forward digit classifiers from nn modules
// and exposes a validating, error-returning API around them.
package model

import (
	"fmt"

	"github.com/glyph-ml/glyph/internal/mnist"
	"github.com/glyph-ml/glyph/internal/nn"
	"github.com/glyph-ml/glyph/internal/serialization"
	"github.com/glyph-ml/glyph/internal/tensor"
)

// Activation names the nonlinearity applied after a linear layer.
type Activation string

// Supported activations.
const (
	ActivationNone    Activation = "none"
	ActivationReLU    Activation = "relu"
	ActivationSigmoid Activation = "sigmoid"
	ActivationTanh    Activation = "tanh"
)

// LayerSpec describes one linear layer and its activation.
type LayerSpec struct {
	In         int
	Out        int
	Activation Activation
}

// Config describes a classifier architecture. The final layer's output
// width is the number of classes; a softmax over the last dimension is
// always appended, so probabilities come out of Forward regardless of
// the last layer's activation.
type Config struct {
	Layers []LayerSpec
}

// SigmoidConfig is the classic single-hidden-layer MNIST architecture:
// 784 → 256 (sigmoid) → 10 (softmax).
func SigmoidConfig() Config {
	return Config{Layers: []LayerSpec{
		{In: mnist.ImageSize, Out: 256, Activation: ActivationSigmoid},
		{In: 256, Out: mnist.NumClasses, Activation: ActivationNone},
	}}
}

// ReLUConfig is a deeper variant: 784 → 128 (relu) → 64 (relu) → 10 (softmax).
func ReLUConfig() Config {
	return Config{Layers: []LayerSpec{
		{In: mnist.ImageSize, Out: 128, Activation: ActivationReLU},
		{In: 128, Out: 64, Activation: ActivationReLU},
		{In: 64, Out: mnist.NumClasses, Activation: ActivationNone},
	}}
}

// ConfigByName resolves an architecture name used on the command line.
func ConfigByName(name string) (Config, error) {
	switch name {
	case "sigmoid":
		return SigmoidConfig(), nil
	case "relu":
		return ReLUConfig(), nil
	default:
		return Config{}, fmt.Errorf("unknown architecture %q (want \"sigmoid\" or \"relu\")", name)
	}
}

// Classifier is a feed-forward network mapping image batches to class
// probabilities. Unlike the raw nn modules, its methods validate input
// shapes and return errors instead of panicking.
type Classifier[B tensor.Backend] struct {
	cfg        Config
	net        *nn.Sequential[B]
	backend    B
	inputDim   int
	numClasses int
}

// New builds a classifier from cfg. Layer widths are validated at
// construction: every width must be positive and each layer's input
// width must equal the previous layer's output width.
func New[B tensor.Backend](cfg Config, backend B) (*Classifier[B], error) {
	if len(cfg.Layers) == 0 {
		return nil, fmt.Errorf("architecture must have at least one layer")
	}

	for i, layer := range cfg.Layers {
		if layer.In <= 0 || layer.Out <= 0 {
			return nil, fmt.Errorf("layer %d: widths must be positive, got %d→%d", i, layer.In, layer.Out)
		}
		if i > 0 && layer.In != cfg.Layers[i-1].Out {
			return nil, fmt.Errorf("layer %d expects input width %d, but layer %d produces width %d",
				i, layer.In, i-1, cfg.Layers[i-1].Out)
		}
	}

	net := nn.NewSequential[B]()
	for i, layer := range cfg.Layers {
		net.Add(nn.NewLinear(layer.In, layer.Out, backend))
		switch layer.Activation {
		case ActivationNone:
		case ActivationReLU:
			net.Add(nn.NewReLU[B]())
		case ActivationSigmoid:
			net.Add(nn.NewSigmoid[B]())
		case ActivationTanh:
			net.Add(nn.NewTanh[B]())
		default:
			return nil, fmt.Errorf("layer %d: unknown activation %q", i, layer.Activation)
		}
	}
	net.Add(nn.NewSoftmax[B](-1))

	return &Classifier[B]{
		cfg:        cfg,
		net:        net,
		backend:    backend,
		inputDim:   cfg.Layers[0].In,
		numClasses: cfg.Layers[len(cfg.Layers)-1].Out,
	}, nil
}

// InputDim returns the expected width of input rows.
func (c *Classifier[B]) InputDim() int {
	return c.inputDim
}

// NumClasses returns the number of output classes.
func (c *Classifier[B]) NumClasses() int {
	return c.numClasses
}

// Network returns the underlying module chain.
func (c *Classifier[B]) Network() *nn.Sequential[B] {
	return c.net
}

// Forward runs a batch of flattened images through the network and
// returns per-class probabilities with shape [batch, numClasses].
//
// The input must be 2D with row width matching the first layer; a
// mismatch fails with an error naming the layer and both widths before
// any computation runs.
func (c *Classifier[B]) Forward(images *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
	shape := images.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("expected 2D input [batch, %d], got shape %v", c.inputDim, shape)
	}
	if shape[1] != c.inputDim {
		first := c.cfg.Layers[0]
		return nil, fmt.Errorf("shape mismatch at layer 0 (Linear %d→%d): expected input width %d, got %d",
			first.In, first.Out, c.inputDim, shape[1])
	}

	return c.net.Forward(images), nil
}

// Predict returns the most probable class for each row of the batch.
// Ties resolve to the lowest class index.
func (c *Classifier[B]) Predict(images *tensor.Tensor[float32, B]) ([]int, error) {
	probs, err := c.Forward(images)
	if err != nil {
		return nil, err
	}

	raw := probs.Argmax(1).Data()
	preds := make([]int, len(raw))
	for i, v := range raw {
		preds[i] = int(v)
	}
	return preds, nil
}

// EvalResult summarizes accuracy over a dataset.
type EvalResult struct {
	Correct  int
	Total    int
	Accuracy float64
}

// Evaluate runs the classifier over every batch the loader produces and
// counts correct top-1 predictions.
func (c *Classifier[B]) Evaluate(loader *mnist.Loader[B]) (EvalResult, error) {
	batches, err := loader.Batches()
	if err != nil {
		return EvalResult{}, fmt.Errorf("failed to load batches: %w", err)
	}

	var result EvalResult
	for _, batch := range batches {
		preds, err := c.Predict(batch.Images)
		if err != nil {
			return EvalResult{}, err
		}
		for i, pred := range preds {
			if pred == int(batch.Labels[i]) {
				result.Correct++
			}
		}
		result.Total += batch.Size
	}

	if result.Total > 0 {
		result.Accuracy = float64(result.Correct) / float64(result.Total)
	}
	return result, nil
}

// ModelType is the model_type string stored in .glyph files.
const ModelType = "Classifier"

// Save writes the classifier's weights to path in the .glyph format.
func (c *Classifier[B]) Save(path string) error {
	return serialization.Save(path, ModelType, c.net.StateDict())
}

// LoadWeights replaces the classifier's weights with those stored at
// path. The architecture must match the one the file was saved from.
func (c *Classifier[B]) LoadWeights(path string) error {
	header, stateDict, err := serialization.Load(path)
	if err != nil {
		return err
	}
	if header.ModelType != ModelType {
		return fmt.Errorf("expected model type %q, got %q", ModelType, header.ModelType)
	}
	return c.net.LoadStateDict(stateDict)
}
