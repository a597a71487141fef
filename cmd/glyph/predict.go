package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/glyph-ml/glyph/internal/backend/cpu"
	"github.com/glyph-ml/glyph/internal/mnist"
	"github.com/glyph-ml/glyph/internal/model"
	"github.com/glyph-ml/glyph/internal/render"
	"github.com/glyph-ml/glyph/internal/tensor"
)

var (
	predictIndex   int
	predictArch    string
	predictWeights string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Classify a single test image and show per-class probabilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadTestSet(0)
		if err != nil {
			return err
		}
		if predictIndex < 0 || predictIndex >= data.NumSamples() {
			return fmt.Errorf("index %d out of range [0, %d)", predictIndex, data.NumSamples())
		}

		backend := cpu.New()
		clf, err := buildClassifier(predictArch, predictWeights, backend)
		if err != nil {
			return err
		}

		image := data.Images[predictIndex]
		label := int(data.Labels[predictIndex])

		if err := render.Image(os.Stdout, image, mnist.ImageRows, mnist.ImageCols); err != nil {
			return err
		}
		fmt.Println()

		batch, err := tensor.FromSlice[float32, *cpu.CPUBackend](image, tensor.Shape{1, mnist.ImageSize}, backend)
		if err != nil {
			return err
		}

		probs, err := clf.Forward(batch)
		if err != nil {
			return err
		}

		preds, err := clf.Predict(batch)
		if err != nil {
			return err
		}
		predicted := preds[0]

		render.ProbabilityTable(os.Stdout, probs.Data(), predicted, label)
		fmt.Println()
		fmt.Printf("Predicted: %d  True label: %d\n", predicted, label)
		return nil
	},
}

func init() {
	predictCmd.Flags().IntVar(&predictIndex, "index", 0, "index of the test image to classify")
	predictCmd.Flags().StringVar(&predictArch, "arch", "sigmoid", "architecture: \"sigmoid\" or \"relu\"")
	predictCmd.Flags().StringVar(&predictWeights, "weights", "", "path to a .glyph weights file (random init if empty)")
}

// buildClassifier constructs the requested architecture and optionally
// loads weights from a .glyph file.
func buildClassifier(arch, weights string, backend *cpu.CPUBackend) (*model.Classifier[*cpu.CPUBackend], error) {
	cfg, err := model.ConfigByName(arch)
	if err != nil {
		return nil, err
	}

	clf, err := model.New(cfg, backend)
	if err != nil {
		return nil, err
	}

	if weights != "" {
		slog.Debug("loading weights", "path", weights)
		if err := clf.LoadWeights(weights); err != nil {
			return nil, fmt.Errorf("failed to load weights from %s: %w", weights, err)
		}
	} else {
		slog.Warn("no weights file given, using random initialization")
	}
	return clf, nil
}
