package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/glyph-ml/glyph/internal/backend/cpu"
	"github.com/glyph-ml/glyph/internal/mnist"
)

var (
	evalArch       string
	evalWeights    string
	evalBatchSize  int
	evalMaxSamples int
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate top-1 accuracy over the MNIST test set",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadTestSet(evalMaxSamples)
		if err != nil {
			return err
		}

		backend := cpu.New()
		clf, err := buildClassifier(evalArch, evalWeights, backend)
		if err != nil {
			return err
		}

		loader, err := mnist.NewLoader(data, mnist.LoaderConfig{BatchSize: evalBatchSize}, backend)
		if err != nil {
			return err
		}

		slog.Debug("evaluating", "samples", data.NumSamples(), "batch_size", evalBatchSize)
		result, err := clf.Evaluate(loader)
		if err != nil {
			return err
		}

		fmt.Printf("Accuracy: %.2f%% (%d/%d)\n", result.Accuracy*100, result.Correct, result.Total)
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVar(&evalArch, "arch", "sigmoid", "architecture: \"sigmoid\" or \"relu\"")
	evalCmd.Flags().StringVar(&evalWeights, "weights", "", "path to a .glyph weights file (random init if empty)")
	evalCmd.Flags().IntVar(&evalBatchSize, "batch-size", 64, "evaluation batch size")
	evalCmd.Flags().IntVar(&evalMaxSamples, "max-samples", 0, "limit number of test samples (0 = all)")
}
