package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/glyph-ml/glyph/internal/mnist"
)

const version = "v0.1.0-dev"

var (
	flagDataDir   string
	flagSynthetic bool
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:           "glyph",
	Short:         "Feed-forward MNIST digit classifier",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("glyph %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "data", "directory containing MNIST IDX files")
	rootCmd.PersistentFlags().BoolVar(&flagSynthetic, "synthetic", false, "use a built-in synthetic dataset instead of files")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(evalCmd)
}

// loadTestSet loads the MNIST test split, or the synthetic dataset when
// --synthetic is set.
func loadTestSet(maxSamples int) (*mnist.Dataset, error) {
	if flagSynthetic {
		slog.Debug("using synthetic dataset")
		return mnist.Synthetic(), nil
	}

	slog.Debug("loading MNIST test set", "data_dir", flagDataDir, "max_samples", maxSamples)
	data, err := mnist.Load(flagDataDir, false, maxSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to load MNIST data from %s: %w", flagDataDir, err)
	}
	return data, nil
}
