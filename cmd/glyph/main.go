// Command glyph is the CLI for the glyph digit classifier: it renders
// MNIST digits, runs them through a feed-forward network, and reports
// per-class probabilities and test-set accuracy.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
