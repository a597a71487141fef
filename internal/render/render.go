// Package render draws grayscale digit images and prediction summaries
// as terminal text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// ramp maps pixel intensity to glyph density, darkest first.
const ramp = " .:-=+*#%@"

// Image writes a rows×cols grayscale image as ASCII art, one glyph per
// pixel. Pixel values are expected in [0, 1]; values outside are clamped.
func Image(w io.Writer, pixels []float32, rows, cols int) error {
	if len(pixels) != rows*cols {
		return fmt.Errorf("expected %d pixels for %dx%d image, got %d", rows*cols, rows, cols, len(pixels))
	}

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sb.WriteByte(glyphFor(pixels[r*cols+c]))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func glyphFor(v float32) byte {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	idx := int(v * float32(len(ramp)-1))
	return ramp[idx]
}

// ProbabilityTable writes per-class probabilities as a table, with a bar
// chart column and a marker on the predicted class. predicted should be
// the argmax index; pass trueLabel as -1 when the ground truth is unknown.
func ProbabilityTable(w io.Writer, probs []float32, predicted, trueLabel int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Digit", "Probability", ""})
	table.SetBorder(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for digit, p := range probs {
		marker := bar(p)
		switch {
		case digit == predicted && digit == trueLabel:
			marker += " <- predicted (correct)"
		case digit == predicted:
			marker += " <- predicted"
		case digit == trueLabel:
			marker += " (true label)"
		}
		table.Append([]string{
			fmt.Sprintf("%d", digit),
			fmt.Sprintf("%.4f", p),
			marker,
		})
	}

	table.Render()
}

// bar renders probability p as a fixed-scale bar of 20 cells.
func bar(p float32) string {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	n := int(p * 20)
	return strings.Repeat("#", n)
}
