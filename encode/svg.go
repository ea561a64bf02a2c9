// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/ik5/audwave/waveform"
)

// EncodeSVG writes the waveform as a single filled symmetric path: each
// sample contributes one point above and one below the horizontal center
// axis. Styling comes from the rendering options.
func EncodeSVG(w io.Writer, res *waveform.Result) error {
	width, height := dimensions(res.Options)

	background := res.Options.Background
	if background == "" {
		background = waveform.DefaultOptions().Background
	}

	foreground := res.Options.Foreground
	if foreground == "" {
		foreground = waveform.DefaultOptions().Foreground
	}

	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="%d" height="%d" fill="%s"/>`+
			`<path d="%s" fill="%s"/>`+
			"</svg>\n",
		width, height, width, height,
		width, height, background,
		pathData(res.Samples, width, height), foreground)

	return err
}

// pathData builds the closed symmetric outline: the upper edge left to
// right, then the mirrored lower edge right to left.
func pathData(samples []waveform.Sample, width, height int) string {
	if len(samples) == 0 {
		return ""
	}

	mid := float64(height) / 2
	step := float64(width) / float64(len(samples))

	var b strings.Builder

	for i, s := range samples {
		x := (float64(i) + 0.5) * step
		y := mid - float64(s)*mid

		if i == 0 {
			fmt.Fprintf(&b, "M%.2f,%.2f", x, y)
		} else {
			fmt.Fprintf(&b, " L%.2f,%.2f", x, y)
		}
	}

	for i := len(samples) - 1; i >= 0; i-- {
		x := (float64(i) + 0.5) * step
		y := mid + float64(samples[i])*mid
		fmt.Fprintf(&b, " L%.2f,%.2f", x, y)
	}

	b.WriteString(" Z")

	return b.String()
}
