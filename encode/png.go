// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"

	"github.com/ik5/audwave/waveform"
)

// EncodePNG rasterizes the waveform as symmetric vertical bars around the
// horizontal center axis and writes it PNG-encoded.
func EncodePNG(w io.Writer, res *waveform.Result) error {
	width, height := dimensions(res.Options)

	background, err := parseHexColor(res.Options.Background, waveform.DefaultOptions().Background)
	if err != nil {
		return err
	}

	foreground, err := parseHexColor(res.Options.Foreground, waveform.DefaultOptions().Foreground)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	if n := len(res.Samples); n > 0 {
		mid := float64(height) / 2
		step := float64(width) / float64(n)

		for i, s := range res.Samples {
			x0 := int(float64(i) * step)
			x1 := int(float64(i+1) * step)
			if x1 <= x0 {
				x1 = x0 + 1
			}
			if x1 > width {
				x1 = width
			}

			half := float64(s) * mid
			y0 := int(mid - half)
			y1 := int(mid + half)
			if y0 < 0 {
				y0 = 0
			}
			if y1 > height {
				y1 = height
			}
			if y1 <= y0 {
				// Silence still leaves the one-pixel center line.
				y1 = y0 + 1
			}

			bar := image.Rect(x0, y0, x1, y1)
			draw.Draw(img, bar, &image.Uniform{foreground}, image.Point{}, draw.Src)
		}
	}

	return png.Encode(w, img)
}

// parseHexColor parses "#rrggbb" or "#rgb", falling back to def for the
// empty string.
func parseHexColor(s, def string) (color.RGBA, error) {
	if s == "" {
		s = def
	}

	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
